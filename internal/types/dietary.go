package types

// Allergy identifies an allergen a user wants to avoid. The string value is
// matched against a recipe's allergen-free tags.
type Allergy string

const (
	AllergyNuts      Allergy = "nuts"
	AllergyDairy     Allergy = "dairy"
	AllergyGluten    Allergy = "gluten"
	AllergyShellfish Allergy = "shellfish"
	AllergyEggs      Allergy = "eggs"
	AllergySoy       Allergy = "soy"
	AllergyFish      Allergy = "fish"
	AllergySesame    Allergy = "sesame"
)

// AllAllergies lists every supported allergy, in display order.
var AllAllergies = []Allergy{
	AllergyNuts, AllergyDairy, AllergyGluten, AllergyShellfish,
	AllergyEggs, AllergySoy, AllergyFish, AllergySesame,
}

// Diet identifies a diet style. The string value is matched against a recipe's
// dietary tags.
type Diet string

const (
	DietVegetarian  Diet = "vegetarian"
	DietVegan       Diet = "vegan"
	DietPescatarian Diet = "pescatarian"
	DietKeto        Diet = "keto"
	DietGlutenFree  Diet = "glutenFree"
	DietHalal       Diet = "halal"
	DietKosher      Diet = "kosher"
	DietDairyFree   Diet = "dairyFree"
	DietLowCarb     Diet = "lowCarb"
	DietHighProtein Diet = "highProtein"
)

// AllDiets lists every supported diet, in display order.
var AllDiets = []Diet{
	DietVegetarian, DietVegan, DietPescatarian, DietKeto, DietGlutenFree,
	DietHalal, DietKosher, DietDairyFree, DietLowCarb, DietHighProtein,
}

// Difficulty is a recipe difficulty rating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MaxDuration is an upper bound on a recipe's total time.
type MaxDuration string

const (
	DurationAny    MaxDuration = "any"
	DurationThirty MaxDuration = "thirty"
	DurationSixty  MaxDuration = "sixty"
	DurationNinety MaxDuration = "ninety"
)

// Minutes returns the numeric cap for the duration. The second return value is
// false for DurationAny, which imposes no cap.
func (d MaxDuration) Minutes() (int, bool) {
	switch d {
	case DurationThirty:
		return 30, true
	case DurationSixty:
		return 60, true
	case DurationNinety:
		return 90, true
	default:
		return 0, false
	}
}

// Valid reports whether d is one of the known duration values.
func (d MaxDuration) Valid() bool {
	switch d {
	case DurationAny, DurationThirty, DurationSixty, DurationNinety:
		return true
	}
	return false
}

// DayOverride replaces the profile's global difficulty/duration pair for a
// single weekday. It is a full replacement, never merged with the globals.
type DayOverride struct {
	Difficulties []Difficulty `json:"difficulties"`
	MaxDuration  MaxDuration  `json:"max_duration"`
}

// DietaryProfile holds everything the matching predicate needs to decide
// whether a recipe qualifies for a user. Empty allergy/diet/difficulty slices
// mean "no constraint", never "match none".
type DietaryProfile struct {
	SelectedAllergies     []Allergy           `json:"selected_allergies"`
	SelectedDiets         []Diet              `json:"selected_diets"`
	PreferredDifficulties []Difficulty        `json:"preferred_difficulties"`
	MaxDuration           MaxDuration         `json:"max_duration"`
	PerDayOverrides       map[Weekday]DayOverride `json:"per_day_overrides,omitempty"`
}

// EmptyProfile returns a profile with no constraints.
func EmptyProfile() DietaryProfile {
	return DietaryProfile{
		SelectedAllergies:     []Allergy{},
		SelectedDiets:         []Diet{},
		PreferredDifficulties: []Difficulty{},
		MaxDuration:           DurationAny,
	}
}

// EffectiveConstraints resolves the difficulty/duration pair that applies on
// the given weekday, honoring a per-day override when one exists.
func (p *DietaryProfile) EffectiveConstraints(day Weekday) ([]Difficulty, MaxDuration) {
	if override, ok := p.PerDayOverrides[day]; ok {
		return override.Difficulties, override.MaxDuration
	}
	return p.PreferredDifficulties, p.MaxDuration
}
