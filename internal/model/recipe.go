package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one line of a recipe's ingredient list. Amount is kept as the
// raw string from the catalog: it is usually a numeric literal but may be
// free-form text ("a pinch"), which the measurement converter passes through.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Key returns the identity used by clients for list diffing. It is only a
// uniqueness token, not semantically meaningful.
func (i Ingredient) Key() string {
	return i.Name + i.Amount + i.Unit
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

// Contains reports whether tag is present in the array.
func (a JSONBStringArray) Contains(tag string) bool {
	for _, existing := range a {
		if existing == tag {
			return true
		}
	}
	return false
}

// JSONBIngredients stores an ordered ingredient list in a JSONB column.
type JSONBIngredients []Ingredient

func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

// JSONBStringMap stores per-locale text variants keyed by language code.
type JSONBStringMap map[string]string

func (m JSONBStringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

func (m *JSONBStringMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBStringMap{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), m)
}

// JSONBStringListMap stores per-locale lists (steps, ingredient names) keyed
// by language code.
type JSONBStringListMap map[string][]string

func (m JSONBStringListMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	return json.Marshal(m)
}

func (m *JSONBStringListMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONBStringListMap{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), m)
}

func jsonbBytes(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}

// Recipe is a catalog entry. It is immutable from the app's point of view:
// only the admin catalog endpoints write to it.
type Recipe struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	DeletedAt           gorm.DeletedAt     `gorm:"index" json:"-"`
	Title               string             `gorm:"size:255;not null" json:"title"`
	Description         string             `gorm:"type:text" json:"description"`
	DescriptionI18n     JSONBStringMap     `gorm:"type:jsonb;default:'{}'" json:"description_i18n,omitempty"`
	Ingredients         JSONBIngredients   `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	IngredientNamesI18n JSONBStringListMap `gorm:"type:jsonb;default:'{}'" json:"ingredient_names_i18n,omitempty"`
	Steps               JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	StepsI18n           JSONBStringListMap `gorm:"type:jsonb;default:'{}'" json:"steps_i18n,omitempty"`
	DietaryTags         JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"dietary_tags"`
	AllergenFree        JSONBStringArray   `gorm:"type:jsonb;not null;default:'[]'" json:"allergen_free"`
	PrepTime            int                `json:"prep_time"`
	CookTime            int                `json:"cook_time"`
	Servings            int                `json:"servings"`
	Difficulty          *string            `gorm:"size:20" json:"difficulty,omitempty"`
	ImageURL            string             `gorm:"size:255" json:"image_url,omitempty"`
}

// TotalTime is prep plus cook time, in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// LocalizedDescription returns the description for lang, falling back to the
// base language when no variant exists.
func (r *Recipe) LocalizedDescription(lang string) string {
	if text, ok := r.DescriptionI18n[lang]; ok && text != "" {
		return text
	}
	return r.Description
}

// LocalizedSteps returns the steps for lang, falling back to the base steps.
func (r *Recipe) LocalizedSteps(lang string) []string {
	if steps, ok := r.StepsI18n[lang]; ok && len(steps) > 0 {
		return steps
	}
	return r.Steps
}

// LocalizedIngredients swaps in translated ingredient names for lang. Amounts
// and units are untouched. A variant list whose length does not match the
// ingredient list is ignored.
func (r *Recipe) LocalizedIngredients(lang string) []Ingredient {
	names, ok := r.IngredientNamesI18n[lang]
	if !ok || len(names) != len(r.Ingredients) {
		return r.Ingredients
	}
	localized := make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		localized[i] = Ingredient{Name: names[i], Amount: ing.Amount, Unit: ing.Unit}
	}
	return localized
}
