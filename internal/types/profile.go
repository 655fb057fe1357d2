package types

import (
	"encoding/json"
	"fmt"
)

// ProfileSchemaVersion is the version written with every stored profile.
// Version 1 predates difficulty/duration preferences; version 2 predates
// per-day overrides. Decoding fills defaults for whatever is absent, so older
// payloads load without migration.
const ProfileSchemaVersion = 3

// profileDocument mirrors DietaryProfile with optional fields as pointers so
// that absence can be told apart from an explicit empty value.
type profileDocument struct {
	SelectedAllergies     []Allergy               `json:"selected_allergies"`
	SelectedDiets         []Diet                  `json:"selected_diets"`
	PreferredDifficulties *[]Difficulty           `json:"preferred_difficulties"`
	MaxDuration           *MaxDuration            `json:"max_duration"`
	PerDayOverrides       map[Weekday]DayOverride `json:"per_day_overrides"`
}

// DecodeDietaryProfile loads a stored profile payload, tolerating payloads
// written by older schema versions. Empty input yields the empty profile.
func DecodeDietaryProfile(data []byte) (DietaryProfile, error) {
	if len(data) == 0 {
		return EmptyProfile(), nil
	}

	var doc profileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return DietaryProfile{}, fmt.Errorf("failed to decode dietary profile: %w", err)
	}

	profile := DietaryProfile{
		SelectedAllergies: doc.SelectedAllergies,
		SelectedDiets:     doc.SelectedDiets,
		MaxDuration:       DurationAny,
		PerDayOverrides:   doc.PerDayOverrides,
	}
	if profile.SelectedAllergies == nil {
		profile.SelectedAllergies = []Allergy{}
	}
	if profile.SelectedDiets == nil {
		profile.SelectedDiets = []Diet{}
	}
	if doc.PreferredDifficulties != nil {
		profile.PreferredDifficulties = *doc.PreferredDifficulties
	} else {
		profile.PreferredDifficulties = []Difficulty{}
	}
	if doc.MaxDuration != nil && doc.MaxDuration.Valid() {
		profile.MaxDuration = *doc.MaxDuration
	}

	return profile, nil
}

// EncodeDietaryProfile serializes a profile for storage.
func EncodeDietaryProfile(profile DietaryProfile) ([]byte, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dietary profile: %w", err)
	}
	return data, nil
}

// DevicePreferences are the per-device settings stored alongside the dietary
// profile. DefaultServings of 0 means "use each recipe's own serving count".
type DevicePreferences struct {
	Measurement            MeasurementPreference `json:"measurement"`
	DefaultServings        int                   `json:"default_servings"`
	HasCompletedOnboarding bool                  `json:"has_completed_onboarding"`
}

// DefaultDevicePreferences returns the preferences a fresh install starts with.
func DefaultDevicePreferences() DevicePreferences {
	return DevicePreferences{
		Measurement:     PreferenceSystem,
		DefaultServings: 0,
	}
}
