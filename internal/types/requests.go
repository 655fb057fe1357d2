package types

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest replaces a device's dietary profile and settings.
// Omitted preference fields keep their stored values.
type UpdateProfileRequest struct {
	Profile                DietaryProfile         `json:"profile"`
	Measurement            *MeasurementPreference `json:"measurement,omitempty"`
	DefaultServings        *int                   `json:"default_servings,omitempty"`
	HasCompletedOnboarding *bool                  `json:"has_completed_onboarding,omitempty"`
}

// DisplayIngredient is one ingredient line after serving scaling and unit
// conversion have been applied.
type DisplayIngredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}
