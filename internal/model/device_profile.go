package model

import "time"

// DeviceProfile persists one device's dietary profile and settings. The
// dietary profile itself is an opaque JSONB payload decoded by
// types.DecodeDietaryProfile, which fills defaults for fields that older
// schema versions never wrote.
type DeviceProfile struct {
	DeviceID               string    `gorm:"primaryKey;size:64" json:"device_id"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
	SchemaVersion          int       `gorm:"not null" json:"schema_version"`
	Profile                []byte    `gorm:"type:jsonb;not null;default:'{}'" json:"profile"`
	MeasurementPreference  string    `gorm:"size:20;not null;default:'system'" json:"measurement_preference"`
	DefaultServings        int       `gorm:"not null;default:0" json:"default_servings"`
	HasCompletedOnboarding bool      `gorm:"not null;default:false" json:"has_completed_onboarding"`
}

func (DeviceProfile) TableName() string {
	return "device_profiles"
}
