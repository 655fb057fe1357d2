package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/types"
)

// ProfileService handles per-device dietary profiles and settings.
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile loads a device's dietary profile and preferences. A device that
// has never saved anything gets the empty profile and default preferences.
func (s *ProfileService) GetProfile(ctx context.Context, deviceID string) (types.DietaryProfile, types.DevicePreferences, error) {
	var row model.DeviceProfile
	err := s.db.WithContext(ctx).First(&row, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return types.EmptyProfile(), types.DefaultDevicePreferences(), nil
	}
	if err != nil {
		return types.DietaryProfile{}, types.DevicePreferences{}, err
	}

	profile, err := types.DecodeDietaryProfile(row.Profile)
	if err != nil {
		return types.DietaryProfile{}, types.DevicePreferences{}, err
	}

	prefs := types.DevicePreferences{
		Measurement:            types.MeasurementPreference(row.MeasurementPreference),
		DefaultServings:        row.DefaultServings,
		HasCompletedOnboarding: row.HasCompletedOnboarding,
	}
	if !prefs.Measurement.Valid() {
		prefs.Measurement = types.PreferenceSystem
	}
	return profile, prefs, nil
}

// SaveProfile persists a device's dietary profile and preferences as one
// whole object, stamping the current schema version.
func (s *ProfileService) SaveProfile(ctx context.Context, deviceID string, profile types.DietaryProfile, prefs types.DevicePreferences) error {
	payload, err := types.EncodeDietaryProfile(profile)
	if err != nil {
		return err
	}

	row := model.DeviceProfile{
		DeviceID:               deviceID,
		SchemaVersion:          types.ProfileSchemaVersion,
		Profile:                payload,
		MeasurementPreference:  string(prefs.Measurement),
		DefaultServings:        prefs.DefaultServings,
		HasCompletedOnboarding: prefs.HasCompletedOnboarding,
	}

	var existing model.DeviceProfile
	err = s.db.WithContext(ctx).First(&existing, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(&row).Error
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&model.DeviceProfile{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]interface{}{
			"schema_version":           row.SchemaVersion,
			"profile":                  row.Profile,
			"measurement_preference":   row.MeasurementPreference,
			"default_servings":         row.DefaultServings,
			"has_completed_onboarding": row.HasCompletedOnboarding,
		}).Error
}

// ResetProfile returns a device to the onboarding state: empty profile,
// default preferences. Daily pick state is deliberately left alone; a stale
// date key heals itself on the next load.
func (s *ProfileService) ResetProfile(ctx context.Context, deviceID string) error {
	return s.SaveProfile(ctx, deviceID, types.EmptyProfile(), types.DefaultDevicePreferences())
}
