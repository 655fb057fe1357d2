package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydish/backend/internal/model"
	"github.com/dailydish/backend/internal/testhelpers"
	"github.com/dailydish/backend/internal/types"
)

func TestGetProfileUnknownDevice(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)

	profile, prefs, err := svc.GetProfile(context.Background(), "fresh-install")
	require.NoError(t, err)
	assert.Equal(t, types.EmptyProfile(), profile)
	assert.Equal(t, types.DefaultDevicePreferences(), prefs)
}

func TestSaveAndGetProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	ctx := context.Background()

	profile := types.EmptyProfile()
	profile.SelectedAllergies = []types.Allergy{types.AllergyNuts, types.AllergyShellfish}
	profile.SelectedDiets = []types.Diet{types.DietVegetarian}
	profile.PreferredDifficulties = []types.Difficulty{types.DifficultyEasy, types.DifficultyMedium}
	profile.MaxDuration = types.DurationSixty
	profile.PerDayOverrides = map[types.Weekday]types.DayOverride{
		types.Sunday: {Difficulties: []types.Difficulty{types.DifficultyHard}, MaxDuration: types.DurationAny},
	}
	prefs := types.DevicePreferences{
		Measurement:            types.PreferenceImperial,
		DefaultServings:        2,
		HasCompletedOnboarding: true,
	}

	require.NoError(t, svc.SaveProfile(ctx, "device-1", profile, prefs))

	loaded, loadedPrefs, err := svc.GetProfile(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, profile, loaded)
	assert.Equal(t, prefs, loadedPrefs)

	var row model.DeviceProfile
	require.NoError(t, db.First(&row, "device_id = ?", "device-1").Error)
	assert.Equal(t, types.ProfileSchemaVersion, row.SchemaVersion)
}

func TestSaveProfileOverwrites(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	ctx := context.Background()

	first := types.EmptyProfile()
	first.SelectedDiets = []types.Diet{types.DietKeto}
	require.NoError(t, svc.SaveProfile(ctx, "device-1", first, types.DefaultDevicePreferences()))

	second := types.EmptyProfile()
	second.SelectedAllergies = []types.Allergy{types.AllergyDairy}
	require.NoError(t, svc.SaveProfile(ctx, "device-1", second, types.DefaultDevicePreferences()))

	loaded, _, err := svc.GetProfile(ctx, "device-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.SelectedDiets, "the profile is replaced as a whole, not merged")
	assert.Equal(t, []types.Allergy{types.AllergyDairy}, loaded.SelectedAllergies)
}

func TestGetProfileToleratesOldPayloads(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)

	// A version 1 payload: only allergies and diets existed back then.
	row := model.DeviceProfile{
		DeviceID:              "old-device",
		SchemaVersion:         1,
		Profile:               []byte(`{"selected_allergies":["nuts"],"selected_diets":[]}`),
		MeasurementPreference: "system",
	}
	require.NoError(t, db.Create(&row).Error)

	profile, _, err := svc.GetProfile(context.Background(), "old-device")
	require.NoError(t, err)
	assert.Equal(t, []types.Allergy{types.AllergyNuts}, profile.SelectedAllergies)
	assert.Empty(t, profile.PreferredDifficulties)
	assert.Equal(t, types.DurationAny, profile.MaxDuration)
}

func TestGetProfileInvalidMeasurementFallsBack(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)

	row := model.DeviceProfile{
		DeviceID:              "device-1",
		SchemaVersion:         types.ProfileSchemaVersion,
		Profile:               []byte(`{}`),
		MeasurementPreference: "furlongs",
	}
	require.NoError(t, db.Create(&row).Error)

	_, prefs, err := svc.GetProfile(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, types.PreferenceSystem, prefs.Measurement)
}

func TestResetProfile(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewProfileService(db)
	ctx := context.Background()

	profile := types.EmptyProfile()
	profile.SelectedDiets = []types.Diet{types.DietVegan}
	prefs := types.DevicePreferences{Measurement: types.PreferenceMetric, DefaultServings: 6, HasCompletedOnboarding: true}
	require.NoError(t, svc.SaveProfile(ctx, "device-1", profile, prefs))

	require.NoError(t, svc.ResetProfile(ctx, "device-1"))

	loaded, loadedPrefs, err := svc.GetProfile(ctx, "device-1")
	require.NoError(t, err)
	assert.Equal(t, types.EmptyProfile(), loaded)
	assert.Equal(t, types.DefaultDevicePreferences(), loadedPrefs)
}
