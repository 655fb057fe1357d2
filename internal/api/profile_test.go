package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailydish/backend/internal/middleware"
	"github.com/dailydish/backend/internal/types"
)

type profileResponse struct {
	Profile     types.DietaryProfile    `json:"profile"`
	Preferences types.DevicePreferences `json:"preferences"`
}

func TestGetProfileDefaultsForNewDevice(t *testing.T) {
	env := setupTestEnv(t)

	var body profileResponse
	recorder := env.do(t, http.MethodGet, "/api/v1/profile", nil,
		map[string]string{middleware.DeviceIDHeader: "device-1"}, &body)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, body.Profile.SelectedAllergies)
	assert.Equal(t, types.DurationAny, body.Profile.MaxDuration)
	assert.Equal(t, types.PreferenceSystem, body.Preferences.Measurement)
	assert.False(t, body.Preferences.HasCompletedOnboarding)
}

func TestUpdateProfileRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	headers := map[string]string{middleware.DeviceIDHeader: "device-1"}

	profile := types.EmptyProfile()
	profile.SelectedAllergies = []types.Allergy{types.AllergyGluten}
	profile.MaxDuration = types.DurationSixty
	measurement := types.PreferenceImperial
	servings := 2
	done := true

	recorder := env.do(t, http.MethodPut, "/api/v1/profile", types.UpdateProfileRequest{
		Profile:                profile,
		Measurement:            &measurement,
		DefaultServings:        &servings,
		HasCompletedOnboarding: &done,
	}, headers, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body profileResponse
	recorder = env.do(t, http.MethodGet, "/api/v1/profile", nil, headers, &body)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []types.Allergy{types.AllergyGluten}, body.Profile.SelectedAllergies)
	assert.Equal(t, types.DurationSixty, body.Profile.MaxDuration)
	assert.Equal(t, types.PreferenceImperial, body.Preferences.Measurement)
	assert.Equal(t, 2, body.Preferences.DefaultServings)
	assert.True(t, body.Preferences.HasCompletedOnboarding)
}

func TestUpdateProfileMergesOmittedPreferences(t *testing.T) {
	env := setupTestEnv(t)
	headers := map[string]string{middleware.DeviceIDHeader: "device-1"}

	measurement := types.PreferenceMetric
	recorder := env.do(t, http.MethodPut, "/api/v1/profile", types.UpdateProfileRequest{
		Profile:     types.EmptyProfile(),
		Measurement: &measurement,
	}, headers, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// A later update that omits the measurement keeps the stored value.
	profile := types.EmptyProfile()
	profile.SelectedDiets = []types.Diet{types.DietVegan}
	recorder = env.do(t, http.MethodPut, "/api/v1/profile",
		types.UpdateProfileRequest{Profile: profile}, headers, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body profileResponse
	env.do(t, http.MethodGet, "/api/v1/profile", nil, headers, &body)
	assert.Equal(t, types.PreferenceMetric, body.Preferences.Measurement)
	assert.Equal(t, []types.Diet{types.DietVegan}, body.Profile.SelectedDiets)
}

func TestUpdateProfileRejectsBadEnums(t *testing.T) {
	env := setupTestEnv(t)
	headers := map[string]string{middleware.DeviceIDHeader: "device-1"}

	recorder := env.do(t, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"profile": map[string]interface{}{"max_duration": "fortnight"},
	}, headers, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	bad := "furlongs"
	recorder = env.do(t, http.MethodPut, "/api/v1/profile", map[string]interface{}{
		"profile":     types.EmptyProfile(),
		"measurement": bad,
	}, headers, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResetProfile(t *testing.T) {
	env := setupTestEnv(t)
	headers := map[string]string{middleware.DeviceIDHeader: "device-1"}

	profile := types.EmptyProfile()
	profile.SelectedDiets = []types.Diet{types.DietKeto}
	done := true
	env.do(t, http.MethodPut, "/api/v1/profile", types.UpdateProfileRequest{
		Profile:                profile,
		HasCompletedOnboarding: &done,
	}, headers, nil)

	recorder := env.do(t, http.MethodPost, "/api/v1/profile/reset", nil, headers, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body profileResponse
	env.do(t, http.MethodGet, "/api/v1/profile", nil, headers, &body)
	assert.Empty(t, body.Profile.SelectedDiets)
	assert.False(t, body.Preferences.HasCompletedOnboarding)
	assert.Equal(t, types.PreferenceSystem, body.Preferences.Measurement)
}
