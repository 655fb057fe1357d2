package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dailydish/backend/internal/service"
	"github.com/dailydish/backend/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	store   *testhelpers.MemoryPickStateStore
	auth    *service.AuthService
	catalog *service.CatalogService
}

// setupTestEnv wires the handlers onto a fresh router backed by an in-memory
// database and pick state store. Image uploads stay unconfigured.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testhelpers.SetupTestDB(t)
	store := testhelpers.NewMemoryPickStateStore()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	authService := service.NewAuthService("test-secret", "admin", string(hash))
	catalogService := service.NewCatalogService(db)
	profileService := service.NewProfileService(db)
	pickService := service.NewDailyPickService(catalogService, store, service.NewSystemClock())

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)
	NewRecipeHandler(catalogService, profileService, nil, authService).RegisterRoutes(v1)
	NewTodayHandler(pickService, profileService).RegisterRoutes(v1)
	NewProfileHandler(profileService).RegisterRoutes(v1)

	return &testEnv{
		router:  router,
		db:      db,
		store:   store,
		auth:    authService,
		catalog: catalogService,
	}
}

// do performs a request and decodes the JSON response body into out when it
// is non-nil.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers map[string]string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)

	if out != nil {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
	}
	return recorder
}

// adminToken logs in as the configured admin and returns a bearer token.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	token, err := e.auth.Login("admin", "admin-pass")
	require.NoError(t, err)
	return token
}
