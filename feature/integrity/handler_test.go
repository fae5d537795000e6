package integrity

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"cdn-manager/core/loader"
	"cdn-manager/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	mgr := loader.NewManager()
	mgr.Register(NewFeature(svc))
	loaded, err := mgr.LoadAll(app)
	require.NoError(t, err)
	require.Equal(t, []string{"integrity"}, loaded)
	return app
}

func TestHandleAll(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		app := setupTestApp(t, NewService(stubAuth{}, zap.NewNop()))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.True(t, report.Healthy)
		assert.Len(t, report.Checks, 5)
	})

	t.Run("unhealthy", func(t *testing.T) {
		app := setupTestApp(t, NewService(stubAuth{err: errors.New("bad credentials")}, zap.NewNop()))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})

	t.Run("fix", func(t *testing.T) {
		store := &stubStore{missing: []string{"run_id"}}
		app := setupTestApp(t, NewService(stubAuth{}, zap.NewNop(), WithSchema(store)))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, store.migrated)
	})
}

func TestHandleCheck(t *testing.T) {
	app := setupTestApp(t, NewService(stubAuth{}, zap.NewNop(),
		WithRedis(stubRedis{err: errors.New("connection refused")}),
	))

	tests := []struct {
		path   string
		status int
		result checks.Status
	}{
		{"/integrity/api", 200, checks.StatusOK},
		{"/integrity/storage", 200, checks.StatusDisabled},
		{"/integrity/lock", 503, checks.StatusError},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var res checks.Result
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
			assert.Equal(t, tt.result, res.Status)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/cache", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
