package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackflow/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Address = "127.0.0.1"
	cfg.Server.HTTPPort = "0"
	cfg.Hooks.SharedSecret = "test-secret"
	cfg.Logging.Level = "error"
	return cfg
}

func TestHookRoutesRequireSecret(t *testing.T) {
	app := &App{}
	app.Initialize(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/hooks/before-install", nil)
	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHookRoutesRunPipeline(t *testing.T) {
	app := &App{}
	app.Initialize(testConfig())

	for _, path := range []string{"/hooks/before-install", "/hooks/after-install", "/hooks/after-migrate"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer test-secret")
		rr := httptest.NewRecorder()
		app.Router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, path)

		var rep struct {
			Hook   string `json:"hook"`
			Stages []struct {
				Stage  string `json:"stage"`
				Status string `json:"status"`
			} `json:"stages"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rep))
		assert.NotEmpty(t, rep.Hook)
		assert.NotEmpty(t, rep.Stages)
	}
}

func TestHealthz(t *testing.T) {
	app := &App{}
	app.Initialize(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	app.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
