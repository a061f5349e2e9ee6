package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/factorymod"
	"github.com/osse101/FactoryModExplorer_Go/internal/source"
	"github.com/osse101/FactoryModExplorer_Go/internal/validation"
)

const fixturePath = "../factorymod/testdata/config.yml"

func newCatalog(t *testing.T, load bool) catalog.Service {
	t.Helper()
	fetcher := source.NewFetcher(source.Options{Timeout: time.Second, CacheSize: 1, CacheTTL: time.Minute})
	svc := catalog.NewService(fetcher, factorymod.NewLoader(validation.NewSchemaValidator()), fixturePath)
	if load {
		_, err := svc.Reload(context.Background(), false)
		require.NoError(t, err)
	}
	return svc
}

func do(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[http.CanonicalHeaderKey(k)] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	h := NewRouter(Options{AdminAPIKey: "secret", Version: "1.0.0"}, newCatalog(t, true))

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/healthz", http.StatusOK, `"status":"ok"`},
		{"/readyz", http.StatusOK, `"reloads":1`},
		{"/version", http.StatusOK, `"version":"1.0.0"`},
		{"/metrics", http.StatusOK, "factorymod_entities"},
		{"/api/v1/summary", http.StatusOK, `"recipes":8`},
		{"/api/v1/recipes", http.StatusOK, "smelt_iron"},
		{"/api/v1/recipes/repair_smelter", http.StatusOK, `"health_gained":50`},
		{"/api/v1/factories", http.StatusOK, "Ore_Smelter"},
		{"/api/v1/factories/Compactor", http.StatusOK, "compact_items"},
		{"/api/v1/items?q=iron", http.StatusOK, "iron_ore"},
		{"/api/v1/items/stone", http.StatusOK, "Ore Smelter"},
		{"/api/v1/parse-errors", http.StatusOK, "DanglingReference"},
		{"/api/v1/recipes/missing", http.StatusNotFound, "Recipe not found"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(h, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRouter_AdminReload(t *testing.T) {
	h := NewRouter(Options{AdminAPIKey: "secret"}, newCatalog(t, true))

	t.Run("requires the key", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/admin/reload", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unchanged document", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/admin/reload", http.Header{HeaderAPIKey: {"secret"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"changed":false`)
	})

	t.Run("forced", func(t *testing.T) {
		rec := do(h, http.MethodPost, "/api/v1/admin/reload?force=1", http.Header{HeaderAPIKey: {"secret"}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"changed":true`)
	})
}

func TestRouter_NotReady(t *testing.T) {
	h := NewRouter(Options{}, newCatalog(t, false))

	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/readyz", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/api/v1/recipes", nil).Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/healthz", nil).Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(prev)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	require.Contains(t, logOutput, LogMsgRequestHeaders)
	assert.NotContains(t, logOutput, "secret-key-123")
	assert.NotContains(t, logOutput, "Bearer mytoken")
	assert.Contains(t, logOutput, "TestAgent")
	assert.Contains(t, logOutput, "request_id")
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))

	assert.False(t, strings.Contains(buf.String(), LogMsgRequestStarted))
}
