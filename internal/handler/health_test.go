package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Model Published - Success", func(t *testing.T) {
		svc := new(MockCatalog)
		svc.On("Status").Return(catalog.Status{
			Ready:    true,
			Location: "config.yml",
			Digest:   "abc123",
			BuiltAt:  time.Now(),
			Reloads:  1,
		})

		w := httptest.NewRecorder()
		HandleReadyz(svc).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, StatusOK, resp.Status)
		assert.Equal(t, "abc123", resp.Digest)
		svc.AssertExpectations(t)
	})

	t.Run("Nothing Loaded", func(t *testing.T) {
		svc := new(MockCatalog)
		svc.On("Status").Return(catalog.Status{
			Location:  "config.yml",
			LastError: "failed to fetch config: connection refused",
		})

		w := httptest.NewRecorder()
		HandleReadyz(svc).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), "connection refused")
		assert.NotContains(t, w.Body.String(), "built_at")
	})
}

func TestHandleVersion(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleVersion("1.2.3").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

		var info VersionInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
		assert.Equal(t, "1.2.3", info.Version)
		assert.NotEmpty(t, info.GoVersion)
	})

	t.Run("empty defaults to dev", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleVersion("").ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

		assert.Contains(t, w.Body.String(), `"version":"dev"`)
	})
}

func TestNewVersionInfo_BuildInfo(t *testing.T) {
	stamped := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		}}, true
	}

	info := newVersionInfo("1.0.0", stamped)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "2024-05-01T10:00:00Z", info.BuildTime)
	assert.True(t, info.Modified)

	none := func() (*debug.BuildInfo, bool) { return nil, false }
	info = newVersionInfo("", none)
	assert.Equal(t, "dev", info.Version)
	assert.Empty(t, info.GitCommit)
}
