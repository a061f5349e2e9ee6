package handler

import (
	"net/http"
	"time"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse adds catalog state to the readiness check
type ReadinessResponse struct {
	HealthResponse
	Location    string    `json:"location"`
	Digest      string    `json:"digest,omitempty"`
	BuiltAt     time.Time `json:"built_at,omitzero"`
	LastAttempt time.Time `json:"last_attempt,omitzero"`
	LastError   string    `json:"last_error,omitempty"`
	Reloads     int64     `json:"reloads"`
}

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	MsgNoModel = "no configuration loaded"
)

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once a model has been published. A failed
// reload after that does not make the service unready.
func HandleReadyz(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := svc.Status()
		resp := ReadinessResponse{
			HealthResponse: HealthResponse{Status: StatusOK},
			Location:       status.Location,
			Digest:         status.Digest,
			BuiltAt:        status.BuiltAt,
			LastAttempt:    status.LastAttempt,
			LastError:      status.LastError,
			Reloads:        status.Reloads,
		}

		if !status.Ready {
			logger.FromContext(r.Context()).Warn(LogMsgNotReady, "last_error", status.LastError)
			resp.Status = StatusUnavailable
			resp.Message = MsgNoModel
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
