package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/FactoryModExplorer_Go/internal/catalog"
	"github.com/osse101/FactoryModExplorer_Go/internal/logger"
)

// QueryParamForce makes a reload rebuild even when the document is unchanged
const QueryParamForce = "force"

// ReloadResponse reports the outcome of a reload
type ReloadResponse struct {
	Message string     `json:"message"`
	Changed bool       `json:"changed"`
	Summary SummaryDTO `json:"summary"`
}

// HandleReload fetches the configuration again and publishes the new model.
// A failed reload keeps the current model and answers 502.
func HandleReload(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		force, _ := strconv.ParseBool(r.URL.Query().Get(QueryParamForce))
		res, err := svc.Reload(r.Context(), force)
		if err != nil {
			log.Error(LogMsgReloadFailed, "error", err)
			respondError(w, http.StatusBadGateway, ErrMsgReloadFailed+": "+err.Error())
			return
		}

		msg := MsgReloadedSuccess
		if !res.Changed {
			msg = MsgReloadUnchanged
		}
		respondJSON(w, http.StatusOK, ReloadResponse{
			Message: msg,
			Changed: res.Changed,
			Summary: newSummaryDTO(res.Snapshot),
		})
	}
}
