package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/203225014/WB-calc/internal/engine"
	"github.com/203225014/WB-calc/internal/middleware"
	"github.com/203225014/WB-calc/internal/model"
	"github.com/203225014/WB-calc/internal/service"
)

const (
	defaultHistoryLimit = 10
	defaultListLimit    = 100
)

// CalculationHandler handles HTTP requests for calculations and history.
type CalculationHandler struct {
	service *service.CalculationService
	logger  *zap.Logger
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(svc *service.CalculationService, logger *zap.Logger) *CalculationHandler {
	return &CalculationHandler{service: svc, logger: logger}
}

// HandleCalculate handles POST /calculate/ and POST /calculations/ requests.
func (h *CalculationHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Calculate(r.Context(), user.ID, req)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse(verr.Error()))
			return
		}
		// Anything the engine or store throws beyond validation stays opaque
		// to the client; the reason goes to the log.
		h.logger.Error("calculation failed", zap.Int64("user_id", user.ID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse("calculation error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleHistory handles GET /history/ requests.
func (h *CalculationHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skip, limit := pagination(r, defaultHistoryLimit)

	resp, err := h.service.History(r.Context(), user.ID, skip, limit)
	if err != nil {
		h.logger.Error("history listing failed", zap.Int64("user_id", user.ID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if resp == nil {
		resp = []model.CalculationResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleListAll handles GET /calculations/ requests. The listing is not
// scoped to the caller; any authenticated user sees all records.
func (h *CalculationHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	skip, limit := pagination(r, defaultListLimit)

	resp, err := h.service.ListAll(r.Context(), skip, limit)
	if err != nil {
		h.logger.Error("calculations listing failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	if resp == nil {
		resp = []model.CalculationResponse{}
	}
	writeJSON(w, http.StatusOK, resp)
}

// pagination reads skip and limit query parameters, falling back to skip 0
// and the given default limit on absent or unusable values.
func pagination(r *http.Request, defaultLimit int) (skip, limit int) {
	skip = 0
	limit = defaultLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}
