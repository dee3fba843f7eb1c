package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
	"bloomnet-dispatch/internal/logx"
)

// ResponderHandler serves HTTP endpoints for the volunteer pool.
type ResponderHandler struct {
	uc     responderUsecase
	logger logx.Logger
}

// NewResponderHandler wires a responderUsecase into HTTP handlers.
func NewResponderHandler(uc responderUsecase, base *Handlers) *ResponderHandler {
	return &ResponderHandler{uc: uc, logger: base.Logger}
}

// GetByID handles GET /responder/{id}.
func (h *ResponderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	got, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toResponderDTO(got))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /responders.
func (h *ResponderHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]responderDTO, 0, len(list))
	for _, v := range list {
		out = append(out, toResponderDTO(v))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// Create handles POST /responder.
func (h *ResponderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createResponderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	resp := domain.Responder{
		Name:       req.Name,
		DistanceKm: req.DistanceKm,
		Workload:   req.Workload,
		Vehicle:    req.Vehicle,
		Rating:     req.Rating,
	}
	id, err := h.uc.Create(r.Context(), &resp)
	switch {
	case err == nil:
		w.Header().Set("Location", "/responder/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
