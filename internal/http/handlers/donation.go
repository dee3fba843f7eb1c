package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bloomnet-dispatch/internal/apperr"
	"bloomnet-dispatch/internal/domain"
	"bloomnet-dispatch/internal/logx"
)

// DonationHandler serves HTTP endpoints for donation resources and claims.
type DonationHandler struct {
	uc     dispatchUsecase
	logger logx.Logger
}

// NewDonationHandler wires a dispatchUsecase into HTTP handlers.
func NewDonationHandler(uc dispatchUsecase, base *Handlers) *DonationHandler {
	return &DonationHandler{uc: uc, logger: base.Logger}
}

// Create handles POST /donation.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDonationRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	created, err := h.uc.Submit(r.Context(), domain.DonationDraft{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		PackType:    req.PackType,
		Donor:       req.Donor,
		Location:    req.Location,
		Lat:         req.Lat,
		Lon:         req.Lon,
		ExpiryHours: req.ExpiryHours,
	})
	switch {
	case err == nil:
		w.Header().Set("Location", "/donation/"+strconv.FormatInt(created.ID, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, toDonationDTO(created))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /donations.
func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.uc.Donations(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]donationDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toDonationViewDTO(v))
	}
	writeJSON(h.logger, w, r, http.StatusOK, out)
}

// Claim handles POST /donation/{id}/claim.
func (h *DonationHandler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	claimed, err := h.uc.Claim(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, toDonationDTO(claimed))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.AlreadyClaimed):
		writeError(h.logger, w, r, http.StatusConflict, "already claimed")
	case errors.Is(err, apperr.EmptyPool):
		writeError(h.logger, w, r, http.StatusConflict, "no responders available")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
