package budget

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budget, err := h.service.Get(r.Context())
	if err != nil {
		writeBudgetError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(budget); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating budget for active trip")
	w.Header().Set("Content-Type", "application/json")

	var allocations map[string]float64
	if err := json.NewDecoder(r.Body).Decode(&allocations); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Update(r.Context(), allocations); err != nil {
		writeBudgetError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(allocations); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeBudgetError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": vErr.Fields})
	case errors.Is(err, trip.ErrNoActiveTrip):
		http.Error(w, "No active trip", http.StatusConflict)
	case errors.Is(err, trip.ErrTripClosed):
		http.Error(w, "Trip is closed", http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
