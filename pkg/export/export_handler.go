package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateExport renders the requested report and serves it as an
// attachment download. The native "share" path, where available, is
// the client's concern; this endpoint is also its download fallback.
func (h *Handler) CreateExport(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating export")

	var opts Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.service.Export(r.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrNoActiveTrip):
			http.Error(w, "No active trip", http.StatusConflict)
		case errors.Is(err, ErrNoMatchingExpenses):
			http.Error(w, "No expenses match the selected filters", http.StatusUnprocessableEntity)
		case errors.Is(err, ErrUnsupportedFormat):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	if _, err := w.Write(result.Data); err != nil {
		log.Errorf("failed to write export payload: %v", err)
	}
}
