package notification

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	center *Center
}

func NewHandler(center *Center) *Handler {
	return &Handler{center: center}
}

func (h *Handler) GetActive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	notifications := h.center.Active()
	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	h.center.Clear()
	w.WriteHeader(http.StatusNoContent)
}
