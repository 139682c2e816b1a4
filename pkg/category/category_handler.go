package category

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.resolver.Catalog()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
