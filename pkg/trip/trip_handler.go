package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type TripDTO struct {
	ID          string             `json:"id,omitempty"`
	Name        string             `json:"name"`
	Destination string             `json:"destination"`
	StartDate   string             `json:"startDate,omitempty"`
	EndDate     string             `json:"endDate,omitempty"`
	Status      string             `json:"status,omitempty"`
	Expenses    []Expense          `json:"expenses,omitempty"`
	Budget      map[string]float64 `json:"budget,omitempty"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new trip")
	w.Header().Set("Content-Type", "application/json")

	var dto TripDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), DTOToTrip(dto))
	if err != nil {
		writeTripError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TripToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	trips, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TripDTO, 0, len(trips))
	for _, t := range trips {
		dtos = append(dtos, TripToDTO(t))
	}

	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetActive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	active, found, err := h.service.Active(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "No active trip", http.StatusNotFound)
		return
	}

	if err := json.NewEncoder(w).Encode(TripToDTO(active)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]
	if err := h.service.SetActive(r.Context(), tripID); err != nil {
		writeTripError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]
	if err := h.service.Close(r.Context(), tripID); err != nil {
		writeTripError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) Reopen(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]
	if err := h.service.Reopen(r.Context(), tripID); err != nil {
		writeTripError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func writeTripError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": vErr.Fields})
	case errors.Is(err, ErrTripNotFound):
		http.Error(w, "Trip not found", http.StatusNotFound)
	case errors.Is(err, ErrTripClosed):
		http.Error(w, "Trip is closed", http.StatusConflict)
	case errors.Is(err, ErrNoActiveTrip):
		http.Error(w, "No active trip", http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func TripToDTO(t Trip) TripDTO {
	var createdAt *time.Time
	if !t.CreatedAt.IsZero() {
		createdAt = &t.CreatedAt
	}
	return TripDTO{
		ID:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Status:      string(t.Status),
		Expenses:    t.Expenses,
		Budget:      t.Budget,
		CreatedAt:   createdAt,
	}
}

func DTOToTrip(dto TripDTO) Trip {
	return Trip{
		ID:          dto.ID,
		Name:        dto.Name,
		Destination: dto.Destination,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Status:      Status(dto.Status),
	}
}
