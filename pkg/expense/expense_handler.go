package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/pkg/trip"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type ExpenseDTO struct {
	ID          string     `json:"id,omitempty"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Category    string     `json:"category"`
	Date        string     `json:"date"`
	FullDate    *time.Time `json:"fullDate,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Add(r.Context(), Input{
		Description: dto.Description,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Date:        dto.Date,
	})
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	expenseID := mux.Vars(r)["id"]

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), expenseID, Input{
		Description: dto.Description,
		Amount:      dto.Amount,
		Category:    dto.Category,
		Date:        dto.Date,
	})
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	if err := json.NewEncoder(w).Encode(toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	expenseID := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), expenseID); err != nil {
		writeExpenseError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeExpenseError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": vErr.Fields})
	case errors.Is(err, ErrExpenseNotFound):
		http.Error(w, "Expense not found", http.StatusNotFound)
	case errors.Is(err, trip.ErrNoActiveTrip):
		http.Error(w, "No active trip", http.StatusConflict)
	case errors.Is(err, trip.ErrTripClosed):
		http.Error(w, "Trip is closed", http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(exp trip.Expense) ExpenseDTO {
	var fullDate *time.Time
	if !exp.FullDate.IsZero() {
		fullDate = &exp.FullDate
	}
	return ExpenseDTO{
		ID:          exp.ID,
		Description: exp.Description,
		Amount:      exp.Amount,
		Category:    exp.Category,
		Date:        exp.Date,
		FullDate:    fullDate,
	}
}
