package account

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type PasswordChangeDTO struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	profile, err := h.service.Profile(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(profile); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var info PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdatePersonalInfo(r.Context(), info); err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var dto PasswordChangeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := h.service.ChangePassword(r.Context(), dto.CurrentPassword, dto.NewPassword, dto.ConfirmNewPassword)
	if err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdateNotificationPrefs(w http.ResponseWriter, r *http.Request) {
	var prefs NotificationPrefs
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateNotificationPrefs(r.Context(), prefs); err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdatePreferences(r.Context(), prefs); err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Deactivate expects the client to have asked the user for explicit
// confirmation first.
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deactivating account")

	if err := h.service.Deactivate(r.Context()); err != nil {
		writeAccountError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DownloadData(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.service.DownloadData(r.Context())
	if err != nil {
		writeAccountError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		log.Errorf("failed to write account data payload: %v", err)
	}
}

func (h *Handler) GetTimeZones(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(TimeZones()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Languages()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeAccountError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": vErr.Fields})
	case errors.Is(err, ErrIncorrectPassword):
		http.Error(w, "Incorrect current password.", http.StatusUnauthorized)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
