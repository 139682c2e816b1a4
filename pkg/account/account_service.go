package account

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

// SnapshotFilename is the download name of the account data export.
const SnapshotFilename = "my_vacation_tracker_data.json"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type Service interface {
	Profile(ctx context.Context) (Profile, error)
	UpdatePersonalInfo(ctx context.Context, info PersonalInfo) error
	ChangePassword(ctx context.Context, current, newPassword, confirm string) error
	UpdateNotificationPrefs(ctx context.Context, prefs NotificationPrefs) error
	UpdatePreferences(ctx context.Context, prefs Preferences) error
	Deactivate(ctx context.Context) error
	DownloadData(ctx context.Context) (string, []byte, error)
}

type ServiceImpl struct {
	gateway  Gateway
	notifier notification.Notifier

	mu      sync.RWMutex
	profile Profile
}

func NewServiceImpl(gateway Gateway, notifier notification.Notifier) *ServiceImpl {
	return &ServiceImpl{
		gateway:  gateway,
		notifier: notifier,
		profile:  DefaultProfile(),
	}
}

func (s *ServiceImpl) Profile(ctx context.Context) (Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, nil
}

func (s *ServiceImpl) UpdatePersonalInfo(ctx context.Context, info PersonalInfo) error {
	vErr := validation.NewError()
	if strings.TrimSpace(info.FullName) == "" {
		vErr.Add("fullName", "Full Name is required.")
	}
	if strings.TrimSpace(info.Email) == "" {
		vErr.Add("email", "Email Address is required.")
	} else if !emailPattern.MatchString(info.Email) {
		vErr.Add("email", "Please enter a valid email address.")
	}
	if vErr.HasErrors() {
		return vErr
	}

	if err := s.gateway.Submit(ctx, OpUpdatePersonalInfo, info); err != nil {
		s.notifier.NotifySection(notification.KindError, "Failed to update personal information.", "personal")
		return fmt.Errorf("update personal info: %w", err)
	}

	s.mu.Lock()
	s.profile.FullName = info.FullName
	s.profile.Email = info.Email
	s.profile.Phone = info.Phone
	s.mu.Unlock()

	s.notifier.NotifySection(notification.KindSuccess, "Personal information updated successfully!", "personal")
	return nil
}

func (s *ServiceImpl) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	vErr := validation.NewError()
	if current == "" {
		vErr.Add("currentPassword", "Current Password is required.")
	}
	if newPassword == "" {
		vErr.Add("newPassword", "New Password is required.")
	} else if len(newPassword) < 8 {
		vErr.Add("newPassword", "Password must be at least 8 characters long.")
	}
	if newPassword != confirm {
		vErr.Add("confirmNewPassword", "Passwords do not match.")
	}
	if vErr.HasErrors() {
		return vErr
	}

	err := s.gateway.Submit(ctx, OpChangePassword, PasswordChange{
		CurrentPassword: current,
		NewPassword:     newPassword,
	})
	if err != nil {
		s.notifier.NotifySection(notification.KindError, "Incorrect current password.", "password")
		return err
	}

	s.notifier.NotifySection(notification.KindSuccess, "Password updated successfully!", "password")
	return nil
}

func (s *ServiceImpl) UpdateNotificationPrefs(ctx context.Context, prefs NotificationPrefs) error {
	if err := s.gateway.Submit(ctx, OpUpdateNotification, prefs); err != nil {
		s.notifier.NotifySection(notification.KindError, "Failed to update notifications.", "notifications")
		return fmt.Errorf("update notification preferences: %w", err)
	}

	s.mu.Lock()
	s.profile.Notifications = prefs
	s.mu.Unlock()

	s.notifier.NotifySection(notification.KindSuccess, "Notification preferences updated.", "notifications")
	return nil
}

func (s *ServiceImpl) UpdatePreferences(ctx context.Context, prefs Preferences) error {
	if err := s.gateway.Submit(ctx, OpUpdatePreferences, prefs); err != nil {
		s.notifier.NotifySection(notification.KindError, "Failed to update preferences.", "preferences")
		return fmt.Errorf("update preferences: %w", err)
	}

	s.mu.Lock()
	s.profile.Preferences = prefs
	s.mu.Unlock()

	s.notifier.NotifySection(notification.KindSuccess, "Preferences updated.", "preferences")
	return nil
}

// Deactivate is destructive; callers must have collected an explicit
// user confirmation before invoking it.
func (s *ServiceImpl) Deactivate(ctx context.Context) error {
	if err := s.gateway.Submit(ctx, OpDeactivate, nil); err != nil {
		s.notifier.NotifySection(notification.KindError, "Failed to deactivate account.", "actions")
		return fmt.Errorf("deactivate account: %w", err)
	}

	s.notifier.NotifySection(notification.KindSuccess, "Account deactivated successfully. You will be logged out.", "actions")
	return nil
}

// DownloadData serializes the full profile snapshot as pretty JSON.
func (s *ServiceImpl) DownloadData(ctx context.Context) (string, []byte, error) {
	if err := s.gateway.Submit(ctx, OpDownloadData, nil); err != nil {
		s.notifier.NotifySection(notification.KindError, "Failed to download data.", "download")
		return "", nil, fmt.Errorf("download account data: %w", err)
	}

	s.mu.RLock()
	snapshot := s.profile
	s.mu.RUnlock()

	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("encode account data: %w", err)
	}
	return SnapshotFilename, encoded, nil
}
