package account

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vacaytracker/vacaytracker/pkg/notification"
	"github.com/vacaytracker/vacaytracker/pkg/validation"
)

type notifierStub struct {
	kinds    []notification.Kind
	messages []string
	sections []string
}

func (n *notifierStub) Notify(kind notification.Kind, message string) {
	n.NotifySection(kind, message, "")
}

func (n *notifierStub) NotifySection(kind notification.Kind, message string, section string) {
	n.kinds = append(n.kinds, kind)
	n.messages = append(n.messages, message)
	n.sections = append(n.sections, section)
}

func setupAccountService(t *testing.T) (*ServiceImpl, *notifierStub) {
	t.Helper()
	notifier := &notifierStub{}
	return NewServiceImpl(NewSimulatedGateway(0), notifier), notifier
}

func TestUpdatePersonalInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("should update the stored profile", func(t *testing.T) {
		// given
		service, notifier := setupAccountService(t)

		// when
		err := service.UpdatePersonalInfo(ctx, PersonalInfo{
			FullName: "Jamie Doe", Email: "jamie.doe@example.com", Phone: "555-987-6543",
		})

		// then
		require.NoError(t, err)
		profile, err := service.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Jamie Doe", profile.FullName)
		assert.Equal(t, "jamie.doe@example.com", profile.Email)
		assert.Contains(t, notifier.messages, "Personal information updated successfully!")
		assert.Contains(t, notifier.sections, "personal")
	})

	t.Run("should reject a malformed email address", func(t *testing.T) {
		// given
		service, _ := setupAccountService(t)

		// when
		err := service.UpdatePersonalInfo(ctx, PersonalInfo{FullName: "Jamie Doe", Email: "not-an-email"})

		// then
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Please enter a valid email address.", vErr.Fields["email"])
	})

	t.Run("should require name and email", func(t *testing.T) {
		// given
		service, _ := setupAccountService(t)

		// when
		err := service.UpdatePersonalInfo(ctx, PersonalInfo{})

		// then
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "fullName")
		assert.Contains(t, vErr.Fields, "email")
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("should accept the correct current password", func(t *testing.T) {
		// given
		service, notifier := setupAccountService(t)

		// when
		err := service.ChangePassword(ctx, "password123", "longenough1", "longenough1")

		// then
		require.NoError(t, err)
		assert.Contains(t, notifier.messages, "Password updated successfully!")
		assert.Contains(t, notifier.sections, "password")
	})

	t.Run("should reject an incorrect current password", func(t *testing.T) {
		// given
		service, notifier := setupAccountService(t)

		// when
		err := service.ChangePassword(ctx, "wrong-password", "longenough1", "longenough1")

		// then
		assert.True(t, errors.Is(err, ErrIncorrectPassword))
		assert.Contains(t, notifier.messages, "Incorrect current password.")
	})

	t.Run("should reject a short new password", func(t *testing.T) {
		// given
		service, _ := setupAccountService(t)

		// when
		err := service.ChangePassword(ctx, "password123", "short", "short")

		// then
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Password must be at least 8 characters long.", vErr.Fields["newPassword"])
	})

	t.Run("should reject mismatched confirmation", func(t *testing.T) {
		// given
		service, _ := setupAccountService(t)

		// when
		err := service.ChangePassword(ctx, "password123", "longenough1", "different1")

		// then
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Passwords do not match.", vErr.Fields["confirmNewPassword"])
	})
}

func TestUpdatePreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist notification and display preferences", func(t *testing.T) {
		// given
		service, notifier := setupAccountService(t)

		// when
		err := service.UpdateNotificationPrefs(ctx, NotificationPrefs{Email: false, Push: true})
		require.NoError(t, err)
		err = service.UpdatePreferences(ctx, Preferences{TimeZone: "Europe/Paris", Language: "fr"})

		// then
		require.NoError(t, err)
		profile, err := service.Profile(ctx)
		require.NoError(t, err)
		assert.True(t, profile.Notifications.Push)
		assert.False(t, profile.Notifications.Email)
		assert.Equal(t, "Europe/Paris", profile.Preferences.TimeZone)
		assert.Equal(t, "fr", profile.Preferences.Language)
		assert.Contains(t, notifier.sections, "notifications")
		assert.Contains(t, notifier.sections, "preferences")
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("should raise the logout notice", func(t *testing.T) {
		// given
		service, notifier := setupAccountService(t)

		// when
		err := service.Deactivate(context.Background())

		// then
		require.NoError(t, err)
		assert.Contains(t, notifier.messages, "Account deactivated successfully. You will be logged out.")
		assert.Contains(t, notifier.sections, "actions")
	})
}

func TestDownloadData(t *testing.T) {
	t.Run("should serialize the profile under the snapshot filename", func(t *testing.T) {
		// given
		service, _ := setupAccountService(t)

		// when
		filename, data, err := service.DownloadData(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, SnapshotFilename, filename)

		var decoded Profile
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, DefaultProfile(), decoded)
	})
}

func TestSimulatedGateway(t *testing.T) {
	t.Run("should honor context cancellation while pending", func(t *testing.T) {
		// given
		gateway := NewSimulatedGateway(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// when
		err := gateway.Submit(ctx, OpDeactivate, nil)

		// then
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
