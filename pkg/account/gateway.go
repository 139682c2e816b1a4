package account

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
)

type Operation string

const (
	OpUpdatePersonalInfo Operation = "personal"
	OpChangePassword     Operation = "password"
	OpUpdateNotification Operation = "notifications"
	OpUpdatePreferences  Operation = "preferences"
	OpDeactivate         Operation = "deactivate"
	OpDownloadData       Operation = "download"
)

var ErrIncorrectPassword = errors.New("incorrect current password")

// PasswordChange is the payload of the password-change operation.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
}

// Gateway is the remote account backend as seen by the service layer.
// A real implementation would make network calls; the simulated one
// below stands in for it without touching the service logic.
type Gateway interface {
	Submit(ctx context.Context, op Operation, payload any) error
}

// acceptedPassword is the single current password the simulation
// accepts for password changes.
const acceptedPassword = "password123"

// SimulatedGateway models every account operation as a fixed-latency
// call that always succeeds, except a password change with the wrong
// current password. Pending calls cannot be aborted beyond context
// cancellation; there is no retry.
type SimulatedGateway struct {
	latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) Submit(ctx context.Context, op Operation, payload any) error {
	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return ctx.Err()
	}

	if op == OpChangePassword {
		change, ok := payload.(PasswordChange)
		if !ok || change.CurrentPassword != acceptedPassword {
			log.Debugf("simulated gateway rejected %s operation", op)
			return ErrIncorrectPassword
		}
	}

	log.Debugf("simulated gateway accepted %s operation", op)
	return nil
}
