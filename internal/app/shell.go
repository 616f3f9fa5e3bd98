// Package app ties the session, the router and the mounted dashboard
// together for one operator.
package app

import (
	"context"
	"errors"
	"sync"

	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/logger"
	"swifttrack-dashboard/internal/navigation"
	"swifttrack-dashboard/internal/session"
	"swifttrack-dashboard/internal/usecase/auth"
	"swifttrack-dashboard/internal/view"
	appErrors "swifttrack-dashboard/pkg/errors"

	"go.uber.org/zap"
)

// ViewFactory builds the dashboard for an identity.
type ViewFactory func(identity *record.Identity) (*view.View, error)

// Shell owns the session and the one mounted view. Mounting replaces the
// previous view entirely.
type Shell struct {
	store *session.Store
	auth  *auth.Service
	views ViewFactory

	mu      sync.RWMutex
	name    string
	mounted *view.View
}

func NewShell(store *session.Store, authService *auth.Service, views ViewFactory) *Shell {
	return &Shell{
		store: store,
		auth:  authService,
		views: views,
		name:  navigation.ViewLogin,
	}
}

// Start restores a persisted session and mounts its view.
func (s *Shell) Start(ctx context.Context) error {
	identity, err := s.store.Restore(ctx)
	if err != nil {
		s.unmount()
		return err
	}
	return s.mount(ctx, identity)
}

// Login authenticates and, on success, persists the session and mounts
// the routed view. A rejected login leaves the shell on the login view
// and is reported through the result's message.
func (s *Shell) Login(ctx context.Context, username, password string) (*auth.Result, error) {
	result, err := s.auth.Login(ctx, auth.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if !result.OK() {
		return result, nil
	}

	if err := s.store.Login(ctx, *result.Identity); err != nil {
		return nil, err
	}
	if err := s.mount(ctx, result.Identity); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout clears the session and returns to the login view. The view is
// unmounted even when clearing persisted storage fails.
func (s *Shell) Logout(ctx context.Context) error {
	err := s.store.Logout(ctx)
	s.unmount()
	return err
}

func (s *Shell) ViewName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// View returns the mounted dashboard, or nil on the login view and for
// roles without a dashboard.
func (s *Shell) View() *view.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mounted
}

func (s *Shell) Identity() *record.Identity {
	return s.store.Current()
}

// mount swaps in the view for identity and performs its initial fetch. A
// failed fetch is logged by the view and does not fail the mount.
func (s *Shell) mount(ctx context.Context, identity *record.Identity) error {
	name := navigation.Resolve(identity)
	if identity == nil {
		s.unmount()
		return nil
	}

	v, err := s.views(identity)
	if errors.Is(err, appErrors.ErrUnknownView) {
		logger.Warn("No dashboard for role",
			zap.String("user_id", identity.UserID),
			zap.String("role", identity.Role),
		)
		s.swap(name, nil)
		return nil
	}
	if err != nil {
		return err
	}

	s.swap(name, v)
	logger.Info("View mounted",
		zap.String("view", name),
		zap.String("user_id", identity.UserID),
	)

	_ = v.Refresh(ctx)
	return nil
}

func (s *Shell) unmount() {
	s.swap(navigation.ViewLogin, nil)
}

func (s *Shell) swap(name string, v *view.View) {
	s.mu.Lock()
	s.name = name
	s.mounted = v
	s.mu.Unlock()
}
