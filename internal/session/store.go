package session

import (
	"context"
	"fmt"
	"sync"

	"swifttrack-dashboard/internal/domain/record"
	"swifttrack-dashboard/internal/logger"
	appErrors "swifttrack-dashboard/pkg/errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StorageKey is the fixed key the logged-in identity is persisted under.
const StorageKey = "swifttrack_user"

// Store holds the authenticated identity for the session and mirrors it
// to Storage so a restart restores it. Sessions never expire.
type Store struct {
	storage Storage

	mu      sync.RWMutex
	current *record.Identity
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Login persists identity and makes it the current session. The in-memory
// session is only replaced once the write succeeded.
func (s *Store) Login(ctx context.Context, identity record.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.storage.Put(ctx, StorageKey, string(payload)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	logger.Info("Session started",
		zap.String("user_id", identity.UserID),
		zap.String("role", identity.Role),
		zap.String("event", "session_login"),
	)
	return nil
}

// Logout clears the in-memory session first, then the persisted copy.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	previous := s.current
	s.current = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if previous != nil {
		logger.Info("Session ended",
			zap.String("user_id", previous.UserID),
			zap.String("event", "session_logout"),
		)
	}
	return nil
}

// Restore adopts the persisted identity if there is one and it is a JSON
// object with a role. A malformed value leaves the session empty; only a
// storage failure is returned as an error.
func (s *Store) Restore(ctx context.Context) (*record.Identity, error) {
	raw, found, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}

	identity, err := parseIdentity(raw)
	if err != nil {
		logger.Warn("Ignoring persisted session",
			zap.String("key", StorageKey),
			zap.Error(err),
		)
		return nil, nil
	}

	s.mu.Lock()
	s.current = identity
	s.mu.Unlock()

	logger.Info("Session restored",
		zap.String("user_id", identity.UserID),
		zap.String("role", identity.Role),
	)

	copied := *identity
	return &copied, nil
}

// Current returns a copy of the session identity, or nil when logged out.
func (s *Store) Current() *record.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func parseIdentity(raw string) (*record.Identity, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return nil, appErrors.ErrMalformedSession
	}
	role, ok := fields["role"].(string)
	if !ok || role == "" {
		return nil, fmt.Errorf("%w: missing role", appErrors.ErrMalformedSession)
	}

	var identity record.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrMalformedSession, err)
	}
	return &identity, nil
}
