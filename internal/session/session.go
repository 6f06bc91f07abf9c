package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Session identifies one conversation scope. Sessions live in process
// memory only; nothing is persisted across restarts.
type Session struct {
	AppName string
	UserID  string
	ID      string
}

// Service creates sessions. Creation may fail (backend unavailable,
// invalid input); callers decide how to recover.
type Service interface {
	Create(ctx context.Context, appName, userID string) (*Session, error)
}

// InMemoryService mints sessions with fresh IDs.
type InMemoryService struct{}

func NewInMemoryService() *InMemoryService {
	return &InMemoryService{}
}

func (s *InMemoryService) Create(ctx context.Context, appName, userID string) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return &Session{
		AppName: appName,
		UserID:  userID,
		ID:      uuid.NewString(),
	}, nil
}

// Manager hands out one session per user for the lifetime of the process.
type Manager struct {
	svc     Service
	appName string

	mu       sync.Mutex
	sessions map[string]*Session // keyed by user id
}

func NewManager(svc Service, appName string) *Manager {
	return &Manager{
		svc:      svc,
		appName:  appName,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the user's existing session, or creates one. A failed
// create is blindly retried once; if the retry also fails, that failure
// propagates. Idempotency is best-effort: the two attempts are not held
// under the lock, so concurrent callers for the same user may race and one
// winner is kept.
func (m *Manager) GetOrCreate(ctx context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	if sess, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return sess, nil
	}
	m.mu.Unlock()

	sess, err := m.svc.Create(ctx, m.appName, userID)
	if err != nil {
		slog.Warn("session create failed, retrying", "user_id", userID, "error", err)
		sess, err = m.svc.Create(ctx, m.appName, userID)
		if err != nil {
			return nil, fmt.Errorf("creating session: %w", err)
		}
	}

	m.mu.Lock()
	if existing, ok := m.sessions[userID]; ok {
		sess = existing
	} else {
		m.sessions[userID] = sess
	}
	m.mu.Unlock()

	return sess, nil
}
