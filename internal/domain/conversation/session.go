package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/posty-app/post-api/internal/domain/flow"
	"github.com/posty-app/post-api/internal/infrastructure/logger"
	"github.com/posty-app/post-api/internal/infrastructure/metrics"
	"github.com/posty-app/post-api/internal/utils/platformerrors"
)

// Session binds one conversation engine to an id handed out to the client.
type Session struct {
	ID        string
	Engine    *Engine
	CreatedAt time.Time
}

// SessionService keeps live conversations in memory. Sessions are ephemeral:
// a restart of the process drops them, the client simply starts over.
type SessionService struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	flow      *flow.Flow
	generator PostGenerator
}

func NewSessionService(f *flow.Flow, generator PostGenerator) *SessionService {
	return &SessionService{
		sessions:  make(map[string]*Session),
		flow:      f,
		generator: generator,
	}
}

// Create starts a fresh conversation and returns it with the opening
// question already in the transcript.
func (s *SessionService) Create(ctx context.Context) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Engine:    NewEngine(s.flow, s.generator),
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	metrics.ActiveSessions.Inc()
	log := logger.GetLogger()
	log.Info().Str("session_id", session.ID).Msg("[SessionService] conversation started")
	return session
}

// Get returns the session with the given id.
func (s *SessionService) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "session not found", nil, "")
	}
	return session, nil
}

// Delete removes a finished session.
func (s *SessionService) Delete(id string) {
	s.mu.Lock()
	_, existed := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if existed {
		metrics.ActiveSessions.Dec()
	}
}
