package memory

import (
	"context"
	"sync"

	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzle   *model.DailyPuzzle
	sessions map[model.SessionID]*model.GameSession
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.GameSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Daily puzzle operations

func (s *Storage) SaveDailyPuzzle(ctx context.Context, puzzle *model.DailyPuzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzle = puzzle
	return nil
}

func (s *Storage) GetDailyPuzzle(ctx context.Context) (*model.DailyPuzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.puzzle == nil {
		return nil, model.ErrPuzzleNotFound
	}
	return s.puzzle, nil
}

func (s *Storage) DeleteDailyPuzzle(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzle = nil
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) SessionExists(ctx context.Context, id model.SessionID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok, nil
}

func (s *Storage) ListSessions(ctx context.Context) ([]*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.GameSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions, nil
}
