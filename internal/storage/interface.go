package storage

import (
	"context"

	"github.com/pitwall/pitgames/internal/model"
)

// Storage defines the interface for data persistence.
// The original deployment kept this state as JSON files on disk;
// the core depends only on this key-value abstraction.
type Storage interface {
	// Daily puzzle operations (singleton key)
	SaveDailyPuzzle(ctx context.Context, puzzle *model.DailyPuzzle) error
	GetDailyPuzzle(ctx context.Context) (*model.DailyPuzzle, error)
	DeleteDailyPuzzle(ctx context.Context) error

	// Guess-who session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	SessionExists(ctx context.Context, id model.SessionID) (bool, error)
	ListSessions(ctx context.Context) ([]*model.GameSession, error)
}
