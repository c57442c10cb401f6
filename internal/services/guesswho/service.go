package guesswho

import (
	"context"
	"log/slog"
	"time"

	"github.com/pitwall/pitgames/internal/dependencies/clock"
	"github.com/pitwall/pitgames/internal/dependencies/random"
	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/storage"
)

const (
	// SessionExpiry is the logical TTL of a session awaiting players
	SessionExpiry = 300 * time.Second

	// MaxRosterSize caps the pilots shown to both players
	MaxRosterSize = 20

	// SessionIDLength is the length of generated session identifiers
	SessionIDLength = 8
	// SessionIDAlphabet is the character set of session identifiers
	SessionIDAlphabet = "0123456789abcdef"

	// pictureCategory is the entity-store picture category for pilots
	pictureCategory = "drivers"
)

// ChampionshipSelection names one championship year to draw pilots from
type ChampionshipSelection struct {
	Name string
	Year string
}

// SessionView is what a joining player receives: the shared roster and
// the pilot that player must guess
type SessionView struct {
	Pilots      map[model.DriverID]model.Pilot
	SecretPilot model.Pilot
}

// Service manages the guess-who session lifecycle
type Service struct {
	storage  storage.Storage
	entities entity.Store
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// New creates a new guess-who Service
func New(
	storage storage.Storage,
	entities entity.Store,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:  storage,
		entities: entities,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// CreateGame builds a session from the given championship selections and
// returns its identifier. The roster is the shuffled union of every driver
// referenced in the selected championship years, capped at MaxRosterSize,
// and the two secrets are distinct roster members.
func (s *Service) CreateGame(ctx context.Context, selections []ChampionshipSelection) (model.SessionID, error) {
	s.sweepExpired(ctx)

	if len(selections) == 0 {
		return "", model.ErrNoChampionshipSelected
	}

	roster, err := s.collectRoster(ctx, selections)
	if err != nil {
		return "", err
	}
	if len(roster) < 2 {
		return "", model.ErrInsufficientDrivers
	}

	s.random.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
	if len(roster) > MaxRosterSize {
		roster = roster[:MaxRosterSize]
	}

	pilots := make(map[model.DriverID]model.Pilot, len(roster))
	for _, id := range roster {
		pilots[id] = model.Pilot{
			ID:         id,
			PictureURL: s.entities.ResolvePicture(pictureCategory, id),
		}
	}

	// Two distinct secrets drawn from the roster
	first := s.random.Intn(len(roster))
	second := s.random.Intn(len(roster) - 1)
	if second >= first {
		second++
	}

	session := &model.GameSession{
		CreatedAt: s.clock.Now(),
		Pilots:    pilots,
		Secrets: map[int]model.DriverID{
			model.PlayerSlot1: roster[first],
			model.PlayerSlot2: roster[second],
		},
	}

	// Generate an unguessable ID; regenerate rather than overwrite on the
	// (negligible) chance of a collision
	for {
		id := model.SessionID(s.random.String(SessionIDLength, SessionIDAlphabet))
		exists, err := s.storage.SessionExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			session.ID = id
			break
		}
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return "", err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.Int("roster_size", len(roster)),
		slog.Int("selections", len(selections)),
	)

	return session.ID, nil
}

// JoinGame marks the given slot as joined and returns the roster plus that
// slot's secret. The second join to complete a session deletes it; a
// re-join of the same slot is idempotent.
func (s *Service) JoinGame(ctx context.Context, id model.SessionID, slot int) (*SessionView, error) {
	s.sweepExpired(ctx)

	if slot != model.PlayerSlot1 && slot != model.PlayerSlot2 {
		return nil, model.ErrInvalidPlayerSlot
	}

	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.ExpiredAt(s.clock.Now(), SessionExpiry) {
		_ = s.storage.DeleteSession(ctx, id)
		return nil, model.ErrSessionExpired
	}

	session.SetReady(slot)

	if session.BothReady() {
		// Fully consumed; both players hold their view now
		if err := s.storage.DeleteSession(ctx, id); err != nil {
			return nil, err
		}
		s.logger.Info("session completed",
			slog.String("session_id", string(id)),
		)
	} else {
		if err := s.storage.SaveSession(ctx, session); err != nil {
			return nil, err
		}
	}

	return &SessionView{
		Pilots:      session.Pilots,
		SecretPilot: session.Pilots[session.Secrets[slot]],
	}, nil
}

// collectRoster unions the distinct driver identifiers across the
// selected championship years, preserving first-seen order
func (s *Service) collectRoster(ctx context.Context, selections []ChampionshipSelection) ([]model.DriverID, error) {
	seen := make(map[model.DriverID]struct{})
	var roster []model.DriverID
	for _, sel := range selections {
		record, err := s.entities.GetChampionshipYear(ctx, sel.Name, sel.Year)
		if err != nil {
			return nil, err
		}
		for _, id := range record.DriverIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			roster = append(roster, id)
		}
	}
	return roster, nil
}

// sweepExpired deletes sessions past their TTL that never saw both
// players join. Completed sessions are deleted by JoinGame itself.
func (s *Service) sweepExpired(ctx context.Context) {
	sessions, err := s.storage.ListSessions(ctx)
	if err != nil {
		s.logger.Warn("expiry sweep failed",
			slog.String("error", err.Error()),
		)
		return
	}

	now := s.clock.Now()
	swept := 0
	for _, session := range sessions {
		if !session.ExpiredAt(now, SessionExpiry) || session.BothReady() {
			continue
		}
		if err := s.storage.DeleteSession(ctx, session.ID); err != nil {
			s.logger.Warn("failed to delete expired session",
				slog.String("session_id", string(session.ID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		swept++
	}

	if swept > 0 {
		s.logger.Info("expired sessions swept",
			slog.Int("count", swept),
		)
	}
}
