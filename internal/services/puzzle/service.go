package puzzle

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"sort"

	"github.com/pitwall/pitgames/internal/dependencies/clock"
	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/storage"
)

const (
	// MinCareerResults is the race-result count a driver needs to be
	// eligible as a daily puzzle answer
	MinCareerResults = 30

	// MinGuessLength is the shortest normalized guess accepted
	MinGuessLength = 2
)

// Service selects the driver of the day and validates guesses
type Service struct {
	storage  storage.Storage
	entities entity.Store
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new puzzle Service
func New(storage storage.Storage, entities entity.Store, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		entities: entities,
		clock:    clock,
		logger:   logger,
	}
}

// DriverOfTheDay returns the persisted puzzle if its date is today,
// otherwise recomputes it. The selection is a deterministic function of
// the date and the eligible driver set, so concurrent recomputations for
// the same day agree and the persisted copy doubles as a cache.
func (s *Service) DriverOfTheDay(ctx context.Context) (*model.DailyPuzzle, error) {
	now := s.clock.Now()
	today := now.Format(model.PuzzleDateFormat)

	stored, err := s.storage.GetDailyPuzzle(ctx)
	if err == nil && stored.Date == today {
		return stored, nil
	}
	if err != nil && !errors.Is(err, model.ErrPuzzleNotFound) {
		return nil, err
	}

	eligible, err := s.eligibleDrivers(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, model.ErrNoEligibleDriver
	}

	index := int(dateHash(today) % uint32(len(eligible)))
	record, err := s.entities.GetDriver(ctx, eligible[index])
	if err != nil {
		return nil, err
	}

	puzzle := &model.DailyPuzzle{
		Date:      today,
		FirstName: record.FirstName,
		LastName:  record.LastName,
	}

	if err := s.storage.SaveDailyPuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	s.logger.Info("daily puzzle selected",
		slog.String("date", today),
		slog.String("driver_id", string(record.ID)),
		slog.Int("eligible_count", len(eligible)),
	)

	return puzzle, nil
}

// ValidateGuess reports whether the guess names any known driver's last
// name, after normalization. It does not compare against the day's answer,
// so a true result reveals nothing about the puzzle.
func (s *Service) ValidateGuess(ctx context.Context, raw string) (bool, error) {
	guess := Normalize(raw)
	if len(guess) < MinGuessLength {
		return false, nil
	}

	ids, err := s.entities.ListDriverIDs(ctx)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		record, err := s.entities.GetDriver(ctx, id)
		if err != nil {
			continue
		}
		if Normalize(record.LastName) == guess {
			return true, nil
		}
	}
	return false, nil
}

// eligibleDrivers returns the lexicographically sorted identifiers of
// drivers with enough career results and a season in the current or
// previous year
func (s *Service) eligibleDrivers(ctx context.Context, currentYear int) ([]model.DriverID, error) {
	ids, err := s.entities.ListDriverIDs(ctx)
	if err != nil {
		return nil, err
	}

	var eligible []model.DriverID
	for _, id := range ids {
		record, err := s.entities.GetDriver(ctx, id)
		if err != nil {
			// Unreadable records are skipped rather than failing the day
			continue
		}
		if record.TotalResults() < MinCareerResults {
			continue
		}
		if !record.ActiveIn(currentYear, currentYear-1) {
			continue
		}
		eligible = append(eligible, id)
	}

	sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })
	return eligible, nil
}

// dateHash is a stable 32-bit hash of the ISO date string. FNV-1a is
// deterministic across process restarts and platforms, which the daily
// selection depends on.
func dateHash(date string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(date))
	return h.Sum32()
}
