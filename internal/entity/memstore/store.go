package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/model"
)

// DefaultPicture is returned for identifiers without a registered picture
const DefaultPicture = "pictures/default.png"

// Store is an in-memory entity store for tests and dev mode
type Store struct {
	mu sync.RWMutex

	drivers       map[model.DriverID]*model.DriverRecord
	championships map[string]map[string]*model.ChampionshipYear
	pictures      map[string]string // "<category>/<id>" -> path
}

// New creates an empty in-memory entity store
func New() *Store {
	return &Store{
		drivers:       make(map[model.DriverID]*model.DriverRecord),
		championships: make(map[string]map[string]*model.ChampionshipYear),
		pictures:      make(map[string]string),
	}
}

// Ensure Store implements the interface
var _ entity.Store = (*Store)(nil)

// AddDriver registers a driver record
func (s *Store) AddDriver(record *model.DriverRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers[record.ID] = record
}

// AddChampionshipYear registers one season of a championship
func (s *Store) AddChampionshipYear(record *model.ChampionshipYear) {
	s.mu.Lock()
	defer s.mu.Unlock()
	years, ok := s.championships[record.Championship]
	if !ok {
		years = make(map[string]*model.ChampionshipYear)
		s.championships[record.Championship] = years
	}
	years[record.Year] = record
}

// AddPicture registers a picture path for the given category and identifier
func (s *Store) AddPicture(category string, id model.DriverID, path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pictures[category+"/"+string(id)] = path
}

func (s *Store) ListDriverIDs(ctx context.Context) ([]model.DriverID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.DriverID, 0, len(s.drivers))
	for id := range s.drivers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *Store) GetDriver(ctx context.Context, id model.DriverID) (*model.DriverRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.drivers[id]
	if !ok {
		return nil, model.ErrDriverNotFound
	}
	return record, nil
}

func (s *Store) GetChampionshipYear(ctx context.Context, name, year string) (*model.ChampionshipYear, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	years, ok := s.championships[name]
	if !ok {
		return nil, model.ErrChampionshipNotFound
	}
	record, ok := years[year]
	if !ok {
		return nil, model.ErrChampionshipNotFound
	}
	return record, nil
}

func (s *Store) ListChampionships(ctx context.Context) (map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	championships := make(map[string][]string, len(s.championships))
	for name, years := range s.championships {
		list := make([]string, 0, len(years))
		for year := range years {
			list = append(list, year)
		}
		sort.Strings(list)
		championships[name] = list
	}
	return championships, nil
}

func (s *Store) ResolvePicture(category string, id model.DriverID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if path, ok := s.pictures[category+"/"+string(id)]; ok {
		return path
	}
	return DefaultPicture
}
