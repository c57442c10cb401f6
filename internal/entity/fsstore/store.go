package fsstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pitwall/pitgames/internal/entity"
	"github.com/pitwall/pitgames/internal/model"
)

// pictureExtensions is the ordered list of extensions tried when
// resolving a picture
var pictureExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// DefaultPicture is the asset path returned when no picture exists
const DefaultPicture = "pictures/default.png"

// Store is a filesystem-backed entity store.
//
// Layout under the root directory:
//
//	drivers/<id>.json
//	championships/<name>/<year>.json
//	pictures/<category>/<id>.<ext>
type Store struct {
	root   string
	logger *slog.Logger
}

// New creates a filesystem entity store rooted at dir
func New(dir string, logger *slog.Logger) *Store {
	return &Store{
		root:   dir,
		logger: logger,
	}
}

// Ensure Store implements the interface
var _ entity.Store = (*Store)(nil)

func (s *Store) ListDriverIDs(ctx context.Context) ([]model.DriverID, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, "drivers"))
	if err != nil {
		return nil, err
	}

	var ids []model.DriverID
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, model.DriverID(strings.TrimSuffix(name, ".json")))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *Store) GetDriver(ctx context.Context, id model.DriverID) (*model.DriverRecord, error) {
	path := filepath.Join(s.root, "drivers", string(id)+".json")

	var record model.DriverRecord
	if err := s.readJSON(path, &record); err != nil {
		return nil, model.ErrDriverNotFound
	}
	if record.ID == "" {
		record.ID = id
	}
	return &record, nil
}

func (s *Store) GetChampionshipYear(ctx context.Context, name, year string) (*model.ChampionshipYear, error) {
	path := filepath.Join(s.root, "championships", name, year+".json")

	var record model.ChampionshipYear
	if err := s.readJSON(path, &record); err != nil {
		return nil, model.ErrChampionshipNotFound
	}
	if record.Championship == "" {
		record.Championship = name
	}
	if record.Year == "" {
		record.Year = year
	}
	return &record, nil
}

func (s *Store) ListChampionships(ctx context.Context) (map[string][]string, error) {
	base := filepath.Join(s.root, "championships")
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}

	championships := make(map[string][]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		yearFiles, err := os.ReadDir(filepath.Join(base, name))
		if err != nil {
			s.logger.Warn("unreadable championship directory",
				slog.String("championship", name),
				slog.String("error", err.Error()),
			)
			continue
		}
		var years []string
		for _, yf := range yearFiles {
			if yf.IsDir() || !strings.HasSuffix(yf.Name(), ".json") {
				continue
			}
			years = append(years, strings.TrimSuffix(yf.Name(), ".json"))
		}
		sort.Strings(years)
		championships[name] = years
	}
	return championships, nil
}

func (s *Store) ResolvePicture(category string, id model.DriverID) string {
	for _, ext := range pictureExtensions {
		rel := filepath.Join("pictures", category, string(id)+ext)
		if _, err := os.Stat(filepath.Join(s.root, rel)); err == nil {
			return rel
		}
	}
	return DefaultPicture
}

// readJSON decodes the file at path into v. Unreadable or corrupt files
// are logged and reported as an error so callers can degrade to not-found.
func (s *Store) readJSON(path string, v any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		s.logger.Warn("corrupt entity file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
