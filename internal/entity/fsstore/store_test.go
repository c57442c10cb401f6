package fsstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	root  string
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.store = New(s.root, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *StoreSuite) writeFile(rel, content string) {
	path := filepath.Join(s.root, rel)
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
}

func (s *StoreSuite) TestListDriverIDsSorted() {
	s.writeFile("drivers/lewis_hamilton.json", `{"firstname":"Lewis","lastname":"Hamilton"}`)
	s.writeFile("drivers/ayrton_senna.json", `{"firstname":"Ayrton","lastname":"Senna"}`)
	s.writeFile("drivers/notes.txt", "not a driver")

	ids, err := s.store.ListDriverIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.DriverID{"ayrton_senna", "lewis_hamilton"}, ids)
}

func (s *StoreSuite) TestGetDriver() {
	s.writeFile("drivers/ayrton_senna.json",
		`{"firstname":"Ayrton","lastname":"Senna","nationality":"BR"}`)

	record, err := s.store.GetDriver(s.ctx, "ayrton_senna")
	s.Require().NoError(err)
	s.Equal("Ayrton", record.FirstName)
	s.Equal("Senna", record.LastName)
	// The identifier comes from the filename when the file omits it
	s.Equal(model.DriverID("ayrton_senna"), record.ID)
}

func (s *StoreSuite) TestGetDriverMissing() {
	_, err := s.store.GetDriver(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrDriverNotFound)
}

func (s *StoreSuite) TestGetDriverCorruptFile() {
	s.writeFile("drivers/broken.json", "{not json")

	_, err := s.store.GetDriver(s.ctx, "broken")
	s.ErrorIs(err, model.ErrDriverNotFound)
}

func (s *StoreSuite) TestGetChampionshipYear() {
	s.writeFile("championships/wrc/2024.json",
		`{"events":[{"name":"monte_carlo","sessions":[{"name":"race","entries":[{"drivers":["ogier","evans"]}]}]}]}`)

	record, err := s.store.GetChampionshipYear(s.ctx, "wrc", "2024")
	s.Require().NoError(err)
	s.Equal("wrc", record.Championship)
	s.Equal("2024", record.Year)
	s.Equal([]model.DriverID{"ogier", "evans"}, record.DriverIDs())
}

func (s *StoreSuite) TestGetChampionshipYearMissing() {
	_, err := s.store.GetChampionshipYear(s.ctx, "wrc", "1901")
	s.ErrorIs(err, model.ErrChampionshipNotFound)
}

func (s *StoreSuite) TestListChampionships() {
	s.writeFile("championships/wrc/2023.json", `{"events":[]}`)
	s.writeFile("championships/wrc/2024.json", `{"events":[]}`)
	s.writeFile("championships/wec/2024.json", `{"events":[]}`)
	s.writeFile("championships/readme.txt", "not a championship")

	championships, err := s.store.ListChampionships(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string][]string{
		"wrc": {"2023", "2024"},
		"wec": {"2024"},
	}, championships)
}

func (s *StoreSuite) TestResolvePicture() {
	s.writeFile("pictures/drivers/ogier.png", "png bytes")

	s.Equal(filepath.Join("pictures", "drivers", "ogier.png"),
		s.store.ResolvePicture("drivers", "ogier"))
}

func (s *StoreSuite) TestResolvePicturePrefersEarlierExtension() {
	s.writeFile("pictures/drivers/ogier.webp", "webp bytes")
	s.writeFile("pictures/drivers/ogier.jpg", "jpg bytes")

	s.Equal(filepath.Join("pictures", "drivers", "ogier.jpg"),
		s.store.ResolvePicture("drivers", "ogier"))
}

func (s *StoreSuite) TestResolvePictureDefault() {
	s.Equal(DefaultPicture, s.store.ResolvePicture("drivers", "nobody"))
}
