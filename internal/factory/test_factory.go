package factory

import (
	"time"

	"github.com/pitwall/pitgames/internal/dependencies/mocks"
	"github.com/pitwall/pitgames/internal/entity/memstore"
	"github.com/pitwall/pitgames/internal/model"
	"github.com/pitwall/pitgames/internal/storage/memory"
	"github.com/pitwall/pitgames/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	EntityStore *memstore.Store
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	entities := memstore.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, entities, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		EntityStore: entities,
	}
}

// LoadTestGrid seeds a small driver and championship set for testing.
// Every driver is eligible for the daily puzzle relative to the test
// clock's 2024 start date.
func (t *TestApp) LoadTestGrid() {
	drivers := []struct {
		id    model.DriverID
		first string
		last  string
	}{
		{"ayrton_senna", "Ayrton", "Senna"},
		{"lewis_hamilton", "Lewis", "Hamilton"},
		{"max_verstappen", "Max", "Verstappen"},
		{"sebastien_loeb", "Sébastien", "Loeb"},
	}

	var entries []model.Entry
	for _, d := range drivers {
		results := make([]string, 30)
		for i := range results {
			results[i] = "finished"
		}
		t.EntityStore.AddDriver(&model.DriverRecord{
			ID:        d.id,
			FirstName: d.first,
			LastName:  d.last,
			Seasons: map[string]model.SeasonHistory{
				"2024": {"test_championship": {"round_1": results}},
			},
		})
		entries = append(entries, model.Entry{Drivers: []model.DriverID{d.id}})
	}

	t.EntityStore.AddChampionshipYear(&model.ChampionshipYear{
		Championship: "test_championship",
		Year:         "2024",
		Events: []model.Event{
			{
				Name: "round_1",
				Sessions: []model.EventSession{
					{Name: "race", Entries: entries},
				},
			},
		},
	})
}
