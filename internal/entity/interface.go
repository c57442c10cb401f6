package entity

import (
	"context"

	"github.com/pitwall/pitgames/internal/model"
)

// Store is the read-only lookup interface over driver and championship
// records and their associated images
type Store interface {
	// ListDriverIDs returns every known driver identifier
	ListDriverIDs(ctx context.Context) ([]model.DriverID, error)

	// GetDriver returns the record for the given identifier
	GetDriver(ctx context.Context, id model.DriverID) (*model.DriverRecord, error)

	// GetChampionshipYear returns one season of a championship
	GetChampionshipYear(ctx context.Context, name, year string) (*model.ChampionshipYear, error)

	// ListChampionships returns championship names mapped to their available years
	ListChampionships(ctx context.Context) (map[string][]string, error)

	// ResolvePicture returns the relative path of the picture for the given
	// identifier, or a default asset path if none exists
	ResolvePicture(category string, id model.DriverID) string
}
