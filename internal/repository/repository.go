package repository

import (
	"context"

	"github.com/commercedesk/geodata-api/internal/config"
	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// Batch sizes bound the generated statement size during bulk loads
const (
	countryBatchSize = 1000
	stateBatchSize   = 1000
	cityBatchSize    = 500
)

// CountryRepository defines operations for countries
type CountryRepository interface {
	Truncate(ctx context.Context) error
	BulkUpsert(ctx context.Context, countries []model.Country) error
	List(ctx context.Context) ([]model.Country, error)
}

// StateRepository defines operations for states
type StateRepository interface {
	Truncate(ctx context.Context) error
	BulkUpsert(ctx context.Context, states []model.State) error
	ListByCountry(ctx context.Context, countryID int) ([]model.State, error)
}

// CityRepository defines operations for cities
type CityRepository interface {
	Truncate(ctx context.Context) error
	BulkUpsert(ctx context.Context, cities []model.City) error
	ListByState(ctx context.Context, stateID int) ([]model.City, error)
}

// SyncHistoryRepository defines operations for the import log
type SyncHistoryRepository interface {
	Record(ctx context.Context, version string, recordsImported int, status string) error
	Latest(ctx context.Context) (*model.SyncHistory, error)
}

// Container holds all repositories
type Container struct {
	Country     CountryRepository
	State       StateRepository
	City        CityRepository
	SyncHistory SyncHistoryRepository
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			Country:     &pgCountryRepository{db: db},
			State:       &pgStateRepository{db: db},
			City:        &pgCityRepository{db: db},
			SyncHistory: &pgSyncHistoryRepository{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		Country:     &sqliteCountryRepository{db: db},
		State:       &sqliteStateRepository{db: db},
		City:        &sqliteCityRepository{db: db},
		SyncHistory: &sqliteSyncHistoryRepository{db: db},
	}
}

// chunk splits rows into consecutive batches of at most size elements
func chunk[T any](rows []T, size int) [][]T {
	var batches [][]T
	for i := 0; i < len(rows); i += size {
		end := i + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, rows[i:end])
	}
	return batches
}
