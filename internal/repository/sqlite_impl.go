package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation ---

// SQLite has no TRUNCATE; DELETE plus a sqlite_sequence reset gives the
// same full-replace semantics. The sequence table only exists once an
// AUTOINCREMENT column has been used, so that reset may fail harmlessly.
func sqliteTruncate(ctx context.Context, db *sqlx.DB, table string) error {
	if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}
	_, _ = db.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	return nil
}

type sqliteCountryRepository struct {
	db *sqlx.DB
}

func (r *sqliteCountryRepository) Truncate(ctx context.Context) error {
	return sqliteTruncate(ctx, r.db, "countries")
}

func (r *sqliteCountryRepository) BulkUpsert(ctx context.Context, countries []model.Country) error {
	return bulkUpsertCountries(ctx, r.db, countries)
}

func (r *sqliteCountryRepository) List(ctx context.Context) ([]model.Country, error) {
	var countries []model.Country
	if err := r.db.SelectContext(ctx, &countries, "SELECT * FROM countries ORDER BY name"); err != nil {
		return nil, err
	}
	return countries, nil
}

type sqliteStateRepository struct {
	db *sqlx.DB
}

func (r *sqliteStateRepository) Truncate(ctx context.Context) error {
	return sqliteTruncate(ctx, r.db, "states")
}

func (r *sqliteStateRepository) BulkUpsert(ctx context.Context, states []model.State) error {
	return bulkUpsertStates(ctx, r.db, states)
}

func (r *sqliteStateRepository) ListByCountry(ctx context.Context, countryID int) ([]model.State, error) {
	var states []model.State
	if err := r.db.SelectContext(ctx, &states, "SELECT * FROM states WHERE country_id = ? ORDER BY name", countryID); err != nil {
		return nil, err
	}
	return states, nil
}

type sqliteCityRepository struct {
	db *sqlx.DB
}

func (r *sqliteCityRepository) Truncate(ctx context.Context) error {
	return sqliteTruncate(ctx, r.db, "cities")
}

func (r *sqliteCityRepository) BulkUpsert(ctx context.Context, cities []model.City) error {
	return bulkUpsertCities(ctx, r.db, cities)
}

func (r *sqliteCityRepository) ListByState(ctx context.Context, stateID int) ([]model.City, error) {
	var cities []model.City
	if err := r.db.SelectContext(ctx, &cities, "SELECT * FROM cities WHERE state_id = ? ORDER BY name", stateID); err != nil {
		return nil, err
	}
	return cities, nil
}

type sqliteSyncHistoryRepository struct {
	db *sqlx.DB
}

func (r *sqliteSyncHistoryRepository) Record(ctx context.Context, version string, recordsImported int, status string) error {
	q := `INSERT INTO location_sync_history (data_version, records_imported, sync_status) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, version, recordsImported, status); err != nil {
		return fmt.Errorf("failed to record sync history: %w", err)
	}
	return nil
}

func (r *sqliteSyncHistoryRepository) Latest(ctx context.Context) (*model.SyncHistory, error) {
	q := `SELECT * FROM location_sync_history WHERE sync_status = 'success' ORDER BY sync_date DESC, id DESC LIMIT 1`
	var entry model.SyncHistory
	if err := r.db.GetContext(ctx, &entry, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
