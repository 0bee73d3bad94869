package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgCountryRepository struct {
	db *sqlx.DB
}

func (r *pgCountryRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "TRUNCATE TABLE countries RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate countries: %w", err)
	}
	return nil
}

func (r *pgCountryRepository) BulkUpsert(ctx context.Context, countries []model.Country) error {
	return bulkUpsertCountries(ctx, r.db, countries)
}

func (r *pgCountryRepository) List(ctx context.Context) ([]model.Country, error) {
	var countries []model.Country
	if err := r.db.SelectContext(ctx, &countries, "SELECT * FROM countries ORDER BY name"); err != nil {
		return nil, err
	}
	return countries, nil
}

type pgStateRepository struct {
	db *sqlx.DB
}

func (r *pgStateRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "TRUNCATE TABLE states RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate states: %w", err)
	}
	return nil
}

func (r *pgStateRepository) BulkUpsert(ctx context.Context, states []model.State) error {
	return bulkUpsertStates(ctx, r.db, states)
}

func (r *pgStateRepository) ListByCountry(ctx context.Context, countryID int) ([]model.State, error) {
	var states []model.State
	if err := r.db.SelectContext(ctx, &states, "SELECT * FROM states WHERE country_id = $1 ORDER BY name", countryID); err != nil {
		return nil, err
	}
	return states, nil
}

type pgCityRepository struct {
	db *sqlx.DB
}

func (r *pgCityRepository) Truncate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "TRUNCATE TABLE cities RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate cities: %w", err)
	}
	return nil
}

func (r *pgCityRepository) BulkUpsert(ctx context.Context, cities []model.City) error {
	return bulkUpsertCities(ctx, r.db, cities)
}

func (r *pgCityRepository) ListByState(ctx context.Context, stateID int) ([]model.City, error) {
	var cities []model.City
	if err := r.db.SelectContext(ctx, &cities, "SELECT * FROM cities WHERE state_id = $1 ORDER BY name", stateID); err != nil {
		return nil, err
	}
	return cities, nil
}

type pgSyncHistoryRepository struct {
	db *sqlx.DB
}

func (r *pgSyncHistoryRepository) Record(ctx context.Context, version string, recordsImported int, status string) error {
	q := `INSERT INTO location_sync_history (data_version, records_imported, sync_status) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, q, version, recordsImported, status); err != nil {
		return fmt.Errorf("failed to record sync history: %w", err)
	}
	return nil
}

func (r *pgSyncHistoryRepository) Latest(ctx context.Context) (*model.SyncHistory, error) {
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
