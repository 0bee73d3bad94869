package repository

import (
	"context"
	"fmt"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// On primary-key conflict only the name, the code columns, and updated_at
// refresh; every other column keeps its previously inserted value. The
// upsert statements are portable between Postgres and SQLite, so both
// repository implementations share these helpers.

const upsertCountriesSQL = `
	INSERT INTO countries (
		id, name, iso2, iso3, numeric_code, phone_code, capital,
		currency, currency_name, currency_symbol, latitude, longitude,
		emoji, emoji_u
	) VALUES (
		:id, :name, :iso2, :iso3, :numeric_code, :phone_code, :capital,
		:currency, :currency_name, :currency_symbol, :latitude, :longitude,
		:emoji, :emoji_u
	)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		iso2 = excluded.iso2,
		iso3 = excluded.iso3,
		updated_at = CURRENT_TIMESTAMP`

const upsertStatesSQL = `
	INSERT INTO states (
		id, name, country_id, country_code, fips_code, iso2, type,
		latitude, longitude
	) VALUES (
		:id, :name, :country_id, :country_code, :fips_code, :iso2, :type,
		:latitude, :longitude
	)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		country_code = excluded.country_code,
		iso2 = excluded.iso2,
		updated_at = CURRENT_TIMESTAMP`

const upsertCitiesSQL = `
	INSERT INTO cities (
		id, name, state_id, state_code, country_id, country_code,
		latitude, longitude, wikidata_id
	) VALUES (
		:id, :name, :state_id, :state_code, :country_id, :country_code,
		:latitude, :longitude, :wikidata_id
	)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		state_code = excluded.state_code,
		country_code = excluded.country_code,
		updated_at = CURRENT_TIMESTAMP`

func bulkUpsertCountries(ctx context.Context, db *sqlx.DB, countries []model.Country) error {
	for _, batch := range chunk(countries, countryBatchSize) {
		if _, err := db.NamedExecContext(ctx, upsertCountriesSQL, batch); err != nil {
			return fmt.Errorf("failed to bulk upsert countries: %w", err)
		}
	}
	return nil
}

func bulkUpsertStates(ctx context.Context, db *sqlx.DB, states []model.State) error {
	for _, batch := range chunk(states, stateBatchSize) {
		if _, err := db.NamedExecContext(ctx, upsertStatesSQL, batch); err != nil {
			return fmt.Errorf("failed to bulk upsert states: %w", err)
		}
	}
	return nil
}

func bulkUpsertCities(ctx context.Context, db *sqlx.DB, cities []model.City) error {
	for _, batch := range chunk(cities, cityBatchSize) {
		if _, err := db.NamedExecContext(ctx, upsertCitiesSQL, batch); err != nil {
			return fmt.Errorf("failed to bulk upsert cities: %w", err)
		}
	}
	return nil
}
