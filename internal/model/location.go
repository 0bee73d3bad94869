package model

import "time"

// Country represents a country row from the upstream dataset
type Country struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	ISO2           string    `db:"iso2" json:"iso2"`
	ISO3           string    `db:"iso3" json:"iso3"`
	NumericCode    string    `db:"numeric_code" json:"numeric_code"`
	PhoneCode      string    `db:"phone_code" json:"phone_code"`
	Capital        string    `db:"capital" json:"capital"`
	Currency       string    `db:"currency" json:"currency"`
	CurrencyName   string    `db:"currency_name" json:"currency_name"`
	CurrencySymbol string    `db:"currency_symbol" json:"currency_symbol"`
	Latitude       *float64  `db:"latitude" json:"latitude"`
	Longitude      *float64  `db:"longitude" json:"longitude"`
	Emoji          string    `db:"emoji" json:"emoji"`
	EmojiU         string    `db:"emoji_u" json:"emojiU"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// State represents a state/region row owned by a country
type State struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CountryID   int       `db:"country_id" json:"country_id"`
	CountryCode string    `db:"country_code" json:"country_code"`
	FipsCode    string    `db:"fips_code" json:"fips_code"`
	ISO2        string    `db:"iso2" json:"iso2"`
	Type        string    `db:"type" json:"type"`
	Latitude    *float64  `db:"latitude" json:"latitude"`
	Longitude   *float64  `db:"longitude" json:"longitude"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// City represents a city row owned by a state
type City struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	StateID     int       `db:"state_id" json:"state_id"`
	StateCode   string    `db:"state_code" json:"state_code"`
	CountryID   int       `db:"country_id" json:"country_id"`
	CountryCode string    `db:"country_code" json:"country_code"`
	Latitude    *float64  `db:"latitude" json:"latitude"`
	Longitude   *float64  `db:"longitude" json:"longitude"`
	WikiDataID  string    `db:"wikidata_id" json:"wikiDataId"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SyncHistory is one row of the import log, appended per completed import
type SyncHistory struct {
	ID              int       `db:"id" json:"id"`
	DataVersion     string    `db:"data_version" json:"data_version"`
	RecordsImported int       `db:"records_imported" json:"records_imported"`
	SyncStatus      string    `db:"sync_status" json:"sync_status"`
	SyncDate        time.Time `db:"sync_date" json:"sync_date"`
}
