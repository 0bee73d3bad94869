package upstream

import "github.com/commercedesk/geodata-api/internal/model"

// Countries converts dataset records into country rows
func Countries(records []Record) []model.Country {
	countries := make([]model.Country, 0, len(records))
	for _, r := range records {
		countries = append(countries, model.Country{
			ID:             r.Int("id"),
			Name:           r.Str("name"),
			ISO2:           r.Str("iso2"),
			ISO3:           r.Str("iso3"),
			NumericCode:    r.Str("numeric_code"),
			PhoneCode:      r.Str("phone_code"),
			Capital:        r.Str("capital"),
			Currency:       r.Str("currency"),
			CurrencyName:   r.Str("currency_name"),
			CurrencySymbol: r.Str("currency_symbol"),
			Latitude:       r.Float("latitude"),
			Longitude:      r.Float("longitude"),
			Emoji:          r.Str("emoji"),
			EmojiU:         r.Str("emojiU"),
		})
	}
	return countries
}

// States converts dataset records into state rows
func States(records []Record) []model.State {
	states := make([]model.State, 0, len(records))
	for _, r := range records {
		states = append(states, model.State{
			ID:          r.Int("id"),
			Name:        r.Str("name"),
			CountryID:   r.Int("country_id"),
			CountryCode: r.Str("country_code"),
			FipsCode:    r.Str("fips_code"),
			ISO2:        r.Str("iso2"),
			Type:        r.Str("type"),
			Latitude:    r.Float("latitude"),
			Longitude:   r.Float("longitude"),
		})
	}
	return states
}

// Cities converts dataset records into city rows
func Cities(records []Record) []model.City {
	cities := make([]model.City, 0, len(records))
	for _, r := range records {
		cities = append(cities, model.City{
			ID:          r.Int("id"),
			Name:        r.Str("name"),
			StateID:     r.Int("state_id"),
			StateCode:   r.Str("state_code"),
			CountryID:   r.Int("country_id"),
			CountryCode: r.Str("country_code"),
			Latitude:    r.Float("latitude"),
			Longitude:   r.Float("longitude"),
			WikiDataID:  r.Str("wikiDataId"),
		})
	}
	return cities
}
