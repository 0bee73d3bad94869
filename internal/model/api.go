package model

// StartImportRequest is the body of POST /api/v1/locations/import
type StartImportRequest struct {
	Format string   `json:"format"`
	Tables []string `json:"tables"`
}

// StartImportResponse carries the job id the caller polls with
type StartImportResponse struct {
	ImportID string `json:"import_id"`
}

// DatasetVersionResponse reports what dataset is currently loaded
type DatasetVersionResponse struct {
	DataVersion  *string `json:"data_version"`
	LastSyncedAt *string `json:"last_synced_at"`
}

// CountriesResponse is the list payload for GET /api/v1/countries
type CountriesResponse struct {
	Countries []Country `json:"countries"`
	Count     int       `json:"count"`
}

// StatesResponse is the list payload for GET /api/v1/countries/{id}/states
type StatesResponse struct {
	States []State `json:"states"`
	Count  int     `json:"count"`
}

// CitiesResponse is the list payload for GET /api/v1/states/{id}/cities
type CitiesResponse struct {
	Cities []City `json:"cities"`
	Count  int    `json:"count"`
}
