package api

import (
	"github.com/commercedesk/geodata-api/internal/importer"
	"github.com/commercedesk/geodata-api/internal/service"
	"github.com/commercedesk/geodata-api/internal/stats"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, imp importer.Interface, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(service)
	importHandler := NewImportHandler(imp)
	statsHandler := NewStatsHandler(statsCollector)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/locations/import", importHandler.StartImport).Methods("POST")
	v1.HandleFunc("/locations/import/{id}", importHandler.GetImportProgress).Methods("GET")
	v1.HandleFunc("/locations/version", importHandler.GetDatasetVersion).Methods("GET")
	v1.HandleFunc("/countries", handler.ListCountries).Methods("GET")
	v1.HandleFunc("/countries/{id}/states", handler.ListStates).Methods("GET")
	v1.HandleFunc("/states/{id}/cities", handler.ListCities).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
