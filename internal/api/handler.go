package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/commercedesk/geodata-api/internal/service"
	"github.com/gorilla/mux"
)

// Handler handles read requests over the imported location data
type Handler struct {
	service service.ServiceInterface
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ListCountries handles GET /api/v1/countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.ListCountries(r.Context())
	if err != nil {
		log.Printf("Error listing countries: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.CountriesResponse{Countries: countries, Count: len(countries)})
}

// ListStates handles GET /api/v1/countries/{id}/states
func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	countryID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid country id", http.StatusBadRequest)
		return
	}

	states, err := h.service.ListStates(r.Context(), countryID)
	if err != nil {
		log.Printf("Error listing states: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.StatesResponse{States: states, Count: len(states)})
}

// ListCities handles GET /api/v1/states/{id}/cities
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	stateID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid state id", http.StatusBadRequest)
		return
	}

	cities, err := h.service.ListCities(r.Context(), stateID)
	if err != nil {
		log.Printf("Error listing cities: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.CitiesResponse{Cities: cities, Count: len(cities)})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
