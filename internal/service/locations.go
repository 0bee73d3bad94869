package service

import (
	"context"
	"fmt"

	"github.com/commercedesk/geodata-api/internal/model"
)

// ListCountries returns every imported country, ordered by name
func (s *Service) ListCountries(ctx context.Context) ([]model.Country, error) {
	countries, err := s.countryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

// ListStates returns the states belonging to a country
func (s *Service) ListStates(ctx context.Context, countryID int) ([]model.State, error) {
	states, err := s.stateRepo.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list states: %w", err)
	}
	return states, nil
}

// ListCities returns the cities belonging to a state
func (s *Service) ListCities(ctx context.Context, stateID int) ([]model.City, error) {
	cities, err := s.cityRepo.ListByState(ctx, stateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}
