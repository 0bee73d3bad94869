package service

import (
	"context"

	"github.com/commercedesk/geodata-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	ListStates(ctx context.Context, countryID int) ([]model.State, error)
	ListCities(ctx context.Context, stateID int) ([]model.City, error)
}
