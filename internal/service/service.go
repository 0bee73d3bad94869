package service

import (
	"github.com/commercedesk/geodata-api/internal/repository"
)

// Service provides read access to the imported location data
type Service struct {
	countryRepo repository.CountryRepository
	stateRepo   repository.StateRepository
	cityRepo    repository.CityRepository
}

// NewService creates a new service instance
func NewService(
	countryRepo repository.CountryRepository,
	stateRepo repository.StateRepository,
	cityRepo repository.CityRepository,
) *Service {
	return &Service{
		countryRepo: countryRepo,
		stateRepo:   stateRepo,
		cityRepo:    cityRepo,
	}
}
