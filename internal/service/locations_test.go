package service

import (
	"context"
	"errors"
	"testing"

	"github.com/commercedesk/geodata-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCountryRepository implements repository.CountryRepository interface
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) Truncate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCountryRepository) BulkUpsert(ctx context.Context, countries []model.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func (m *MockCountryRepository) List(ctx context.Context) ([]model.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

// MockStateRepository implements repository.StateRepository interface
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Truncate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStateRepository) BulkUpsert(ctx context.Context, states []model.State) error {
	args := m.Called(ctx, states)
	return args.Error(0)
}

func (m *MockStateRepository) ListByCountry(ctx context.Context, countryID int) ([]model.State, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.State), args.Error(1)
}

// MockCityRepository implements repository.CityRepository interface
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Truncate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCityRepository) BulkUpsert(ctx context.Context, cities []model.City) error {
	args := m.Called(ctx, cities)
	return args.Error(0)
}

func (m *MockCityRepository) ListByState(ctx context.Context, stateID int) ([]model.City, error) {
	args := m.Called(ctx, stateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func newTestService() (*Service, *MockCountryRepository, *MockStateRepository, *MockCityRepository) {
	countryRepo := new(MockCountryRepository)
	stateRepo := new(MockStateRepository)
	cityRepo := new(MockCityRepository)
	return NewService(countryRepo, stateRepo, cityRepo), countryRepo, stateRepo, cityRepo
}

func TestService_ListCountries(t *testing.T) {
	svc, countryRepo, _, _ := newTestService()
	ctx := context.Background()

	countryRepo.On("List", ctx).Return([]model.Country{
		{ID: 1, Name: "Afghanistan", ISO2: "AF"},
	}, nil)

	countries, err := svc.ListCountries(ctx)
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Afghanistan", countries[0].Name)
	countryRepo.AssertExpectations(t)
}

func TestService_ListCountries_Error(t *testing.T) {
	svc, countryRepo, _, _ := newTestService()
	ctx := context.Background()

	dbErr := errors.New("connection reset")
	countryRepo.On("List", ctx).Return(nil, dbErr)

	_, err := svc.ListCountries(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "failed to list countries")
}

func TestService_ListStates(t *testing.T) {
	svc, _, stateRepo, _ := newTestService()
	ctx := context.Background()

	stateRepo.On("ListByCountry", ctx, 82).Return([]model.State{
		{ID: 3006, Name: "Bavaria", CountryID: 82},
	}, nil)

	states, err := svc.ListStates(ctx, 82)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "Bavaria", states[0].Name)
	stateRepo.AssertExpectations(t)
}

func TestService_ListCities(t *testing.T) {
	svc, _, _, cityRepo := newTestService()
	ctx := context.Background()

	cityRepo.On("ListByState", ctx, 3006).Return([]model.City{
		{ID: 2867714, Name: "Munich", StateID: 3006},
	}, nil)

	cities, err := svc.ListCities(ctx, 3006)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Munich", cities[0].Name)
	cityRepo.AssertExpectations(t)
}
