package services

import (
	"context"
	"testing"

	"andaman/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.VendorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorProfile), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, s *domain.VendorService) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.VendorService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorService), args.Error(1)
}

func (m *MockServiceRepository) UpdateImages(ctx context.Context, id int64, images string) error {
	args := m.Called(ctx, id, images)
	return args.Error(0)
}

func rentalProfile(userID int64) *domain.VendorProfile {
	return &domain.VendorProfile{ID: 1, UserID: userID, BusinessName: "Scooty Point", Type: "rental", Verified: 1}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validRentalRequest() CreateServiceRequest {
	return CreateServiceRequest{
		Type:              "rental",
		IslandID:          2,
		Name:              "Scooter 110cc",
		Price:             1500,
		RentalUnit:        strPtr("per day"),
		QuantityAvailable: intPtr(3),
	}
}

func TestService_Create_Rental(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	profiles.On("GetByUserID", mock.Anything, int64(9)).Return(rentalProfile(9), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(profiles, repo, nil)

	svc, err := service.Create(context.Background(), 9, validRentalRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), svc.ID)
	assert.Equal(t, "per day", svc.RentalUnit)
	assert.Equal(t, 3, svc.QuantityAvailable)
	// No cross-type fields leak into the persisted entity.
	assert.Zero(t, svc.Duration)
	assert.Empty(t, svc.VehicleType)
}

func TestService_Create_HotelVendorRejected(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	profiles.On("GetByUserID", mock.Anything, int64(9)).Return(&domain.VendorProfile{
		ID: 1, UserID: 9, BusinessName: "Sea View Hotel", Type: "hotel", Verified: 1,
	}, nil)

	service := NewService(profiles, repo, nil)

	_, err := service.Create(context.Background(), 9, validRentalRequest())

	assert.ErrorIs(t, err, ErrWrongVendorType)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ValidationRules(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	profiles.On("GetByUserID", mock.Anything, int64(9)).Return(rentalProfile(9), nil)

	service := NewService(profiles, repo, nil)

	cases := []struct {
		name string
		edit func(*CreateServiceRequest)
	}{
		{"zero price", func(r *CreateServiceRequest) { r.Price = 0 }},
		{"negative price", func(r *CreateServiceRequest) { r.Price = -10 }},
		{"missing island", func(r *CreateServiceRequest) { r.IslandID = 0 }},
		{"blank name", func(r *CreateServiceRequest) { r.Name = "" }},
		{"missing rental unit", func(r *CreateServiceRequest) { r.RentalUnit = nil }},
		{"zero quantity", func(r *CreateServiceRequest) { r.QuantityAvailable = intPtr(0) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRentalRequest()
			tc.edit(&req)
			_, err := service.Create(context.Background(), 9, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_BoundaryPricePasses(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	profiles.On("GetByUserID", mock.Anything, int64(9)).Return(rentalProfile(9), nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(profiles, repo, nil)

	req := validRentalRequest()
	req.Price = 0.01
	_, err := service.Create(context.Background(), 9, req)
	assert.NoError(t, err)
}

func TestService_Create_TransportAndActivityRules(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	profiles.On("GetByUserID", mock.Anything, int64(9)).Return(&domain.VendorProfile{
		ID: 1, UserID: 9, BusinessName: "Island Cabs", Type: "transport/car", Verified: 1,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(profiles, repo, nil)

	// Subtyped transport passes with its own conditional fields.
	transport := CreateServiceRequest{
		Type:               "transport/car",
		IslandID:           1,
		Name:               "Airport Pickup",
		Price:              800,
		VehicleType:        strPtr("sedan"),
		CapacityPassengers: strPtr("4"),
	}
	svc, err := service.Create(context.Background(), 9, transport)
	require.NoError(t, err)
	assert.Equal(t, "sedan", svc.VehicleType)

	// Activity without a duration is blocked.
	activity := CreateServiceRequest{
		Type:         "activity",
		IslandID:     1,
		Name:         "Snorkeling",
		Price:        1200,
		DurationUnit: strPtr("hours"),
	}
	_, err = service.Create(context.Background(), 9, activity)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AttachImages(t *testing.T) {
	profiles := new(MockProfileRepository)
	repo := new(MockServiceRepository)
	service := NewService(profiles, repo, nil)

	owned := &domain.VendorService{ID: 42, ProviderUserID: 9}
	repo.On("GetByID", mock.Anything, int64(42)).Return(owned, nil)
	repo.On("UpdateImages", mock.Anything, int64(42), `["https://cdn.example/a.jpg"]`).Return(nil)

	err := service.AttachImages(context.Background(), 9, 42, `["https://cdn.example/a.jpg"]`)
	assert.NoError(t, err)

	// Another vendor's service is off limits.
	err = service.AttachImages(context.Background(), 7, 42, `["https://cdn.example/a.jpg"]`)
	assert.ErrorIs(t, err, ErrForbidden)

	// Malformed image payloads never reach the repository.
	err = service.AttachImages(context.Background(), 9, 42, `not-json`)
	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNumberOfCalls(t, "UpdateImages", 1)
}
