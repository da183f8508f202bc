package auth

import (
	"context"
	"testing"
	"time"

	"andaman/internal/domain"
	jwtsvc "andaman/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, p *domain.VendorProfile) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 3
	}
	return args.Error(0)
}

func newTestService(users *MockUserRepository, vendors *MockVendorRepository) *Service {
	return NewService(users, vendors, jwtsvc.New("test-secret", time.Hour))
}

func TestService_RegisterVendor_CreatesUnverifiedProfile(t *testing.T) {
	users := new(MockUserRepository)
	vendors := new(MockVendorRepository)

	users.On("GetByEmail", mock.Anything, "dive@havelock.example").Return(nil, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	vendors.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(users, vendors)

	user, token, err := service.RegisterVendor(context.Background(), RegisterVendorRequest{
		Name:         "Asha",
		Email:        "dive@havelock.example",
		Password:     "secret-pass",
		BusinessName: "Havelock Divers",
		BusinessType: "activity",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.RoleVendor, user.RoleID)

	profile := vendors.Calls[0].Arguments.Get(1).(*domain.VendorProfile)
	assert.Equal(t, 0, profile.Verified)
	assert.Equal(t, int64(7), profile.UserID)
	assert.Equal(t, "activity", profile.Type)
}

func TestService_RegisterVendor_UnknownType(t *testing.T) {
	users := new(MockUserRepository)
	vendors := new(MockVendorRepository)
	service := newTestService(users, vendors)

	_, _, err := service.RegisterVendor(context.Background(), RegisterVendorRequest{
		Name:         "Asha",
		Email:        "x@example.com",
		Password:     "secret-pass",
		BusinessName: "X",
		BusinessType: "submarine",
	})

	assert.ErrorIs(t, err, ErrUnknownVendorType)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_RegisterTraveler_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	vendors := new(MockVendorRepository)

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	service := newTestService(users, vendors)

	_, _, err := service.RegisterTraveler(context.Background(), RegisterTravelerRequest{
		Name:     "Ravi",
		Email:    "taken@example.com",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users := new(MockUserRepository)
	vendors := new(MockVendorRepository)
	users.On("GetByEmail", mock.Anything, "v@example.com").Return(&domain.User{
		ID:           42,
		Email:        "v@example.com",
		PasswordHash: string(hash),
		RoleID:       domain.RoleVendor,
	}, nil)

	service := newTestService(users, vendors)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "v@example.com",
		Password: "right-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NotEmpty(t, token)

	_, _, err = service.Login(context.Background(), LoginRequest{
		Email:    "v@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
