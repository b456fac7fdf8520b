package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adspark/adspark-backend/internal/auth"
	appErrors "github.com/adspark/adspark-backend/internal/errors"
	"github.com/adspark/adspark-backend/internal/model"
	"github.com/adspark/adspark-backend/internal/service"
)

type MockAdminRepo struct {
	admins map[int]*model.Admin
	nextID int
}

func NewMockAdminRepo() *MockAdminRepo {
	return &MockAdminRepo{admins: map[int]*model.Admin{}, nextID: 1}
}

func (m *MockAdminRepo) Create(a *model.Admin) error {
	a.ID = m.nextID
	a.IsActive = true
	m.nextID++
	stored := *a
	m.admins[a.ID] = &stored
	return nil
}

func (m *MockAdminRepo) GetByID(id int) (*model.Admin, error) {
	return m.admins[id], nil
}

func (m *MockAdminRepo) GetByEmail(email string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockAdminRepo) GetByUsername(username string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, nil
}

func newAuthService() (*service.AuthService, *MockAdminRepo) {
	adminRepo := NewMockAdminRepo()
	return &service.AuthService{
		AdminRepo: adminRepo,
		UserRepo:  NewMockUserRepo(),
		JWTSecret: []byte("test-secret"),
		TokenTTL:  24 * time.Hour,
	}, adminRepo
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc, adminRepo := newAuthService()

	admin, err := svc.Register("a@example.com", "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.PasswordHash)
	assert.NotEqual(t, "s3cret", admin.PasswordHash)

	token, loggedIn, err := svc.Login("a@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, loggedIn.ID)

	// The issued token must resolve back to the same admin via the gate's
	// claims.
	claims, err := auth.ParseToken(svc.JWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)

	resolved, err := adminRepo.GetByID(claims.AdminID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resolved.Username)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, adminRepo := newAuthService()

	_, err := svc.Register("a@example.com", "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Register("a@example.com", "someone-else", "pw")
	var invalid *appErrors.ErrInvalidArgument
	assert.ErrorAs(t, err, &invalid)
	assert.Len(t, adminRepo.admins, 1, "no new admin row on duplicate email")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, adminRepo := newAuthService()

	_, err := svc.Register("a@example.com", "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Register("b@example.com", "alice", "pw")
	var invalid *appErrors.ErrInvalidArgument
	assert.ErrorAs(t, err, &invalid)
	assert.Len(t, adminRepo.admins, 1)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService()

	for _, tc := range []struct {
		field                     string
		email, username, password string
	}{
		{"email", "", "alice", "pw"},
		{"username", "a@example.com", "", "pw"},
		{"password", "a@example.com", "alice", ""},
	} {
		_, err := svc.Register(tc.email, tc.username, tc.password)
		var validation *appErrors.ErrValidation
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, tc.field, validation.Field)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register("a@example.com", "alice", "pw")
	require.NoError(t, err)

	var unauthorized *appErrors.ErrUnauthorized

	_, _, err = svc.Login("a@example.com", "wrong")
	assert.ErrorAs(t, err, &unauthorized)

	_, _, err = svc.Login("nobody@example.com", "pw")
	assert.ErrorAs(t, err, &unauthorized)
}
