package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelpal/travelpal/internal/models"
	"github.com/travelpal/travelpal/internal/store"
)

// memoryRepo is an in-memory UserRepository for tests.
type memoryRepo struct {
	users []*models.User
}

func (m *memoryRepo) Insert(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email || u.PhoneNumber == user.PhoneNumber {
			return store.ErrDuplicate
		}
	}
	m.users = append(m.users, user)
	return nil
}

func (m *memoryRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Username == username })
}

func (m *memoryRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *memoryRepo) FindByPhone(_ context.Context, phone string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.PhoneNumber == phone })
}

func (m *memoryRepo) find(match func(*models.User) bool) (*models.User, error) {
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func newTestService(t *testing.T) (*Service, *memoryRepo) {
	t.Helper()
	repo := &memoryRepo{}
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewService(repo, tokens, nil), repo
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		Username:    "alice",
		Email:       "alice@example.com",
		PhoneNumber: "+919812345678",
		Password:    "hunter22",
	}
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService(t)

	err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.Equal(t, "alice", stored.Username)
	// Password must be hashed, never stored verbatim.
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, repo := newTestService(t)

	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"no username", func(r *RegisterRequest) { r.Username = "" }},
		{"no email", func(r *RegisterRequest) { r.Email = "" }},
		{"no phone", func(r *RegisterRequest) { r.PhoneNumber = "" }},
		{"no password", func(r *RegisterRequest) { r.Password = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	assert.Empty(t, repo.users, "no record may be created on validation failure")
}

func TestRegisterConflicts(t *testing.T) {
	svc, repo := newTestService(t)
	require.NoError(t, svc.Register(context.Background(), validRequest()))

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		// Username is checked first, then email, then phone.
		{"duplicate username", func(r *RegisterRequest) {
			r.Email = "other@example.com"
			r.PhoneNumber = "+911111111111"
		}, ErrUsernameTaken},
		{"duplicate email", func(r *RegisterRequest) {
			r.Username = "bob"
			r.PhoneNumber = "+911111111111"
		}, ErrEmailTaken},
		{"duplicate phone", func(r *RegisterRequest) {
			r.Username = "bob"
			r.Email = "other@example.com"
		}, ErrPhoneTaken},
		{"all duplicate reports username first", func(r *RegisterRequest) {}, ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Len(t, repo.users, 1, "no second record may be created on conflict")
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Register(context.Background(), validRequest()))

	result, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.Token)
}

func TestLoginNoEnumerationSignal(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Register(context.Background(), validRequest()))

	_, unknownErr := svc.Login(context.Background(), "mallory", "whatever")
	require.Error(t, unknownErr)

	_, wrongPassErr := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, wrongPassErr)

	// Byte-identical messages: no way to tell a bad username from a bad password.
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.Equal(t, "username and password are required", err.Error())
}
