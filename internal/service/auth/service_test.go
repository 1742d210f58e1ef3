package auth

import (
	"context"
	"testing"

	domain "github.com/attendo-hq/attendance-backend-go/internal/domain/auth"
	"github.com/attendo-hq/attendance-backend-go/internal/domain/user"
	"github.com/attendo-hq/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]user.User // keyed by email
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *memUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	m.users[u.Email] = u
	return u, nil
}

func newAuthFixture(t *testing.T) domain.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &memUserRepo{users: map[string]user.User{
		"admin@example.com": {
			ID:           "u1",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
		},
	}}

	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(repo, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "admin", resp.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret!",
	})

	require.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"unknown accounts must not be distinguishable from bad passwords")
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)

	require.ErrorIs(t, err, domain.ErrInvalidToken, "access tokens cannot be used for refresh")
}

func TestRefresh_RejectsRevokedToken(t *testing.T) {
	svc := newAuthFixture(t)

	login, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	require.ErrorIs(t, err, domain.ErrRefreshTokenRevoked)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")

	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout_EmptyToken(t *testing.T) {
	svc := newAuthFixture(t)

	err := svc.Logout(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrInvalidToken)
}
