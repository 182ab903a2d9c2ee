package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/db/dbtest"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/mailer"
	"github.com/sit-project/sit-api/internal/repository"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

type sentMail struct {
	to   string
	data mailer.ResetData
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, to string, data mailer.ResetData) error {
	m.sent = append(m.sent, sentMail{to: to, data: data})
	return nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeMailer) {
	t.Helper()

	gdb := dbtest.NewSQLite(t)
	require.NoError(t, dao.InitTables(gdb))

	m := &fakeMailer{}
	s := NewAuthService(
		repository.NewUserRepository(dao.NewUserDAO(gdb)),
		repository.NewTokenRepository(dao.NewTokenDAO(gdb)),
		m,
		&config.AuthConfig{
			JWTSecret:       "test-secret",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
			ResetTokenTTL:   time.Hour,
		},
		"http://localhost:5173/reset/",
	)

	return s, m
}

func signupAna(t *testing.T, s *AuthService) domain.User {
	t.Helper()

	user, err := s.Signup(context.Background(), domain.User{
		Username: "anamora",
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
		Person: &domain.Person{
			FirstName: "Ana",
			LastName:  "Mora",
			Cedula:    "504440555",
		},
	})
	require.NoError(t, err)

	return user
}

func TestAuthService_Signup(t *testing.T) {
	s, _ := newAuthService(t)
	user := signupAna(t, s)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct-horse-battery", user.Password)
	require.NotNil(t, user.Person)
	assert.Equal(t, user.ID, user.Person.UserID)

	_, err := s.Signup(context.Background(), domain.User{
		Username: "otra",
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
		Person:   &domain.Person{FirstName: "Otra", LastName: "Persona", Cedula: "504440556"},
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_Login(t *testing.T) {
	s, _ := newAuthService(t)
	user := signupAna(t, s)
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		password   string
		wantErr    error
	}{
		{name: "by email", identifier: "ana@example.com", password: "correct-horse-battery"},
		{name: "by username", identifier: "anamora", password: "correct-horse-battery"},
		{name: "wrong password", identifier: "anamora", password: "wrong-password-123", wantErr: ErrWrongCredentials},
		{name: "unknown user", identifier: "nadie@example.com", password: "correct-horse-battery", wantErr: ErrWrongCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := s.Login(ctx, tt.identifier, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, session.AccessToken)
			assert.Len(t, session.RefreshToken, 64)
			assert.Equal(t, user.ID, session.Claims.UserID)
			assert.Equal(t, "504440555", session.Claims.Cedula)

			claims, err := s.ParseAccessToken(session.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, session.Claims, claims)
		})
	}
}

func TestAuthService_RefreshRotatesToken(t *testing.T) {
	s, _ := newAuthService(t)
	signupAna(t, s)
	ctx := context.Background()

	first, err := s.Login(ctx, "anamora", "correct-horse-battery")
	require.NoError(t, err)

	second, err := s.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.Equal(t, first.Claims, second.Claims)

	_, err = s.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = s.Refresh(ctx, second.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_RefreshRejects(t *testing.T) {
	s, _ := newAuthService(t)
	signupAna(t, s)
	ctx := context.Background()

	session, err := s.Login(ctx, "anamora", "correct-horse-battery")
	require.NoError(t, err)

	_, err = s.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	_, err = s.Refresh(ctx, strings.Repeat("0", 64))
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	s.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = s.Refresh(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Logout(t *testing.T) {
	s, _ := newAuthService(t)
	signupAna(t, s)
	ctx := context.Background()

	session, err := s.Login(ctx, "anamora", "correct-horse-battery")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx, session.RefreshToken))
	require.NoError(t, s.Logout(ctx, ""))

	_, err = s.Refresh(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_PasswordReset(t *testing.T) {
	s, m := newAuthService(t)
	signupAna(t, s)
	ctx := context.Background()

	err := s.RequestPasswordReset(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, m.sent)

	require.NoError(t, s.RequestPasswordReset(ctx, "ana@example.com"))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "ana@example.com", m.sent[0].to)
	assert.Equal(t, "anamora", m.sent[0].data.Username)

	link := m.sent[0].data.Link
	require.True(t, strings.HasPrefix(link, "http://localhost:5173/reset/"))
	token := strings.TrimPrefix(link, "http://localhost:5173/reset/")

	require.NoError(t, s.ResetPassword(ctx, token, "a-brand-new-password"))

	_, err = s.Login(ctx, "anamora", "correct-horse-battery")
	assert.ErrorIs(t, err, ErrWrongCredentials)
	_, err = s.Login(ctx, "anamora", "a-brand-new-password")
	assert.NoError(t, err)

	err = s.ResetPassword(ctx, token, "yet-another-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestAuthService_ExpiredResetToken(t *testing.T) {
	s, m := newAuthService(t)
	signupAna(t, s)
	ctx := context.Background()

	require.NoError(t, s.RequestPasswordReset(ctx, "ana@example.com"))
	token := strings.TrimPrefix(m.sent[0].data.Link, "http://localhost:5173/reset/")

	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	err := s.ResetPassword(ctx, token, "a-brand-new-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
