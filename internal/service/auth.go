package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sit-project/sit-api/internal/config"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/jwthelper"
	"github.com/sit-project/sit-api/internal/pkg/mailer"
	"github.com/sit-project/sit-api/internal/repository"
)

var (
	ErrUserExists          = repository.ErrUserExists
	ErrWrongCredentials    = errors.New("wrong credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (domain.User, error)
}

type AuthTokenRepository interface {
	SaveRefreshToken(ctx context.Context, t domain.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (domain.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, old string, next domain.RefreshToken) error
	DeleteRefreshToken(ctx context.Context, token string) error
	SaveResetToken(ctx context.Context, t domain.PasswordResetToken) error
	FindResetToken(ctx context.Context, token string) (domain.PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, t domain.PasswordResetToken, hash string) error
}

type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, data mailer.ResetData) error
}

type AuthService struct {
	repo     AuthUserRepository
	tokens   AuthTokenRepository
	mailer   Mailer
	conf     *config.AuthConfig
	resetURL string
	now      func() time.Time
}

func NewAuthService(repo AuthUserRepository, tokens AuthTokenRepository, m Mailer, conf *config.AuthConfig, resetURL string) *AuthService {
	return &AuthService{
		repo:     repo,
		tokens:   tokens,
		mailer:   m,
		conf:     conf,
		resetURL: strings.TrimRight(resetURL, "/"),
		now:      time.Now,
	}
}

// Signup stores the user and its person record together.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login accepts either the email or the username as identifier.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (domain.Session, error) {
	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Session{}, ErrWrongCredentials
		}

		return domain.Session{}, fmt.Errorf("s.repo.FindByIdentifier -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.Session{}, ErrWrongCredentials
	}

	refresh, err := jwthelper.GenerateOpaqueToken()
	if err != nil {
		return domain.Session{}, fmt.Errorf("jwthelper.GenerateOpaqueToken -> %w", err)
	}
	err = s.tokens.SaveRefreshToken(ctx, domain.RefreshToken{
		Token:   refresh,
		UserID:  user.ID,
		Expires: s.now().Add(s.conf.RefreshTokenTTL),
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.tokens.SaveRefreshToken -> %w", err)
	}

	return s.session(user, refresh)
}

// Refresh exchanges a refresh token for a new access token and a new refresh
// token. The old refresh token stops working.
func (s *AuthService) Refresh(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, ErrInvalidRefreshToken
	}

	stored, err := s.tokens.FindRefreshToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domain.Session{}, ErrInvalidRefreshToken
		}

		return domain.Session{}, fmt.Errorf("s.tokens.FindRefreshToken -> %w", err)
	}

	if !stored.Expires.After(s.now()) {
		if err = s.tokens.DeleteRefreshToken(ctx, token); err != nil {
			zap.L().Warn("failed to delete expired refresh token", zap.Error(err))
		}
		return domain.Session{}, ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Session{}, ErrInvalidRefreshToken
		}

		return domain.Session{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	next, err := jwthelper.GenerateOpaqueToken()
	if err != nil {
		return domain.Session{}, fmt.Errorf("jwthelper.GenerateOpaqueToken -> %w", err)
	}
	err = s.tokens.RotateRefreshToken(ctx, token, domain.RefreshToken{
		Token:   next,
		UserID:  user.ID,
		Expires: s.now().Add(s.conf.RefreshTokenTTL),
	})
	if err != nil {
		// Another request rotated the same token first.
		if errors.Is(err, repository.ErrTokenNotFound) {
			return domain.Session{}, ErrInvalidRefreshToken
		}

		return domain.Session{}, fmt.Errorf("s.tokens.RotateRefreshToken -> %w", err)
	}

	return s.session(user, next)
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokens.DeleteRefreshToken(ctx, token); err != nil {
		return fmt.Errorf("s.tokens.DeleteRefreshToken -> %w", err)
	}

	return nil
}

// RequestPasswordReset stores a one-hour token and mails the reset link.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	token, err := jwthelper.GenerateOpaqueToken()
	if err != nil {
		return fmt.Errorf("jwthelper.GenerateOpaqueToken -> %w", err)
	}
	err = s.tokens.SaveResetToken(ctx, domain.PasswordResetToken{
		Token:   token,
		UserID:  user.ID,
		Expires: s.now().Add(s.conf.ResetTokenTTL),
	})
	if err != nil {
		return fmt.Errorf("s.tokens.SaveResetToken -> %w", err)
	}

	err = s.mailer.SendPasswordReset(ctx, user.Email, mailer.ResetData{
		Username: user.Username,
		Link:     s.resetURL + "/" + token,
		ValidFor: s.conf.ResetTokenTTL.String(),
	})
	if err != nil {
		return fmt.Errorf("s.mailer.SendPasswordReset -> %w", err)
	}

	return nil
}

// ResetPassword sets the new password and consumes the token in one step.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	stored, err := s.tokens.FindResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrInvalidResetToken
		}

		return fmt.Errorf("s.tokens.FindResetToken -> %w", err)
	}
	if !stored.Expires.After(s.now()) {
		return ErrInvalidResetToken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err = s.tokens.ConsumeResetToken(ctx, stored, hash); err != nil {
		return fmt.Errorf("s.tokens.ConsumeResetToken -> %w", err)
	}

	return nil
}

// ParseAccessToken returns the claims of a valid access token.
func (s *AuthService) ParseAccessToken(token string) (domain.Claims, error) {
	return jwthelper.ParseToken([]byte(s.conf.JWTSecret), token)
}

func (s *AuthService) session(user domain.User, refresh string) (domain.Session, error) {
	claims := domain.NewClaims(user)
	access, err := jwthelper.GenerateToken([]byte(s.conf.JWTSecret), claims, s.conf.AccessTokenTTL)
	if err != nil {
		return domain.Session{}, fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}

	return domain.Session{
		AccessToken:  access,
		RefreshToken: refresh,
		Claims:       claims,
	}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	return string(hash), nil
}
