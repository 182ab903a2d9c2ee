package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/repository/dao"
)

var (
	ErrUserExists    = dao.ErrUserExists
	ErrUserNotFound  = dao.ErrUserNotFound
	ErrTokenNotFound = dao.ErrTokenNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (dao.User, error)
	Update(ctx context.Context, id uint, fields map[string]any, person *dao.Person) (dao.User, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	u := dao.User{
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	}
	if user.Person != nil {
		u.Person = &dao.Person{
			FirstName: user.Person.FirstName,
			LastName:  user.Person.LastName,
			Cedula:    user.Person.Cedula,
		}
	}

	created, err := r.dao.Insert(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	found, err := r.dao.FindByIdentifier(ctx, identifier)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByIdentifier -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Update(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error) {
	fields := map[string]any{}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Password != nil {
		fields["password"] = *update.Password
	}

	var person *dao.Person
	if update.Person != nil {
		person = &dao.Person{
			FirstName: update.Person.FirstName,
			LastName:  update.Person.LastName,
			Cedula:    update.Person.Cedula,
		}
	}

	updated, err := r.dao.Update(ctx, id, fields, person)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	user := domain.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Person != nil {
		user.Person = &domain.Person{
			ID:        u.Person.ID,
			UserID:    u.Person.UserID,
			FirstName: u.Person.FirstName,
			LastName:  u.Person.LastName,
			Cedula:    u.Person.Cedula,
			CreatedAt: u.Person.CreatedAt,
			UpdatedAt: u.Person.UpdatedAt,
		}
	}

	return user
}

type TokenDAO interface {
	InsertRefreshToken(ctx context.Context, token dao.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (dao.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, old string, next dao.RefreshToken) error
	DeleteRefreshToken(ctx context.Context, token string) error
	InsertResetToken(ctx context.Context, token dao.PasswordResetToken) error
	FindResetToken(ctx context.Context, token string) (dao.PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, token dao.PasswordResetToken, hash string) error
	DeleteExpired(ctx context.Context, model any, now time.Time, batchSize int) (int64, error)
}

type TokenRepository struct {
	dao TokenDAO
}

func NewTokenRepository(dao TokenDAO) *TokenRepository {
	return &TokenRepository{
		dao: dao,
	}
}

func (r *TokenRepository) SaveRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	err := r.dao.InsertRefreshToken(ctx, dao.RefreshToken{
		Token:   t.Token,
		UserID:  t.UserID,
		Expires: t.Expires,
	})
	if err != nil {
		return fmt.Errorf("r.dao.InsertRefreshToken -> %w", err)
	}

	return nil
}

func (r *TokenRepository) FindRefreshToken(ctx context.Context, token string) (domain.RefreshToken, error) {
	found, err := r.dao.FindRefreshToken(ctx, token)
	if err != nil {
		return domain.RefreshToken{}, fmt.Errorf("r.dao.FindRefreshToken -> %w", err)
	}

	return domain.RefreshToken{
		ID:      found.ID,
		Token:   found.Token,
		UserID:  found.UserID,
		Expires: found.Expires,
	}, nil
}

func (r *TokenRepository) RotateRefreshToken(ctx context.Context, old string, next domain.RefreshToken) error {
	err := r.dao.RotateRefreshToken(ctx, old, dao.RefreshToken{
		Token:   next.Token,
		UserID:  next.UserID,
		Expires: next.Expires,
	})
	if err != nil {
		return fmt.Errorf("r.dao.RotateRefreshToken -> %w", err)
	}

	return nil
}

func (r *TokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	if err := r.dao.DeleteRefreshToken(ctx, token); err != nil {
		return fmt.Errorf("r.dao.DeleteRefreshToken -> %w", err)
	}

	return nil
}

func (r *TokenRepository) SaveResetToken(ctx context.Context, t domain.PasswordResetToken) error {
	err := r.dao.InsertResetToken(ctx, dao.PasswordResetToken{
		Token:   t.Token,
		UserID:  t.UserID,
		Expires: t.Expires,
	})
	if err != nil {
		return fmt.Errorf("r.dao.InsertResetToken -> %w", err)
	}

	return nil
}

func (r *TokenRepository) FindResetToken(ctx context.Context, token string) (domain.PasswordResetToken, error) {
	found, err := r.dao.FindResetToken(ctx, token)
	if err != nil {
		return domain.PasswordResetToken{}, fmt.Errorf("r.dao.FindResetToken -> %w", err)
	}

	return domain.PasswordResetToken{
		ID:      found.ID,
		Token:   found.Token,
		UserID:  found.UserID,
		Expires: found.Expires,
	}, nil
}

func (r *TokenRepository) ConsumeResetToken(ctx context.Context, t domain.PasswordResetToken, hash string) error {
	err := r.dao.ConsumeResetToken(ctx, dao.PasswordResetToken{ID: t.ID, UserID: t.UserID}, hash)
	if err != nil {
		return fmt.Errorf("r.dao.ConsumeResetToken -> %w", err)
	}

	return nil
}

// DeleteExpired purges expired refresh and reset tokens.
func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time, batchSize int) (int64, error) {
	refresh, err := r.dao.DeleteExpired(ctx, &dao.RefreshToken{}, now, batchSize)
	if err != nil {
		return refresh, fmt.Errorf("r.dao.DeleteExpired(refresh) -> %w", err)
	}

	reset, err := r.dao.DeleteExpired(ctx, &dao.PasswordResetToken{}, now, batchSize)
	if err != nil {
		return refresh + reset, fmt.Errorf("r.dao.DeleteExpired(reset) -> %w", err)
	}

	return refresh + reset, nil
}
