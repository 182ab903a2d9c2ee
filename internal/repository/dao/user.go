package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type User struct {
	Base
	Username string  `gorm:"size:50;not null;uniqueIndex"`
	Email    string  `gorm:"size:255;not null;uniqueIndex"`
	Password string  `gorm:"size:255;not null"`
	Person   *Person `gorm:"constraint:OnDelete:CASCADE"`
}

type Person struct {
	Base
	UserID    uint   `gorm:"not null;uniqueIndex"`
	FirstName string `gorm:"size:50;not null"`
	LastName  string `gorm:"size:50;not null"`
	Cedula    string `gorm:"size:20;not null;uniqueIndex"`
}

type RefreshToken struct {
	ID      uint      `gorm:"primaryKey"`
	Token   string    `gorm:"size:255;not null;uniqueIndex"`
	UserID  uint      `gorm:"not null;index"`
	User    *User     `gorm:"constraint:OnDelete:CASCADE"`
	Expires time.Time `gorm:"not null;index"`
}

type PasswordResetToken struct {
	ID      uint      `gorm:"primaryKey"`
	Token   string    `gorm:"size:255;not null;uniqueIndex"`
	UserID  uint      `gorm:"not null;index"`
	User    *User     `gorm:"constraint:OnDelete:CASCADE"`
	Expires time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

// Insert creates the user and its person in one transaction.
func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		person := user.Person
		user.Person = nil
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if person != nil {
			person.UserID = user.ID
			if err := tx.Create(person).Error; err != nil {
				return err
			}
			user.Person = person
		}
		return nil
	})
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User
	result := d.db.WithContext(ctx).Preload("Person").Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Person").First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	return d.findOne(ctx, "email = ?", email)
}

// FindByIdentifier looks a user up by email or username.
func (d *UserDAO) FindByIdentifier(ctx context.Context, identifier string) (User, error) {
	return d.findOne(ctx, "email = ? OR username = ?", identifier, identifier)
}

func (d *UserDAO) findOne(ctx context.Context, query string, args ...any) (User, error) {
	var user User

	result := d.db.WithContext(ctx).Preload("Person").Where(query, args...).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// Update applies the non-empty columns in fields and upserts person when
// given.
func (d *UserDAO) Update(ctx context.Context, id uint, fields map[string]any, person *Person) (User, error) {
	var updated User
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current User
		if err := tx.Preload("Person").First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if len(fields) > 0 {
			if err := tx.Model(&current).Updates(fields).Error; err != nil {
				return err
			}
		}

		if person != nil {
			if current.Person == nil {
				person.UserID = id
				if err := tx.Create(person).Error; err != nil {
					return err
				}
			} else {
				err := tx.Model(current.Person).Updates(map[string]any{
					"first_name": person.FirstName,
					"last_name":  person.LastName,
					"cedula":     person.Cedula,
				}).Error
				if err != nil {
					return err
				}
			}
		}

		return tx.Preload("Person").First(&updated, id).Error
	})
	if err != nil {
		err = classify(err)
		if errors.Is(err, ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, err
	}

	return updated, nil
}

func (d *UserDAO) UpdatePassword(ctx context.Context, id uint, hash string) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("password", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the user with its person and tokens.
func (d *UserDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&Person{}, &RefreshToken{}, &PasswordResetToken{}} {
			if err := tx.Where("user_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}

type TokenDAO struct {
	db *gorm.DB
}

func NewTokenDAO(db *gorm.DB) *TokenDAO {
	return &TokenDAO{
		db: db,
	}
}

func (d *TokenDAO) InsertRefreshToken(ctx context.Context, token RefreshToken) error {
	return classify(d.db.WithContext(ctx).Create(&token).Error)
}

func (d *TokenDAO) FindRefreshToken(ctx context.Context, token string) (RefreshToken, error) {
	var found RefreshToken
	result := d.db.WithContext(ctx).Where("token = ?", token).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RefreshToken{}, ErrTokenNotFound
		}
		return RefreshToken{}, result.Error
	}

	return found, nil
}

// RotateRefreshToken deletes old and stores next atomically. If old was
// already consumed nothing is stored.
func (d *TokenDAO) RotateRefreshToken(ctx context.Context, old string, next RefreshToken) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("token = ?", old).Delete(&RefreshToken{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTokenNotFound
		}

		return classify(tx.Create(&next).Error)
	})
}

func (d *TokenDAO) DeleteRefreshToken(ctx context.Context, token string) error {
	return d.db.WithContext(ctx).Where("token = ?", token).Delete(&RefreshToken{}).Error
}

func (d *TokenDAO) InsertResetToken(ctx context.Context, token PasswordResetToken) error {
	return classify(d.db.WithContext(ctx).Create(&token).Error)
}

func (d *TokenDAO) FindResetToken(ctx context.Context, token string) (PasswordResetToken, error) {
	var found PasswordResetToken
	result := d.db.WithContext(ctx).Where("token = ?", token).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return PasswordResetToken{}, ErrTokenNotFound
		}
		return PasswordResetToken{}, result.Error
	}

	return found, nil
}

// ConsumeResetToken sets the new password hash and deletes the token in one
// transaction.
func (d *TokenDAO) ConsumeResetToken(ctx context.Context, token PasswordResetToken, hash string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&User{}).Where("id = ?", token.UserID).Update("password", hash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return tx.Delete(&PasswordResetToken{}, token.ID).Error
	})
}

// DeleteExpired removes rows of model whose expires column is before now,
// batchSize rows per statement. It returns the number of deleted rows.
func (d *TokenDAO) DeleteExpired(ctx context.Context, model any, now time.Time, batchSize int) (int64, error) {
	return deleteInBatches(ctx, d.db, model, batchSize, func(q *gorm.DB) *gorm.DB {
		return q.Where("expires < ?", now)
	})
}

// deleteInBatches selects ids first so the same loop works on every
// supported driver, including MySQL which rejects LIMIT in IN subqueries.
func deleteInBatches(ctx context.Context, db *gorm.DB, model any, batchSize int, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		var ids []uint
		err := scope(db.WithContext(ctx).Model(model)).
			Order("id").
			Limit(batchSize).
			Pluck("id", &ids).Error
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}

		result := db.WithContext(ctx).Where("id IN ?", ids).Delete(model)
		if result.Error != nil {
			return total, result.Error
		}
		total += result.RowsAffected

		if len(ids) < batchSize {
			return total, nil
		}
	}
}
