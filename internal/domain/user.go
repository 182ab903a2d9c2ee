package domain

import "time"

type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Person    *Person   `json:"person,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Person struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Cedula    string    `json:"cedula"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	Person   *Person
}

type RefreshToken struct {
	ID      uint
	Token   string
	UserID  uint
	Expires time.Time
}

type PasswordResetToken struct {
	ID      uint
	Token   string
	UserID  uint
	Expires time.Time
}

// Claims is the identity carried in an access token.
type Claims struct {
	UserID    uint   `json:"user_id"`
	PersonID  uint   `json:"person_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Cedula    string `json:"cedula"`
}

func NewClaims(u User) Claims {
	c := Claims{
		UserID:   u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
	if u.Person != nil {
		c.PersonID = u.Person.ID
		c.FirstName = u.Person.FirstName
		c.LastName = u.Person.LastName
		c.Cedula = u.Person.Cedula
	}

	return c
}

// Session is the outcome of a login or a refresh.
type Session struct {
	AccessToken  string
	RefreshToken string
	Claims       Claims
}
