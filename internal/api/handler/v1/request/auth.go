package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/sit-project/sit-api/internal/domain"
)

var errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")

type PersonRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Cedula    string `json:"cedula"`
}

func (req PersonRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Cedula, validation.Required, matchRegexp2(cedulaPattern, errInvalidCedula)),
	)
}

func (req PersonRequest) ToDomain() *domain.Person {
	return &domain.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Cedula:    req.Cedula,
	}
}

type RegisterRequest struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Person   *PersonRequest `json:"person"`
}

func (req *RegisterRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50), validation.Match(usernamePattern)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required, validation.Length(10, 100)),
		validation.Field(&req.Person, validation.Required),
	)
}

func (req *RegisterRequest) ToDomain() domain.User {
	return domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Person:   req.Person.ToDomain(),
	}
}

// LoginRequest accepts the email or the username in either field.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Identifier() string {
	if req.Email != "" {
		return req.Email
	}
	return req.Username
}

func (req *LoginRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.Identifier() == "" {
		return validation.Errors{"email": errors.New("email or username is required")}
	}

	return nil
}

type SendEmailRequest struct {
	Email string `json:"email"`
}

func (req *SendEmailRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type ResetPasswordRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (req *ResetPasswordRequest) Validate() error {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Password, validation.Required, validation.Length(10, 100)),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.Password != req.ConfirmPassword {
		return validation.Errors{"confirm_password": errConfirmPasswordMismatch}
	}

	return nil
}

// UpdateUserRequest is partial: absent fields keep their value.
type UpdateUserRequest struct {
	Username *string        `json:"username"`
	Email    *string        `json:"email"`
	Password *string        `json:"password"`
	Person   *PersonRequest `json:"person"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username, validation.NilOrNotEmpty, validation.Length(3, 50), validation.Match(usernamePattern)),
		validation.Field(&req.Email, validation.NilOrNotEmpty, is.Email),
		validation.Field(&req.Password, validation.NilOrNotEmpty, validation.Length(10, 100)),
		validation.Field(&req.Person),
	)
}

func (req *UpdateUserRequest) ToDomain() domain.UserUpdate {
	update := domain.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Person != nil {
		update.Person = req.Person.ToDomain()
	}
	return update
}
