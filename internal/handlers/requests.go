package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement
// Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RegisterRequest is the DTO for the registration form.
type RegisterRequest struct {
	Username        string `form:"username" validate:"required,min=3,max=64,alphanum"`
	Email           string `form:"email" validate:"omitempty,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// RoomRequest is the DTO for the room create/edit form.
type RoomRequest struct {
	Topic       string `form:"topic" validate:"required,max=100"`
	Name        string `form:"name" validate:"required,max=200"`
	Description string `form:"description" validate:"max=1000"`
}

// AccountRequest is the DTO for the profile edit form.
type AccountRequest struct {
	Username string `form:"username" validate:"required,min=3,max=64,alphanum"`
	Email    string `form:"email" validate:"omitempty,email"`
}
