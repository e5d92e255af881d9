package domain

import "errors"

var (
	MessageEmailRequired     = "Email is required"
	MessageUserAlreadyExists = "User already exists"
	MessageFailedCreateUser  = "failed to create user"
	MessageFailedUpdateUser  = "failed to update user"

	ErrEmailRequired     = errors.New("email is required")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type (
	// UpdateUserRequest only carries the fields an admin may change.
	UpdateUserRequest struct {
		Role   *string `json:"role" validate:"omitempty,min=1"`
		Status *string `json:"status" validate:"omitempty,min=1"`
	}
)
