package domain

import (
	"errors"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
)

var (
	MessageUserAlreadyExists = "user already exists"

	MessageFailedAddUser    = "failed to add user"
	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedDeleteUser = "failed to delete user"
)

type (
	AddUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name"`
		PhotoURL string `json:"photo_url" validate:"omitempty,url"`
	}

	// UserConflictResponse is what the create operation answers when the
	// email is already taken. It is informational, not an HTTP error:
	// the original contract reports the conflict with a 200.
	UserConflictResponse struct {
		Message    string  `json:"message"`
		InsertedID *string `json:"insertedId"`
	}
)
