package apperrors

import (
	"errors"
)

var (
	ErrServiceNotFound       = errors.New("service not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserInactive          = errors.New("user is not active")
	ErrTicketNotFound        = errors.New("ticket not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidToken          = errors.New("invalid token")
	ErrRefreshTokenNotFound  = errors.New("refresh token not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
