package service_manager

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrStoreUnavailable = errors.New("service store unavailable")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("permission denied")
	ErrValidation       = errors.New("validation error")
	ErrStoreIO          = errors.New("service store io error")
)

// StoreError is a non-2xx answer from the service store.
type StoreError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StoreError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *StoreError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrValidation:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusConflict
	case ErrStoreIO:
		return e.StatusCode >= http.StatusInternalServerError
	default:
		return false
	}
}
