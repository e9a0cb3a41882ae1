package company

import "errors"

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrEmailAlreadyExists = errors.New("email already exist")
	ErrCodeAlreadyExists  = errors.New("code already exist")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrValueTooLong       = errors.New("value too long")
)
