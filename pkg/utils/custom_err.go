package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrAlreadyCheckedIn   = errors.New("mission already checked in")
	ErrMissionNotFound    = errors.New("mission not found")
	ErrMissionInactive    = errors.New("mission is not active")
	ErrLocationNotFound   = errors.New("location not found")
	ErrNotEligible        = errors.New("completion requirements not met")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
