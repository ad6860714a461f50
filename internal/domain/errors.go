package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("status does not permit this transition")
	ErrDuplicateMembership = errors.New("user is already a member of this club")
	ErrDuplicateRequest    = errors.New("user already has a pending request for this club")
	ErrDuplicateEmail      = errors.New("email is already registered")
	ErrCoordinatorTaken    = errors.New("coordinator already manages a club")
	ErrInvalidRole         = errors.New("user does not hold the required role")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrForbidden           = errors.New("operation not permitted")
)
