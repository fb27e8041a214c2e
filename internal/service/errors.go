package service

import "errors"

var (
	ErrNotAuthenticated     = errors.New("caller is not authenticated")
	ErrAlreadyRegistered    = errors.New("registration already exists for this email")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrTicketNotFound       = errors.New("no ticket matches the verification code")
	ErrTicketRender         = errors.New("ticket rendering failed")
)
