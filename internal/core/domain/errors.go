package domain

import "errors"

var (
	// ErrWrongCredentials covers both an unknown email and a wrong password so
	// a failed login never reveals which of the two was at fault.
	ErrWrongCredentials = errors.New("wrong credentials, re-enter the correct credentials")

	ErrEmailTaken       = errors.New("a user with this email already exists")
	ErrPhoneTaken       = errors.New("this phone number is already registered")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUserNotFound     = errors.New("user not found")

	// ErrSessionInvalid is returned for any session token that fails signature
	// verification, has expired, or is no longer in the user's token list.
	ErrSessionInvalid = errors.New("session invalid")

	ErrTicketNotFound = errors.New("ticket not found")
	ErrForbidden      = errors.New("access forbidden")
)
