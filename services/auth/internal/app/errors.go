package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not match.
	// It covers unknown email and wrong password alike so failures do not enable
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateAccount is returned when the email is already registered.
	ErrDuplicateAccount = errors.New("email already exists")

	// ErrStorageUnavailable wraps registry or session persistence failures.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrEmailAndPasswordRequired rejects register/login calls with a blank field.
	ErrEmailAndPasswordRequired = errors.New("email and password required")
)
