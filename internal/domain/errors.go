package domain

import "errors"

// Domain errors
var (
	// Credential errors. ErrInvalidCredentials is deliberately identical
	// for "unknown email" and "wrong password" to prevent user enumeration.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyInUse   = errors.New("email already in use")

	// Gym errors
	ErrGymNotFound = errors.New("gym not found")

	// Check-in errors
	ErrCheckInNotFound         = errors.New("check-in not found")
	ErrTooFarFromGym           = errors.New("you are too far away from the gym to perform a check in")
	ErrDailyCheckInLimit       = errors.New("you can only check in to one gym per day")
	ErrLateCheckInValidation   = errors.New("check-in can only be validated within 20 minutes of creation")
	ErrCheckInAlreadyValidated = errors.New("check-in already validated")
)
