package autherrors

import (
	"net/http"

	"go-jobboard/internal/shared/apperror"
)

var (
	ErrNoAccount = apperror.New(
		apperror.CodeNotFound,
		"No account found for this email",
		http.StatusNotFound,
	)

	// A NULL stored password is "unset", distinct from a failed comparison.
	ErrPasswordNotSet = apperror.New(
		apperror.CodeUnauthorized,
		"Password not set for this account. Please reset your password",
		http.StatusUnauthorized,
	)

	ErrIncorrectPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Incorrect password",
		http.StatusUnauthorized,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)
)
