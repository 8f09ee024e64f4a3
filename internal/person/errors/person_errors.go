package personerrors

import (
	"net/http"

	"go-jobboard/internal/shared/apperror"
)

var (
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrAdminRequired = apperror.New(
		apperror.CodeForbidden,
		"Admin privileges required",
		http.StatusForbidden,
	)

	ErrSelfRoleChange = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot change your own role",
		http.StatusBadRequest,
	)

	ErrSelfDelete = apperror.New(
		apperror.CodeInvalidInput,
		"You cannot delete your own admin account",
		http.StatusBadRequest,
	)
)
