package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrNoFieldsProvided = New(
		CodeInvalidInput,
		"No valid fields provided for update",
		http.StatusBadRequest,
	)
)

func RequiredField(name string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("Missing field: %s", name),
		http.StatusBadRequest,
	)
}

func InvalidField(name string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("Invalid value for %s", name),
		http.StatusBadRequest,
	)
}

func OutOfRange(name string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s must be between 0 and 99 999 999.99", name),
		http.StatusBadRequest,
	)
}

func NotFound(entity string) *AppError {
	return New(
		CodeNotFound,
		fmt.Sprintf("%s not found", entity),
		http.StatusNotFound,
	)
}

func Conflict(message string) *AppError {
	return New(
		CodeConflict,
		message,
		http.StatusConflict,
	)
}
