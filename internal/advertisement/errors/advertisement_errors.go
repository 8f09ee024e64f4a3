package aderrors

import (
	"net/http"

	"go-jobboard/internal/shared/apperror"
)

var (
	ErrAdvertisementNotFound = apperror.New(
		apperror.CodeNotFound,
		"Advertisement not found",
		http.StatusNotFound,
	)

	ErrInvalidDateExpiry = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_expiry format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
