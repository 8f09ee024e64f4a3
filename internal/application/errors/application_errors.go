package applicationerrors

import (
	"net/http"

	"go-jobboard/internal/shared/apperror"
)

var (
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)

	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"You have already applied to this advertisement.",
		http.StatusConflict,
	)

	ErrInvalidApplicant = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid applicant identifier",
		http.StatusBadRequest,
	)

	ErrNotApplicantAccount = apperror.New(
		apperror.CodeInvalidInput,
		"Only candidate accounts can apply",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status value",
		http.StatusBadRequest,
	)
)
