package companyerrors

import (
	"net/http"

	"go-jobboard/internal/shared/apperror"
)

var ErrCompanyNotFound = apperror.New(
	apperror.CodeNotFound,
	"Company not found",
	http.StatusNotFound,
)
