package dashboarderrors

import (
	"go-invmis/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidActor = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)

	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render dashboard export",
		http.StatusInternalServerError,
	)
)
