// Package handlers implements the REST request handlers.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"ziwei-backend/pkg/common"
	apperrors "ziwei-backend/pkg/errors"
)

const maxBodyBytes = 1 << 20 // 1MB

// respondAppError maps a failure from the application layer to an HTTP
// response. Bus dispatch wraps handler errors, so the AppError is unwrapped
// rather than asserted directly.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
		return
	}

	if strings.Contains(err.Error(), "validation failed") {
		common.RespondError(w, http.StatusBadRequest,
			common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	common.RespondError(w, http.StatusInternalServerError,
		common.StandardErrorCodes.InternalError, "an unexpected error occurred")
}

// respondBadRequest reports a malformed or invalid request body
func respondBadRequest(w http.ResponseWriter, err error) {
	common.RespondError(w, http.StatusBadRequest,
		common.StandardErrorCodes.ValidationError, err.Error())
}
