package handlers

import (
	"errors"
	"net/http"

	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/api/response"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/apperrors"
	"github.com/ndewijer/Exchange-Rate-Dashboard/internal/validation"
)

// respondServiceError maps a service error to its HTTP status.
// Unknown currencies are 404, bad input is 400 and anything else is a 500 with fallback as message.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	var verr *validation.Error

	switch {
	case errors.Is(err, apperrors.ErrInvalidColumn):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrInvalidColumn.Error(), err.Error())
	case errors.Is(err, apperrors.ErrUnsupportedExportFormat):
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrUnsupportedExportFormat.Error(), err.Error())
	case errors.As(err, &verr):
		response.RespondError(w, http.StatusBadRequest, "validation failed", verr.Fields)
	default:
		response.RespondError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
