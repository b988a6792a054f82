package api

import (
	"errors"
	"net/http"

	"autofin/internal/handler/httperr"
	"autofin/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase sentinels onto HTTP statuses. Anything
// unrecognized is a 500 with no detail leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnsupportedSortKey):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported sort key", nil)
	case errors.Is(err, errs.ErrInvalidSortDirection):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Sort direction must be true or false", nil)
	case errors.Is(err, errs.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be a decimal number", nil)
	case errors.Is(err, errs.ErrEmptyUserID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User id is required", nil)
	case errors.Is(err, errs.ErrInvalidUserID):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User id must end in three digits", nil)
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errors.Is(err, errs.ErrCarNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Car not found", nil)
	case errors.Is(err, errs.ErrQuoteDeclined):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Loan amount declined by rate service", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
