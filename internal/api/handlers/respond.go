package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

type errorBody struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// respondError maps a domain error to its HTTP status and stable code.
// Internal errors are surfaced generically without diagnostic detail.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	var tooLow *domain.BidTooLowError
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAuctionNotStarted),
		errors.Is(err, domain.ErrAuctionExpired),
		errors.Is(err, domain.ErrAuctionNotOpen):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.As(err, &tooLow):
		status = http.StatusBadRequest
		message = tooLow.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrNotAClient):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	}

	return c.JSON(status, errorBody{
		Code:  domain.ErrorCode(err),
		Error: message,
	})
}
