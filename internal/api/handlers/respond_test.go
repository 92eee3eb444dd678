package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusflorencio2008/leilao/internal/domain"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", fmt.Errorf("%w: title is required", domain.ErrValidation), http.StatusBadRequest, "validation_error"},
		{"not_started", domain.ErrAuctionNotStarted, http.StatusBadRequest, "auction_not_started"},
		{"expired", domain.ErrAuctionExpired, http.StatusBadRequest, "auction_expired"},
		{"not_open", domain.ErrAuctionNotOpen, http.StatusBadRequest, "auction_not_open"},
		{"bid_too_low", &domain.BidTooLowError{Amount: 1050, RequiredMin: 1100}, http.StatusBadRequest, "bid_too_low"},
		{"invalid_credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
		{"not_a_client", domain.ErrNotAClient, http.StatusForbidden, "not_a_client"},
		{"not_found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", domain.ErrConflict, http.StatusConflict, "conflict"},
		{"internal", errors.New("dial tcp: connection refused"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, respondError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestRespondError_InternalHidesDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, respondError(c, errors.New("dsn user:password@tcp(db:3306)/leilao")))

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Error)
}
