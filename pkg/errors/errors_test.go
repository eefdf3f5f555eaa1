package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound_WrapsSentinel(t *testing.T) {
	err := NotFound("product", "p1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "product with id p1")
}

func TestInvalidInput_WrapsSentinel(t *testing.T) {
	err := InvalidInput("quantity must be positive")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "quantity must be positive", err.Message)
}

func TestSessionExpired_ChainsBothSentinels(t *testing.T) {
	err := SessionExpired()

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, err.Status)
}

func TestEmptyCart(t *testing.T) {
	err := EmptyCart()

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, "your cart is empty", err.Message)
}

func TestBackend_DefaultMessage(t *testing.T) {
	assert.Equal(t, "the request could not be completed", Backend("").Message)
	assert.Equal(t, "out of stock", Backend("out of stock").Message)
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause)

	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "disk full")
	assert.ErrorIs(t, err, cause)
}

func TestWrap_PreservesChain(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "load product")

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Contains(t, wrapped.Error(), "load product")
}

func TestFromStatus_MapsKnownCodes(t *testing.T) {
	assert.ErrorIs(t, FromStatus(http.StatusNotFound, ""), ErrNotFound)
	assert.ErrorIs(t, FromStatus(http.StatusUnauthorized, ""), ErrUnauthorized)
	assert.ErrorIs(t, FromStatus(http.StatusForbidden, ""), ErrForbidden)
	assert.ErrorIs(t, FromStatus(http.StatusBadRequest, ""), ErrInvalidInput)
	assert.ErrorIs(t, FromStatus(http.StatusBadGateway, ""), ErrInternal)
}

func TestHTTPStatus_FromAppError(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("nope")))
}

func TestHTTPStatus_FromWrappedAppError(t *testing.T) {
	err := fmt.Errorf("context: %w", NotFound("order", "o1"))

	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus_FromSentinel(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrEmptyCart))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrNotAuthenticated))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestHTTPStatus_RequireAllSentinelsDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound, ErrInvalidInput, ErrUnauthorized, ErrForbidden,
		ErrInternal, ErrEmptyCart, ErrNotAuthenticated, ErrSessionExpired,
	}
	seen := make(map[string]bool, len(sentinels))
	for _, s := range sentinels {
		require.False(t, seen[s.Error()], "duplicate sentinel message %q", s.Error())
		seen[s.Error()] = true
	}
}
