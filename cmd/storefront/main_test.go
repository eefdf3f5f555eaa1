package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/serikkalibeknur/project-clothesstore/pkg/errors"
)

func TestExitCode_InputErrors(t *testing.T) {
	assert.Equal(t, 2, exitCode(apperrors.InvalidInput("bad quantity")))
	assert.Equal(t, 2, exitCode(apperrors.NotFound("product", "p9")))
	assert.Equal(t, 2, exitCode(apperrors.EmptyCart()))
}

func TestExitCode_AuthErrors(t *testing.T) {
	assert.Equal(t, 3, exitCode(apperrors.SessionExpired()))
	assert.Equal(t, 3, exitCode(apperrors.Forbidden("admin access required")))
	assert.Equal(t, 3, exitCode(apperrors.NotAuthenticated("please login to continue")))
}

func TestExitCode_GenericErrors(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 1, exitCode(apperrors.Backend("upstream down")))
}

func TestExitCode_WrappedErrors(t *testing.T) {
	err := fmt.Errorf("checkout: %w", apperrors.SessionExpired())
	assert.Equal(t, 3, exitCode(err))
}
