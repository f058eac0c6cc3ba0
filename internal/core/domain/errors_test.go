package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionError_WrapsCause(t *testing.T) {
	cause := errors.New("executable not found")
	err := &ConnectionError{Transport: "cli", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "cli")
	assert.Contains(t, err.Error(), "executable not found")
}

func TestIsConnectionError(t *testing.T) {
	err := fmt.Errorf("outer: %w", &ConnectionError{Transport: "http", Cause: errors.New("refused")})

	assert.True(t, IsConnectionError(err))
	assert.False(t, IsSearchError(err))
}

func TestIsSearchError(t *testing.T) {
	err := fmt.Errorf("outer: %w", &SearchError{Transport: "sdk", Cause: errors.New("engine error code 2")})

	assert.True(t, IsSearchError(err))
	assert.False(t, IsConnectionError(err))
}

func TestIsPlatformUnsupported(t *testing.T) {
	wrapped := &ConnectionError{Transport: "sdk", Cause: ErrPlatformUnsupported}

	assert.True(t, IsPlatformUnsupported(wrapped))
	assert.False(t, IsPlatformUnsupported(errors.New("other")))
}
