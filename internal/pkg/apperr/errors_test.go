package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CapturesStack(t *testing.T) {
	e := NotFound("Candidate not found", nil)
	assert.Equal(t, TypeNotFound, e.Type)
	assert.NotEmpty(t, e.StackTrace())
	assert.Equal(t, "NOT_FOUND: Candidate not found", e.Error())
}

func TestNew_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	e := Datastore("Failed to fetch jobs", cause)

	assert.ErrorIs(t, e, cause)
	assert.Contains(t, e.Error(), "connection refused")
	assert.NotEmpty(t, e.Stack)
}

func TestTypeOf(t *testing.T) {
	wrapped := fmt.Errorf("sync: %w", Upstream("Workable API error: 502", nil))
	assert.Equal(t, TypeUpstream, TypeOf(wrapped))
	assert.True(t, Is(wrapped, TypeUpstream))
	assert.False(t, Is(nil, TypeUpstream))
	assert.Equal(t, TypeInternal, TypeOf(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	require.Equal(t, "Workable API key not configured", Message(ConfigMissing("Workable API key not configured", nil)))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(nil))
}
