package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACService_RoundTrip(t *testing.T) {
	s := NewHMACService("top-secret", "staff-match")
	tok, err := s.Issue(RoleServiceRole, time.Hour)
	require.NoError(t, err)

	c, err := s.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, RoleServiceRole, c.Role)
	assert.Equal(t, "staff-match", c.Issuer)
}

func TestHMACService_Expired(t *testing.T) {
	s := NewHMACService("top-secret", "staff-match")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	tok, err := s.Issue("anon", time.Minute)
	require.NoError(t, err)

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = s.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("a", "").Issue("anon", 0)
	require.NoError(t, err)
	_, err = NewHMACService("b", "").Validate(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_NoSecret(t *testing.T) {
	s := NewHMACService("", "")
	_, err := s.Issue("anon", time.Minute)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = s.Validate("x.y.z")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
