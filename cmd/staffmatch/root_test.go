package main

import (
	"bytes"
	"strings"
	"testing"

	"staff-match/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "sync", "migrate", "seed", "token", "version"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "staffmatch version: dev\n", out.String())
}

func TestTokenCmd_IssuesValidToken(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/staffmatch")
	t.Setenv("AUTH_JWT_SECRET", "cli-secret")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"token", "--ttl", "1m"})
	require.NoError(t, cmd.Execute())

	claims, err := jwt.NewHMACService("cli-secret", "").Validate(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleServiceRole, claims.Role)
}

func TestTokenCmd_RequiresSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/staffmatch")
	t.Setenv("AUTH_JWT_SECRET", "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	assert.ErrorContains(t, cmd.Execute(), "AUTH_JWT_SECRET")
}
