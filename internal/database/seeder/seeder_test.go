package seeder

import (
	"context"
	"errors"
	"strings"
	"testing"

	"staff-match/internal/database"
	"staff-match/internal/domain/candidate"
	"staff-match/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSeeder struct {
	name  string
	err   error
	calls *[]string
}

func (s stubSeeder) Name() string { return s.name }

func (s stubSeeder) Run(context.Context, database.DB) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

// nopDB satisfies database.DB for runner tests that never touch it.
type nopDB struct{ database.DB }

func TestRunner_RunsInOrderAndStops(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	r := Runner{Seeders: []Seeder{
		stubSeeder{name: "a", calls: &calls},
		nil,
		stubSeeder{name: "b", err: boom, calls: &calls},
		stubSeeder{name: "c", calls: &calls},
	}}

	err := r.Run(context.Background(), nopDB{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seed b")
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestRunner_NilDB(t *testing.T) {
	err := Runner{Seeders: Defaults()}.Run(context.Background(), nil)
	assert.ErrorIs(t, err, database.ErrNilDB)
}

func TestWithDemo(t *testing.T) {
	names := make([]string, 0)
	for _, s := range WithDemo() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"skills", "demo"}, names)
}

func TestCatalog_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range catalog {
		k := strings.ToLower(it.Name)
		assert.False(t, seen[k], "duplicate skill %s", it.Name)
		seen[k] = true
		assert.NotEmpty(t, it.Category)
	}
}

func TestDemoData(t *testing.T) {
	active := 0
	for _, c := range DemoCandidates() {
		require.NotNil(t, c.WorkableID)
		assert.True(t, strings.HasPrefix(*c.WorkableID, DemoPrefix))
		if c.Status == candidate.StatusActive {
			active++
		}
	}
	assert.Positive(t, active)

	for _, j := range DemoJobs() {
		require.NotNil(t, j.WorkableID)
		assert.True(t, strings.HasPrefix(*j.WorkableID, DemoPrefix))
		assert.Equal(t, job.StatusActive, j.Status)
		assert.NotEmpty(t, j.SkillsRequired)
	}
}
