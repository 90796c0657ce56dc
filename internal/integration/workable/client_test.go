package workable

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"staff-match/internal/config"
	"staff-match/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, key string) (*Client, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(config.WorkableConfig{APIKey: key, BaseURL: srv.URL + "/spi/v3"}, nil), &hits
}

func TestClient_ListCandidates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spi/v3/candidates", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[
			{"id":"c1","name":"Ada","skills":[{"name":"Go"},"SQL"],"experience_years":4,
			 "location":{"location_str":"Amsterdam, NL"},"applications":[{},{}],
			 "social_profiles":[{"type":"twitter","url":"https://x.com/ada"},{"type":"linkedin","url":"https://linkedin.com/in/ada"}]}
		]}`))
	}, "secret")

	got, err := c.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, FlexString("c1"), got[0].ID)
	assert.Equal(t, SkillList{"Go", "SQL"}, got[0].Skills)
	assert.Equal(t, "Amsterdam, NL", got[0].Location.String())
	assert.Len(t, got[0].Applications, 2)
}

func TestClient_ListJobs_EmptyBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spi/v3/jobs", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	}, "secret")

	got, err := c.ListJobs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}, "bad")

	_, err := c.ListCandidates(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TypeUpstream))
	assert.Equal(t, "Workable API error: 401", apperr.Message(err))

	_, err = c.ListJobs(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Workable Jobs API error: 401", apperr.Message(err))
}

func TestClient_MissingKeyMakesNoRequest(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}, "  ")

	assert.False(t, c.Configured())
	_, err := c.ListCandidates(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TypeConfigMissing))
	assert.Equal(t, MsgMissingAPIKey, apperr.Message(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient(config.WorkableConfig{APIKey: "k", BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := c.ListJobs(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.TypeUpstream))
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	c := NewClient(config.WorkableConfig{APIKey: "k"}, nil)
	assert.Equal(t, "https://growthacceleratorstaffing.workable.com/spi/v3", c.baseURL)
}
