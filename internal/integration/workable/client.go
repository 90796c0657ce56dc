package workable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"staff-match/internal/config"
	applog "staff-match/internal/logger"
	"staff-match/internal/pkg/apperr"
	"staff-match/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("staff-match/workable")

const (
	MsgMissingAPIKey = "Workable API key not configured"

	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4096
	maxLoggedBody  = 512
)

var ErrMissingAPIKey = errors.New("workable api key missing")

type Source interface {
	Configured() bool
	ListCandidates(ctx context.Context) ([]Candidate, error)
	ListJobs(ctx context.Context) ([]Job, error)
}

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(cfg config.WorkableConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.WorkableBaseURL(),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		client:  &http.Client{Timeout: timeout},
		logger:  logger.Named("workable"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) ListCandidates(ctx context.Context) ([]Candidate, error) {
	var out CandidateList
	if err := c.get(ctx, "/candidates", "Workable API error", &out); err != nil {
		return nil, err
	}
	if out.Candidates == nil {
		out.Candidates = []Candidate{}
	}
	return out.Candidates, nil
}

func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var out JobList
	if err := c.get(ctx, "/jobs", "Workable Jobs API error", &out); err != nil {
		return nil, err
	}
	if out.Jobs == nil {
		out.Jobs = []Job{}
	}
	return out.Jobs, nil
}

func (c *Client) get(ctx context.Context, path, failurePrefix string, dst any) error {
	if !c.Configured() {
		return apperr.ConfigMissing(MsgMissingAPIKey, ErrMissingAPIKey)
	}

	ctx, span := tracer.Start(ctx, "workable.GET "+path)
	defer span.End()

	endpoint := c.baseURL + path
	span.SetAttributes(telemetry.String("http.url", endpoint), telemetry.String("http.method", http.MethodGet))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		span.RecordError(err)
		return apperr.Internal("creating workable request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("workable request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return apperr.Upstream(failurePrefix+": request failed", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	span.SetAttributes(telemetry.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("workable returned non-success status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("body", applog.Truncate(string(rb), maxLoggedBody)),
		)
		msg := fmt.Sprintf("%s: %d", failurePrefix, resp.StatusCode)
		return apperr.Upstream(msg, fmt.Errorf("status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		span.RecordError(err)
		return apperr.Upstream(failurePrefix+": invalid response body", err)
	}

	c.logger.Debug("workable request done",
		zap.String("endpoint", endpoint),
		zap.Duration("elapsed", time.Since(started)),
	)
	return nil
}

var _ Source = (*Client)(nil)
