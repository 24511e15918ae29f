// Package predict implements the HTTP client for the remote diabetes
// classifier.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dohr-michael/screener/internal/screening"
)

// DefaultEndpoint is the classifier address used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:5000/predict"

const maxBodyBytes = 64 << 10

// Client posts screening requests to the classifier. One call is one
// attempt: there is no retry, backoff or deduplication.
type Client struct {
	endpoint   string
	httpClient *http.Client
	confidence ConfidenceSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithConfidence sets the fallback confidence source.
func WithConfidence(src ConfidenceSource) Option {
	return func(c *Client) { c.confidence = src }
}

// WithLogger sets the logger used for per-attempt diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the given endpoint URL.
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		confidence: Placeholder{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured classifier URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// response is the classifier's success body.
type response struct {
	PredictionClass *int     `json:"prediction_class"`
	OutcomeText     string   `json:"outcome_text"`
	Message         string   `json:"message"`
	Probability     *float64 `json:"probability"`
}

// failure is the classifier's error body.
type failure struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Predict sends req and interprets the classifier's answer.
func (c *Client) Predict(ctx context.Context, req screening.Request) (screening.Outcome, error) {
	attempt := uuid.NewString()
	log := c.logger.With("attempt", attempt, "endpoint", c.endpoint)

	payload, err := json.Marshal(req)
	if err != nil {
		return screening.Outcome{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return screening.Outcome{}, &NetworkError{Endpoint: c.endpoint, Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn("prediction request failed", "error", err)
		return screening.Outcome{}, &NetworkError{Endpoint: c.endpoint, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Warn("read prediction response", "error", err)
		return screening.Outcome{}, &NetworkError{Endpoint: c.endpoint, Cause: err}
	}
	log.Debug("prediction response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return screening.Outcome{}, serviceError(resp.StatusCode, body)
	}

	outcome, err := c.decode(body)
	if err != nil {
		log.Warn("unexpected prediction response", "error", err)
		return screening.Outcome{}, err
	}
	log.Info("prediction completed",
		"class", outcome.Class(),
		"confidence", outcome.Confidence,
		"estimated", outcome.Estimated)
	return outcome, nil
}

func serviceError(status int, body []byte) *ServiceError {
	var f failure
	if err := json.Unmarshal(body, &f); err != nil {
		return &ServiceError{StatusCode: status}
	}
	return &ServiceError{StatusCode: status, Detail: strings.TrimSpace(f.Details)}
}

func (c *Client) decode(body []byte) (screening.Outcome, error) {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return screening.Outcome{}, &ProtocolError{Reason: err.Error(), Body: truncate(body)}
	}
	if r.PredictionClass == nil {
		return screening.Outcome{}, &ProtocolError{Reason: "missing prediction_class", Body: truncate(body)}
	}
	if *r.PredictionClass != 0 && *r.PredictionClass != 1 {
		return screening.Outcome{}, &ProtocolError{
			Reason: fmt.Sprintf("prediction_class must be 0 or 1, got %d", *r.PredictionClass),
		}
	}

	positive := *r.PredictionClass == 1
	var outcome screening.Outcome
	if r.Probability != nil {
		p := *r.Probability
		if p < 0 || p > 1 {
			return screening.Outcome{}, &ProtocolError{Reason: fmt.Sprintf("probability %v outside [0,1]", p)}
		}
		outcome = screening.NewOutcome(positive, fromProbability(positive, p), false)
	} else {
		outcome = screening.NewOutcome(positive, c.confidence.Confidence(positive), c.confidence.Estimated())
	}
	outcome.Text = r.OutcomeText
	return outcome, nil
}

func truncate(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
