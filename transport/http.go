package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hupe1980/agentgate/logging"
	"github.com/hupe1980/agentgate/protocol"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 5 * time.Second

// eventsPath is the dashboard ingestion route appended to the base URL.
const eventsPath = "/events"

// Config carries the explicit transport configuration. It is injected at
// construction rather than read ambiently from the environment.
type Config struct {
	// BaseURL is the dashboard base URL, e.g. "http://localhost:4000".
	BaseURL string
	// Timeout bounds one delivery attempt. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Options configures optional Sender collaborators.
type Options struct {
	// HTTPClient overrides the default client (mainly for tests).
	HTTPClient *http.Client
	// Logger receives debug records of failed deliveries. Defaults to NoOp.
	Logger logging.Logger
}

// Sender performs best-effort envelope delivery.
type Sender struct {
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

// NewSender creates a Sender for the configured dashboard with optional
// overrides.
func NewSender(cfg Config, optFns ...func(o *Options)) *Sender {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &Sender{
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + eventsPath,
		client:   client,
		logger:   opts.Logger,
	}
}

// Endpoint returns the resolved events endpoint.
func (s *Sender) Endpoint() string { return s.endpoint }

// Send serializes the envelope and issues one POST to the events endpoint.
// It returns true iff the dashboard answered 200 or 201. Any timeout,
// connection failure or non-2xx response is swallowed and reported as false;
// delivery is never retried and the envelope is discarded either way.
func (s *Sender) Send(ctx context.Context, env protocol.Envelope) bool {
	body, err := json.Marshal(env)
	if err != nil {
		s.logger.Debug("envelope serialization failed", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.logger.Debug("request construction failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		// Dashboard not running, unreachable or timed out.
		s.logger.Debug("event delivery failed", "endpoint", s.endpoint, "error", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	ok := resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated
	if !ok {
		s.logger.Debug("event rejected", "endpoint", s.endpoint, "status", resp.StatusCode)
	}
	return ok
}
