// Package gateway performs the single request/response exchange with
// the HomeWise Apps Script endpoint.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lucianookdp/HomeWise/internal/common"
)

// CallTimeout bounds every exchange with the endpoint.
const CallTimeout = 12 * time.Second

// Kind tags the outcome of a Call.
type Kind int

const (
	// KindOK means the endpoint answered success:true.
	KindOK Kind = iota
	// KindConfig means no endpoint is configured; no I/O was attempted.
	KindConfig
	// KindTimeout means the call exceeded CallTimeout and was aborted.
	KindTimeout
	// KindConnectivity means the request failed at the transport level.
	KindConnectivity
	// KindMalformed means the response body was not JSON.
	KindMalformed
	// KindRemote means the endpoint answered success:false.
	KindRemote
)

// Result is the normalized outcome of one exchange. Call never fails
// with a Go error; every failure path resolves to a tagged Result.
type Result struct {
	Message string
	Person  string
	Kind    Kind
	Success bool
}

// Err converts a failed Result into a user-facing error. Successful
// results return nil. Remote messages go through Friendly so the user
// sees known failures in plain words.
func (r Result) Err() error {
	switch r.Kind {
	case KindOK:
		return nil
	case KindConfig:
		return common.NewUserError(r.Message, common.ErrMissingConfig)
	case KindTimeout:
		return common.NewUserError(r.Message, common.ErrTimeout)
	case KindConnectivity:
		return common.NewUserError(r.Message, common.ErrConnectivity)
	case KindMalformed:
		return common.NewUserError(r.Message, common.ErrMalformedResponse)
	case KindRemote:
		return common.NewUserError(Friendly(r.Message), common.ErrRemote)
	default:
		return common.NewUserError(Friendly(r.Message), common.ErrRemote)
	}
}

type apiResponse struct {
	Message string `json:"message"`
	Person  string `json:"person"`
	Success bool   `json:"success"`
}

// Client talks to the single configured endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	timeout    time.Duration
}

// NewClient creates a gateway client for the given endpoint URL. An
// empty URL is allowed; calls then fail with a configuration Result.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		timeout:    CallTimeout,
		httpClient: &http.Client{},
	}
}

// Call POSTs the payload as JSON text and normalizes every outcome
// into a Result. The body is declared text/plain because the Apps
// Script endpoint reads a raw body, not a structured form post.
func (c *Client) Call(ctx context.Context, payload any) Result {
	if c.endpoint == "" {
		return Result{Kind: KindConfig, Message: msgNoEndpoint}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Kind: KindConnectivity, Message: msgConnFailure}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Kind: KindConnectivity, Message: msgConnFailure}
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportFailure(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.transportFailure(err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		slog.Debug("endpoint returned non-JSON body", "status", resp.StatusCode, "bytes", len(raw))
		return Result{Kind: KindMalformed, Message: msgBadResponse}
	}

	if !parsed.Success {
		return Result{Kind: KindRemote, Message: parsed.Message}
	}
	return Result{Kind: KindOK, Success: true, Person: parsed.Person, Message: parsed.Message}
}

// transportFailure distinguishes the timeout abort from every other
// transport-level failure.
func (c *Client) transportFailure(err error) Result {
	if errors.Is(err, context.DeadlineExceeded) {
		slog.Debug("endpoint call timed out", "timeout", c.timeout)
		return Result{Kind: KindTimeout, Message: msgTimeout}
	}
	slog.Debug("endpoint call failed", "error", err)
	return Result{Kind: KindConnectivity, Message: msgConnFailure}
}
