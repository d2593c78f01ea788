// Package interpreter provides duty-text interpretation implementations:
// an HTTP client for an external classification service and a local
// heuristic for the common duty-text shapes.
package interpreter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"tariff-cost/core/types"
	"tariff-cost/internal/errors"
)

// Client calls an external interpretation service over HTTP. The call is
// a single best-effort request; retries and fallbacks are the caller's
// concern (see interpret.WithFallback).
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type interpretRequest struct {
	DutyText string `json:"duty_text"`
}

// Interpret posts the duty text and decodes the structured rate.
func (c *Client) Interpret(ctx context.Context, dutyText string) (types.Interpretation, error) {
	body, err := json.Marshal(interpretRequest{DutyText: dutyText})
	if err != nil {
		return types.Interpretation{}, errors.Interpreter("encode interpretation request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.Interpretation{}, errors.Interpreter("build interpretation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return types.Interpretation{}, errors.Interpreter("call interpretation service", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Interpretation{}, errors.Newf(errors.TypeInterpreter,
			"interpretation service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Interpretation{}, errors.Interpreter("read interpretation response", err)
	}

	var out types.Interpretation
	if err := json.Unmarshal(data, &out); err != nil {
		return types.Interpretation{}, errors.Interpreter("decode interpretation response", err)
	}
	return out, nil
}
