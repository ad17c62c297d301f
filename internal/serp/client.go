package serp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
)

// Failure classes for a single term. Callers can errors.Is against these
// to report why a term produced no rows without aborting the batch.
var (
	// ErrStatus marks a non-200 answer from the API.
	ErrStatus = errors.New("serp: api error status")
	// ErrDecode marks a 200 answer whose body was not valid JSON.
	ErrDecode = errors.New("serp: undecodable response body")
	// ErrNoResults marks a successful call that yielded no parseable
	// hostname.
	ErrNoResults = errors.New("serp: no organic results")
)

// Searcher is the single-term lookup the batch layer fans out over.
type Searcher interface {
	Live(ctx context.Context, term string) (Tally, error)
}

type Client struct {
	restyClient *resty.Client
	payload     Payload
	log         *slog.Logger
}

// NewClient builds a SERP API client for the given endpoint. The payload
// acts as the immutable template for every term queried through this
// client.
func NewClient(endpoint, apiKey string, payload Payload, log *slog.Logger) *Client {
	client := resty.New()
	client.SetBaseURL(endpoint)
	client.SetAuthToken(apiKey)
	client.SetHeader("Accept", "application/json")
	if log == nil {
		log = slog.Default()
	}
	return &Client{restyClient: client, payload: payload, log: log}
}

// Live issues one live SERP request for term and returns the hostname
// tally of its top organic results. The tally may legitimately be empty.
// The template payload is copied by value, so concurrent calls never
// observe each other's term.
func (c *Client) Live(ctx context.Context, term string) (Tally, error) {
	payload := c.payload
	payload.Query = term

	c.log.DebugContext(ctx, "querying serp api", "term", term)

	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(liveRequest{Data: payload}).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("serp: request for %q: %w", term, err)
	}

	if resp.IsError() {
		if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
			return nil, fmt.Errorf(
				"%w: %s (configure your key using: serptally config set-key <YOUR_API_KEY>)",
				ErrStatus, resp.Status(),
			)
		}
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status())
	}

	var body liveResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return tallyOrganic(&body), nil
}
