package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
)

// ClientOptions configures the HTTP client shared by the adapters.
type ClientOptions struct {
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
	// HTTPClient is used as the underlying client when set,
	// e.g. to carry an OAuth2 transport.
	HTTPClient *http.Client
}

// NewRESTClient creates the resty client the adapters send their requests through.
// Retries on network errors, 429 and 5xx responses are resty's business;
// the adapters themselves never retry.
func NewRESTClient(opts ClientOptions) *resty.Client {
	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New()
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.Retries > 0 {
		client.SetRetryCount(opts.Retries)
		if opts.RetryWait > 0 {
			client.SetRetryWaitTime(opts.RetryWait)
		}
		client.AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil {
				return false
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	client.SetHeader("Accept", "application/json")
	return client
}

// NewBearerHTTPClient returns an http.Client that authenticates with a static
// bearer token, or nil when token is empty.
func NewBearerHTTPClient(token string) *http.Client {
	if token == "" {
		return nil
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &http.Client{
		Transport: &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: ts,
		},
	}
}

// getJSON sends a GET request and decodes a successful JSON response into out.
func getJSON(ctx context.Context, client *resty.Client, source, url string, page int, params map[string]string, headers map[string]string, out any) error {
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return &TransportError{Source: source, Page: page, Err: err}
	}
	if resp.IsError() {
		return &TransportError{
			Source:     source,
			Page:       page,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("unexpected status: %s", resp.Status()),
		}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &TransportError{Source: source, Page: page, StatusCode: resp.StatusCode(), Err: fmt.Errorf("parse response: %w", err)}
	}
	return nil
}
