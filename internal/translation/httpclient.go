package translation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const userAgent = "translategw/1.0"

func newHTTPClient() *resty.Client {
	return resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)
}

type outboundCall struct {
	provider string
	endpoint string
	query    map[string]string
	headers  map[string]string
}

// get issues one GET and returns the body of a 2xx response. Transport
// errors are reduced to a safe detail: resty and net/http embed the request
// URL in their messages, and the Google key travels in the query string.
func get(ctx context.Context, client *resty.Client, call outboundCall) (RawResponse, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(call.query).
		SetHeaders(call.headers).
		Get(call.endpoint)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return RawResponse{}, timedOut(call.provider)
		}
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return RawResponse{}, unavailable(call.provider, "request cancelled")
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return RawResponse{}, timedOut(call.provider)
		}
		return RawResponse{}, unavailable(call.provider, "request failed")
	}
	if !resp.IsSuccess() {
		return RawResponse{}, unavailable(call.provider, fmt.Sprintf("status %d", resp.StatusCode()))
	}

	return RawResponse{provider: call.provider, body: resp.Body()}, nil
}

func normalizeEndpoint(raw, fallback string) string {
	endpoint := strings.TrimSpace(raw)
	if endpoint == "" {
		return fallback
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	parsed, err := url.Parse(endpoint)
	if err != nil || strings.TrimSpace(parsed.Host) == "" {
		return fallback
	}
	return parsed.String()
}
