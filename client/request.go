package client

import (
	"context"
	"fmt"
	"net/http"
)

// Request issues an API call and decodes the JSON response into T,
// inflating gzip-encoded bodies first. A 204 response yields (nil, nil)
// regardless of T. Redirects are followed internally (see Client.do);
// the caller only ever sees the final outcome.
func Request[T any](ctx context.Context, c *Client, target, method string, body any, headers map[string]string) (*T, error) {
	data, err := c.do(ctx, target, method, body, headers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	out := new(T)
	if len(data) > 0 {
		if err := jsonAPI.Unmarshal(data, out); err != nil {
			return nil, NewTransportError(fmt.Errorf("decode response body: %w", err))
		}
	}
	return out, nil
}

// Get issues a typed GET request.
func Get[T any](ctx context.Context, c *Client, target string, headers map[string]string) (*T, error) {
	return Request[T](ctx, c, target, http.MethodGet, nil, headers)
}

// Post issues a typed POST request with a JSON body.
func Post[T any](ctx context.Context, c *Client, target string, body any, headers map[string]string) (*T, error) {
	return Request[T](ctx, c, target, http.MethodPost, body, headers)
}

// Delete issues a typed DELETE request.
func Delete[T any](ctx context.Context, c *Client, target string, headers map[string]string) (*T, error) {
	return Request[T](ctx, c, target, http.MethodDelete, nil, headers)
}
