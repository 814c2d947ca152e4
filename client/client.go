package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/google/uuid"

	"github.com/ontotext/s4-go/logger"
)

// Client issues authenticated requests against the S4 REST API. All
// state is fixed at construction, so a single instance may serve
// overlapping requests from concurrent callers.
type Client struct {
	httpClient   *http.Client
	streamClient *http.Client
	config       Config
	cred         Credential
	baseURL      *url.URL
	decoders     []ErrorDecoder
	log          *logger.Logger
}

// New creates a client from the given configuration. The authorization
// value is computed exactly once here and reused for every request,
// redirect replays included.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, NewConfigurationError(fmt.Sprintf("malformed base URL %q", cfg.BaseURL), err)
	}
	if !base.IsAbs() {
		return nil, NewConfigurationError(fmt.Sprintf("base URL %q is not absolute", cfg.BaseURL), nil)
	}

	transport := cfg.Transport
	streamTransport := cfg.Transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.TLS != nil {
			tlsCfg, err := cfg.TLS.Build()
			if err != nil {
				return nil, NewConfigurationError("invalid TLS configuration", err)
			}
			if tlsCfg != nil {
				t.TLSClientConfig = tlsCfg
			}
		}
		transport = t

		// The stream path hands the body through exactly as received,
		// so the transport must not negotiate or undo compression.
		st := t.Clone()
		st.DisableCompression = true
		streamTransport = st
	}

	// Redirects are followed manually so the authorization header
	// survives the hop.
	checkRedirect := func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	decoders := cfg.ErrorDecoders
	if decoders == nil {
		decoders = defaultErrorDecoders()
	}

	return &Client{
		httpClient: &http.Client{
			Transport:     transport,
			Timeout:       cfg.Timeout,
			CheckRedirect: checkRedirect,
		},
		// No global timeout on the stream path: the caller's context
		// bounds the transfer.
		streamClient: &http.Client{
			Transport:     streamTransport,
			CheckRedirect: checkRedirect,
		},
		config:   cfg,
		cred:     NewCredential(cfg.KeyID, cfg.KeySecret),
		baseURL:  base,
		decoders: decoders,
		log:      log.WithComponent("client"),
	}, nil
}

// BaseURL returns a copy of the resolved base address.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// RequestForStream issues a request and returns the raw response body.
// The stream is handed over exactly as received (no gzip inflation):
// the caller owns interpreting and closing it. A 204 yields a nil
// stream and nil error.
//
// Unlike the typed path, a redirect here replays the original method
// and body. The asymmetry between the two paths is intentional and
// preserved for compatibility with existing integrations.
func (c *Client) RequestForStream(ctx context.Context, target, method string, body any, headers map[string]string) (io.ReadCloser, error) {
	encoded, err := encodeBody(body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("encode request body: %w", err))
	}

	log := c.requestLogger()
	for hop := 0; ; hop++ {
		if hop > c.config.MaxRedirects {
			return nil, NewTooManyRedirectsError(c.config.MaxRedirects)
		}

		log.Debug("dispatch", logger.Fields(
			logger.FieldMethod, method,
			logger.FieldTarget, target,
			logger.FieldHop, hop,
		))
		resp, err := c.send(ctx, c.streamClient, method, target, encoded, headers, false)
		if err != nil {
			return nil, NewTransportError(err)
		}

		switch {
		case resp.StatusCode == http.StatusNoContent:
			drainBody(resp.Body)
			return nil, nil
		case resp.StatusCode >= 400:
			return nil, c.readError(resp)
		case resp.StatusCode >= 300:
			location, err := redirectTarget(resp)
			if err != nil {
				return nil, err
			}
			target = location
		default:
			return resp.Body, nil
		}
	}
}

// do runs the typed request pipeline and returns the inflated response
// bytes, or nil for a 204. A redirect is replayed as a plain GET: the
// Location targets the API hands out point at result resources, not at
// the original operation, and the service's other SDKs behave the same
// way.
func (c *Client) do(ctx context.Context, target, method string, body any, headers map[string]string) ([]byte, error) {
	encoded, err := encodeBody(body)
	if err != nil {
		return nil, NewTransportError(fmt.Errorf("encode request body: %w", err))
	}

	log := c.requestLogger()
	for hop := 0; ; hop++ {
		if hop > c.config.MaxRedirects {
			return nil, NewTooManyRedirectsError(c.config.MaxRedirects)
		}

		log.Debug("dispatch", logger.Fields(
			logger.FieldMethod, method,
			logger.FieldTarget, target,
			logger.FieldHop, hop,
		))
		resp, err := c.send(ctx, c.httpClient, method, target, encoded, headers, true)
		if err != nil {
			return nil, NewTransportError(err)
		}

		switch {
		case resp.StatusCode == http.StatusNoContent:
			drainBody(resp.Body)
			return nil, nil
		case resp.StatusCode >= 400:
			return nil, c.readError(resp)
		case resp.StatusCode >= 300:
			location, err := redirectTarget(resp)
			if err != nil {
				return nil, err
			}
			target, method, encoded = location, http.MethodGet, nil
		default:
			reader, err := bodyReader(resp)
			if err != nil {
				drainBody(resp.Body)
				return nil, NewTransportError(fmt.Errorf("open response body: %w", err))
			}
			data, err := io.ReadAll(reader)
			drainBody(resp.Body)
			if err != nil {
				return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
			}
			return data, nil
		}
	}
}

// send issues a single HTTP exchange. Redirects are never followed here.
func (c *Client) send(ctx context.Context, hc *http.Client, method, target string, body []byte, extra map[string]string, acceptGzip bool) (*http.Response, error) {
	u, err := c.baseURL.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("resolve target %q: %w", target, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	if acceptGzip {
		// Advertise gzip explicitly so the transport leaves inflation
		// to the pipeline instead of doing it transparently.
		req.Header.Set("Accept-Encoding", "gzip")
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	applyHeaders(req, c.config.Headers)
	applyHeaders(req, extra)

	// Mandatory header, applied last so nothing can override it.
	c.cred.apply(req)

	return hc.Do(req)
}

// readError consumes an error response and converts it into the unified
// client failure. It never returns nil and always releases the body,
// even when reading the error body itself fails.
func (c *Client) readError(resp *http.Response) error {
	defer drainBody(resp.Body)

	reader, err := bodyReader(resp)
	if err != nil {
		return newReadError(resp.StatusCode, err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return newReadError(resp.StatusCode, err)
	}

	contentType := resp.Header.Get("Content-Type")
	for _, d := range c.decoders {
		if !d.Match(contentType) {
			continue
		}
		payload, err := d.Decode(data)
		if err != nil {
			return newReadError(resp.StatusCode, err)
		}
		return NewServerError(resp.StatusCode, payload)
	}
	return NewServerError(resp.StatusCode, nil)
}

// requestLogger tags the client logger with a fresh id covering the
// whole redirect chain of one logical call.
func (c *Client) requestLogger() *logger.Logger {
	return c.log.WithFields(map[string]interface{}{
		logger.FieldRequestID: uuid.NewString(),
	})
}

// redirectTarget extracts the Location of a 3xx response after draining
// the current body so the connection is released before the next hop.
func redirectTarget(resp *http.Response) (string, error) {
	location := resp.Header.Get("Location")
	drainBody(resp.Body)
	if location == "" {
		return "", NewTransportError(fmt.Errorf("redirect response %d without Location header", resp.StatusCode))
	}
	return location, nil
}

// applyHeaders sets headers in sorted key order so requests are
// reproducible under test.
func applyHeaders(req *http.Request, headers map[string]string) {
	if len(headers) == 0 {
		return
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		req.Header.Set(k, headers[k])
	}
}
