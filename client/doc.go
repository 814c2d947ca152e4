// Package client implements the S4 request/response pipeline:
// authenticated dispatch, manual redirect following, gzip-aware
// decoding of success and error bodies, and a unified error taxonomy.
//
// A Client is immutable after construction and safe for concurrent use.
// The authorization value is computed once and attached to every
// outgoing request, including redirect replays.
//
// # Basic Usage
//
//	c, err := client.New(client.Config{
//	    KeyID:     "key-id",
//	    KeySecret: "key-secret",
//	})
//
//	status, err := client.Get[StatusReport](ctx, c, "status", nil)
//
// # Streaming
//
//	stream, err := c.RequestForStream(ctx, "result/42", http.MethodGet, nil, nil)
//	if stream != nil {
//	    defer stream.Close()
//	}
//
// Failures are reported as *Error with a Kind of Transport, Server,
// Configuration, or TooManyRedirects; server failures carry the HTTP
// status code and, when the body was decodable, a structured payload.
package client
