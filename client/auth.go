package client

import (
	"encoding/base64"
	"net/http"
)

// Credential is an S4 API key pair resolved once into the literal HTTP
// Basic authorization value sent with every request. It is immutable
// for the lifetime of the client.
type Credential struct {
	header string
}

// NewCredential precomputes the authorization value for the given key
// pair: "Basic " + base64(keyID:keySecret).
func NewCredential(keyID, keySecret string) Credential {
	raw := keyID + ":" + keySecret
	return Credential{header: "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))}
}

// HeaderValue returns the precomputed Authorization header value.
func (c Credential) HeaderValue() string {
	return c.header
}

// apply attaches the authorization header to an outgoing request.
func (c Credential) apply(req *http.Request) {
	req.Header.Set("Authorization", c.header)
}
