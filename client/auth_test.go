package client

import (
	"net/http"
	"testing"
)

func TestNewCredential_HeaderValue(t *testing.T) {
	cred := NewCredential("abc", "def")
	// base64("abc:def")
	if got, want := cred.HeaderValue(), "Basic YWJjOmRlZg=="; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewCredential_Deterministic(t *testing.T) {
	a := NewCredential("key-id", "key-secret")
	b := NewCredential("key-id", "key-secret")
	if a.HeaderValue() != b.HeaderValue() {
		t.Errorf("same inputs must produce the same header: %q vs %q", a.HeaderValue(), b.HeaderValue())
	}
}

func TestCredential_Apply(t *testing.T) {
	cred := NewCredential("abc", "def")
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	cred.apply(req)
	if got := req.Header.Get("Authorization"); got != cred.HeaderValue() {
		t.Errorf("got %q, want %q", got, cred.HeaderValue())
	}
}

func TestCredential_ApplyOverridesExisting(t *testing.T) {
	cred := NewCredential("abc", "def")
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("Authorization", "Bearer stale")
	cred.apply(req)
	if got := req.Header.Get("Authorization"); got != cred.HeaderValue() {
		t.Errorf("got %q, want %q", got, cred.HeaderValue())
	}
}
