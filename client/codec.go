package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/clbanning/mxj/v2"
	jsoniter "github.com/json-iterator/go"
)

const contentTypeJSON = "application/json"

// jsonAPI is the std-compatible json-iterator instance used for all of
// the SDK's JSON (de)serialization.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// encodeBody serializes a request payload to JSON. A nil payload
// produces no body; []byte payloads are sent as-is (pre-encoded JSON).
// Encoding once up front keeps the body replayable across redirect hops.
func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	default:
		return jsonAPI.Marshal(v)
	}
}

// ErrorDecoder turns an error response body into a structured payload.
// Decoders are matched against the response Content-Type; the first
// match wins, and no match means the failure carries no payload.
type ErrorDecoder interface {
	// Match reports whether this decoder handles the content type.
	Match(contentType string) bool
	// Decode parses the body into a generic document tree.
	Decode(data []byte) (map[string]any, error)
}

// JSONErrorDecoder decodes JSON error bodies into a document tree.
type JSONErrorDecoder struct{}

// Match reports whether the content type names JSON.
func (JSONErrorDecoder) Match(contentType string) bool {
	return strings.Contains(contentType, "json")
}

// Decode parses a JSON document into a tree.
func (JSONErrorDecoder) Decode(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := jsonAPI.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// XMLErrorDecoder decodes XML error bodies into a document tree shaped
// like the JSON one.
type XMLErrorDecoder struct{}

// Match reports whether the content type names XML.
func (XMLErrorDecoder) Match(contentType string) bool {
	return strings.Contains(contentType, "xml")
}

// Decode parses an XML document into a tree.
func (XMLErrorDecoder) Decode(data []byte) (map[string]any, error) {
	tree, err := mxj.NewMapXml(data)
	if err != nil {
		return nil, err
	}
	return map[string]any(tree), nil
}

func defaultErrorDecoders() []ErrorDecoder {
	return []ErrorDecoder{JSONErrorDecoder{}, XMLErrorDecoder{}}
}

// bodyReader returns a reader over the response body, inflating it when
// the response declares Content-Encoding: gzip. Closing the underlying
// body remains the caller's responsibility.
func bodyReader(resp *http.Response) (io.Reader, error) {
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return gzip.NewReader(resp.Body)
	}
	return resp.Body, nil
}

// drainBody fully consumes and closes a response body so the underlying
// connection is released on every exit path.
func drainBody(rc io.ReadCloser) {
	_, _ = io.Copy(io.Discard, rc)
	_ = rc.Close()
}
