package requests

import (
	"io"
	"net/http"
)

// The parts of a response we care about once it has been fully read.
// StatusCode may be anything, callers decide what counts as a failure.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Reads the response body all at once with [io.ReadAll] and closes it.
//
// Unlike the body readers in most wrappers, no status check happens here. Error bodies are still useful
// for diagnostics so they are returned as-is.
func ReadResponseBody(r *http.Response) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
