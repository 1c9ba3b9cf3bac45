package iapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"
)

const testKey = "test-key"

// Records every request made against a mock Imperator server.
type requestLog struct {
	mu   sync.Mutex
	reqs []recordedRequest
}

type recordedRequest struct {
	Path  string
	Query url.Values
	Key   string
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reqs = append(l.reqs, recordedRequest{
		Path:  r.URL.Path,
		Query: r.URL.Query(),
		Key:   r.Header.Get(API_KEY_HEADER),
	})
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]recordedRequest(nil), l.reqs...)
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return logger
}

// Starts a mock server with handler and returns a client pointed at it, plus the log of requests it received.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *requestLog) {
	t.Helper()

	reqLog := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog.add(r)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := New(testKey,
		WithBaseURL(server.URL+"/"),
		WithHTTPClient(server.Client()),
		WithLogger(quietLogger()),
	)

	return client, reqLog
}

func respond(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, body)
	}
}
