package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

type RoundTripper struct {
	Proxied http.RoundTripper
}

// Wraps proxied so every outbound Imperator request is counted and timed.
// A nil proxied falls back to [http.DefaultTransport].
func NewRoundTripper(proxied http.RoundTripper) *RoundTripper {
	if proxied == nil {
		proxied = http.DefaultTransport
	}

	return &RoundTripper{Proxied: proxied}
}

func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := rt.Proxied.RoundTrip(req)
	duration := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(res.StatusCode)
	}

	endpoint := EndpointLabel(req.URL.Path)
	ImperatorRequests.WithLabelValues(endpoint, status).Inc()
	ImperatorRequestDuration.WithLabelValues(endpoint, status).Observe(duration)

	return res, err
}

// Maps a request path onto a fixed set of labels. Ids and names in the path must never
// become label values, otherwise the series count grows with every entity looked up.
func EndpointLabel(path string) string {
	path = strings.Trim(path, "/")

	// List paths end in a caller-supplied entity name, which may look like any other endpoint.
	switch {
	case strings.HasPrefix(path, "get/") || strings.Contains(path, "/get/"):
		return "get"
	case path == "status" || strings.HasSuffix(path, "/status"):
		return "status"
	case strings.HasSuffix(path, "fetch/player"):
		return "fetch/player"
	case strings.HasSuffix(path, "fetch/nation"):
		return "fetch/nation"
	case strings.HasSuffix(path, "fetch/town"):
		return "fetch/town"
	}

	return "unknown"
}
