package iapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"imperator/utils/requests"

	log "github.com/sirupsen/logrus"
)

// Sends requests to the Imperator API on behalf of a Client and its Fetch.
// Nothing here changes after construction, so it can be shared freely between goroutines.
type requester struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *log.Logger
}

// Sends a single GET request to endpoint and returns the body once it is known to be valid JSON.
//
// Non-2xx responses become one of the status error types, anything that stops us getting a
// response at all becomes a [TransportError]. No retries happen here.
func (r *requester) get(ctx context.Context, endpoint Endpoint, params Params) (json.RawMessage, error) {
	url := r.baseURL + "/" + endpoint
	if query := params.Values().Encode(); query != "" {
		url += "?" + query
	}

	header := http.Header{}
	header.Set(API_KEY_HEADER, r.apiKey)
	header.Set("Accept", "application/json")

	start := time.Now()
	res, err := requests.Get(ctx, r.http, url, header)
	fields := log.Fields{"endpoint": endpoint, "took": time.Since(start)}
	if err != nil {
		r.log.WithFields(fields).WithError(err).Debug("imperator request failed")
		return nil, &TransportError{Op: "get", Endpoint: endpoint, Err: err}
	}

	fields["status"] = res.StatusCode
	r.log.WithFields(fields).Debug("imperator request completed")

	if err := errorFromStatus(endpoint, res.StatusCode, res.Body); err != nil {
		return nil, err
	}

	if !json.Valid(res.Body) {
		return nil, &TransportError{Op: "decode", Endpoint: endpoint, Err: errors.New("response body is not valid JSON")}
	}

	return res.Body, nil
}

// Same as get, but the response must be a single JSON object.
func (r *requester) getObject(ctx context.Context, endpoint Endpoint, params Params) (map[string]any, error) {
	raw, err := r.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	return decodeObject(endpoint, raw)
}

func decodeObject(endpoint Endpoint, raw json.RawMessage) (map[string]any, error) {
	var fields map[string]any
	if err := decodeJSON(raw, &fields); err != nil {
		return nil, &TransportError{Op: "decode", Endpoint: endpoint, Err: err}
	}
	if fields == nil {
		return nil, &TransportError{Op: "decode", Endpoint: endpoint, Err: errors.New("expected a JSON object, got null")}
	}

	return fields, nil
}

func decodeArray(endpoint Endpoint, raw json.RawMessage) ([]map[string]any, error) {
	var items []map[string]any
	if err := decodeJSON(raw, &items); err != nil {
		return nil, &TransportError{Op: "decode", Endpoint: endpoint, Err: err}
	}

	for i, item := range items {
		if item == nil {
			return nil, &TransportError{Op: "decode", Endpoint: endpoint, Err: fmt.Errorf("element %d is null, expected a JSON object", i)}
		}
	}

	return items, nil
}

// Numbers are kept as [json.Number] so values come back out exactly as the API sent them.
func decodeJSON(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	return dec.Decode(v)
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
