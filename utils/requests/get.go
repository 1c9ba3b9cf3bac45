package requests

import (
	"context"
	"fmt"
	"net/http"
)

// Sends a GET request to url using client, attaching every header in header.
//
// An error is only returned if the request could not be completed, i.e. network failure, cancellation
// or an unreadable body. Any response that reached us is returned, whatever its status code.
func Get(ctx context.Context, client *http.Client, url string, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}

	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	response, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error during GET request: %w", err)
	}

	body, err := ReadResponseBody(response)
	if err != nil {
		return nil, fmt.Errorf("error reading GET response body: %w", err)
	}

	return &Response{
		StatusCode: response.StatusCode,
		Status:     response.Status,
		Header:     response.Header,
		Body:       body,
	}, nil
}
