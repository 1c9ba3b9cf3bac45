package iapi

import (
	"context"
	"net/http"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Client for the Imperator API, bound to a single API key.
//
// A Client holds no mutable state and is safe to use from multiple goroutines.
type Client struct {
	req   *requester
	fetch *Fetch
}

type Option func(*requester)

func WithBaseURL(baseURL string) Option {
	return func(r *requester) {
		r.baseURL = baseURL
	}
}

// Uses client for every request. Timeouts and transport configuration belong here,
// the default client has no timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(r *requester) {
		r.http = client
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *requester) {
		r.log = logger
	}
}

// Creates a client without contacting the API. Use [Connect] to also check the key is valid.
func New(apiKey string, opts ...Option) *Client {
	req := &requester{
		baseURL: DEFAULT_BASE_URL,
		apiKey:  apiKey,
		http:    &http.Client{},
		log:     log.StandardLogger(),
	}

	for _, opt := range opts {
		opt(req)
	}

	req.baseURL = trimBaseURL(req.baseURL)

	return &Client{
		req:   req,
		fetch: &Fetch{req: req},
	}
}

// Creates a client and checks the API key by requesting the network status.
// If that request fails for any reason, the error is returned and no client is.
func Connect(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	client := New(apiKey, opts...)
	if _, err := client.Status(ctx); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) Fetch() *Fetch {
	return c.fetch
}

// Gets the status of the Imperator Network, including member information.
func (c *Client) Status(ctx context.Context) (Status, error) {
	fields, err := c.req.getObject(ctx, ENDPOINT_STATUS, nil)
	if err != nil {
		return Status{}, err
	}

	return NewStatus(fields), nil
}

// Lists every one of `entities` (e.g. "players") within `entity` (e.g. a town) that matches id.
//
// Each element is constructed according to its kind. Kinds without a dedicated type come back as [Raw].
func (c *Client) Get(ctx context.Context, entity, entities string, id any) ([]Entity, error) {
	endpoint := listEndpoint(entity, entities)

	raw, err := c.req.get(ctx, endpoint, Params{"id": id})
	if err != nil {
		return nil, err
	}

	items, err := decodeArray(endpoint, raw)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(fields map[string]any, _ int) Entity {
		return ConstructEntity(entities, fields)
	}), nil
}
