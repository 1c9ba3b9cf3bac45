package iapi

import (
	"fmt"
	"net/url"
)

// Where requests go when no base URL is configured.
const DEFAULT_BASE_URL = "https://api.imperatornetwork.com"

// Every request carries the API key in this header.
const API_KEY_HEADER = "X-Api-Key"

type Endpoint = string

const (
	ENDPOINT_STATUS       Endpoint = "status"
	ENDPOINT_FETCH_PLAYER Endpoint = "fetch/player"
	ENDPOINT_FETCH_NATION Endpoint = "fetch/nation"
	ENDPOINT_FETCH_TOWN   Endpoint = "fetch/town"
)

// Endpoint listing every one of `entities` (e.g. "players") that belongs to `entity` (e.g. a town name).
func listEndpoint(entity, entities string) Endpoint {
	return fmt.Sprintf("get/%s/in/%s", url.PathEscape(entities), url.PathEscape(entity))
}
