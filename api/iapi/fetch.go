package iapi

import (
	"context"
	"errors"
)

// Single entity lookups by name, ID or UUID.
type Fetch struct {
	req *requester
}

// Identifies a player. Empty strings are treated as not given.
type PlayerQuery struct {
	UUID  string // Takes precedence over everything else.
	Name  string // Used when UUID is empty.
	Query string // Either a UUID or a name. Tried as a UUID first, then as a name if the API rejects it.
}

// Identifies a nation or town. Both fields are sent when set, the API prioritises ID.
type EntityQuery struct {
	Name *string
	ID   *int
}

// Fetches a player by UUID, name or a query that may be either.
//
// If the API responds to a query with a bad request when treating it as a UUID, a second request is made
// treating it as a name. Any other error is returned straight away. When the query is empty, a
// [BadRequestError] is returned without sending anything.
func (f *Fetch) Player(ctx context.Context, q PlayerQuery) (Player, error) {
	var fields map[string]any
	var err error

	switch {
	case q.UUID != "":
		fields, err = f.req.getObject(ctx, ENDPOINT_FETCH_PLAYER, Params{"uuid": q.UUID})
	case q.Name != "":
		fields, err = f.req.getObject(ctx, ENDPOINT_FETCH_PLAYER, Params{"username": q.Name})
	case q.Query != "":
		fields, err = f.req.getObject(ctx, ENDPOINT_FETCH_PLAYER, Params{"uuid": q.Query})

		var badReq *BadRequestError
		if errors.As(err, &badReq) {
			f.req.log.WithField("query", q.Query).Debug("player query is not a UUID, retrying as username")
			fields, err = f.req.getObject(ctx, ENDPOINT_FETCH_PLAYER, Params{"username": q.Query})
		}
	default:
		return Player{}, &BadRequestError{}
	}

	if err != nil {
		return Player{}, err
	}

	return NewPlayer(fields), nil
}

// Fetches a nation by name and/or ID in a single request.
func (f *Fetch) Nation(ctx context.Context, q EntityQuery) (Nation, error) {
	fields, err := f.req.getObject(ctx, ENDPOINT_FETCH_NATION, Params{"name": q.Name, "id": q.ID})
	if err != nil {
		return Nation{}, err
	}

	return NewNation(fields), nil
}

// Fetches a town by name and/or ID in a single request.
func (f *Fetch) Town(ctx context.Context, q EntityQuery) (Town, error) {
	fields, err := f.req.getObject(ctx, ENDPOINT_FETCH_TOWN, Params{"name": q.Name, "id": q.ID})
	if err != nil {
		return Town{}, err
	}

	return NewTown(fields), nil
}
