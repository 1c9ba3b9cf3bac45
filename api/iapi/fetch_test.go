package iapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notchUUID = "069a79f4-44e9-4726-a5be-fca90e38aaf5"

func TestFetchPlayerWithoutIdentifiers(t *testing.T) {
	client, reqLog := newTestClient(t, respond(http.StatusOK, `{}`))

	_, err := client.Fetch().Player(context.Background(), PlayerQuery{})
	require.Error(t, err)
	assert.IsType(t, &BadRequestError{}, err)
	assert.ErrorIs(t, err, ErrImperator)
	assert.Empty(t, reqLog.all())
}

func TestFetchPlayerPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		query         PlayerQuery
		expectedParam string
		expectedValue string
	}{
		{"uuid only", PlayerQuery{UUID: notchUUID}, "uuid", notchUUID},
		{"name only", PlayerQuery{Name: "Notch"}, "username", "Notch"},
		{"uuid over name", PlayerQuery{UUID: notchUUID, Name: "Notch"}, "uuid", notchUUID},
		{"uuid over query", PlayerQuery{UUID: notchUUID, Query: "jeb_"}, "uuid", notchUUID},
		{"name over query", PlayerQuery{Name: "Notch", Query: "jeb_"}, "username", "Notch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, reqLog := newTestClient(t, respond(http.StatusOK, `{"username":"Notch","uuid":"`+notchUUID+`"}`))

			player, err := client.Fetch().Player(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, "Notch", player.Name())

			reqs := reqLog.all()
			require.Len(t, reqs, 1)
			assert.Equal(t, "/fetch/player", reqs[0].Path)
			assert.Len(t, reqs[0].Query, 1)
			assert.Equal(t, tt.expectedValue, reqs[0].Query.Get(tt.expectedParam))
			assert.Equal(t, testKey, reqs[0].Key)
		})
	}
}

func TestFetchPlayerQueryAsUUID(t *testing.T) {
	client, reqLog := newTestClient(t, respond(http.StatusOK, `{"username":"Notch"}`))

	player, err := client.Fetch().Player(context.Background(), PlayerQuery{Query: notchUUID})
	require.NoError(t, err)
	assert.Equal(t, "Notch", player.Name())

	reqs := reqLog.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, notchUUID, reqs[0].Query.Get("uuid"))
}

func TestFetchPlayerQueryFallsBackToName(t *testing.T) {
	client, reqLog := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("uuid") {
			respond(http.StatusBadRequest, `{"error":"invalid uuid"}`)(w, r)
			return
		}

		respond(http.StatusOK, `{"username":"Notch"}`)(w, r)
	})

	player, err := client.Fetch().Player(context.Background(), PlayerQuery{Query: "Notch"})
	require.NoError(t, err)
	assert.Equal(t, "Notch", player.Name())

	reqs := reqLog.all()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Notch", reqs[0].Query.Get("uuid"))
	assert.Equal(t, "Notch", reqs[1].Query.Get("username"))
	assert.False(t, reqs[1].Query.Has("uuid"))
}

func TestFetchPlayerQueryFallbackError(t *testing.T) {
	client, reqLog := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("uuid") {
			respond(http.StatusBadRequest, `{}`)(w, r)
			return
		}

		respond(http.StatusNotFound, `{}`)(w, r)
	})

	_, err := client.Fetch().Player(context.Background(), PlayerQuery{Query: "Nobody"})
	assert.IsType(t, &NotFoundError{}, err)
	assert.Len(t, reqLog.all(), 2)
}

func TestFetchPlayerQueryNoRetryOnOtherErrors(t *testing.T) {
	tests := []struct {
		code     int
		expected error
	}{
		{http.StatusNotFound, &NotFoundError{}},
		{http.StatusUnauthorized, &AuthenticationError{}},
		{http.StatusTooManyRequests, &RateLimitError{}},
		{http.StatusBadGateway, &ServerError{}},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			client, reqLog := newTestClient(t, respond(tt.code, `{}`))

			_, err := client.Fetch().Player(context.Background(), PlayerQuery{Query: "Notch"})
			assert.IsType(t, tt.expected, err)
			assert.Len(t, reqLog.all(), 1)
		})
	}
}

func TestFetchNationSendsBothParams(t *testing.T) {
	client, reqLog := newTestClient(t, respond(http.StatusOK, `{"name":"Gaul","id":3}`))

	nation, err := client.Fetch().Nation(context.Background(), EntityQuery{
		Name: lo.ToPtr("Gaul"),
		ID:   lo.ToPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "Gaul", nation.Name())
	assert.Equal(t, "3", nation.ID())

	reqs := reqLog.all()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/fetch/nation", reqs[0].Path)
	assert.Equal(t, "Gaul", reqs[0].Query.Get("name"))
	assert.Equal(t, "3", reqs[0].Query.Get("id"))
}

func TestFetchTownOmitsAbsentParams(t *testing.T) {
	tests := []struct {
		name     string
		query    EntityQuery
		expected map[string]string
	}{
		{"name only", EntityQuery{Name: lo.ToPtr("Rome")}, map[string]string{"name": "Rome"}},
		{"id only", EntityQuery{ID: lo.ToPtr(12)}, map[string]string{"id": "12"}},
		{"zero id is sent", EntityQuery{ID: lo.ToPtr(0)}, map[string]string{"id": "0"}},
		{"neither", EntityQuery{}, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, reqLog := newTestClient(t, respond(http.StatusOK, `{"name":"Rome","residents":["Caesar"]}`))

			town, err := client.Fetch().Town(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, []any{"Caesar"}, town.Residents())

			reqs := reqLog.all()
			require.Len(t, reqs, 1)
			assert.Equal(t, "/fetch/town", reqs[0].Path)
			assert.Len(t, reqs[0].Query, len(tt.expected))
			for k, v := range tt.expected {
				assert.Equal(t, v, reqs[0].Query.Get(k))
			}
		})
	}
}

func TestFetchNationNotFound(t *testing.T) {
	client, _ := newTestClient(t, respond(http.StatusNotFound, `{"error":"no nation"}`))

	_, err := client.Fetch().Nation(context.Background(), EntityQuery{Name: lo.ToPtr("Atlantis")})
	assert.IsType(t, &NotFoundError{}, err)
}
