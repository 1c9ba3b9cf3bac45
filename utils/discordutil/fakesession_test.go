package discordutil

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type discordCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// Stands in for the Discord REST API by answering at the transport level.
type fakeDiscord struct {
	mu      sync.Mutex
	calls   []discordCall
	respond func(r *http.Request) int
}

func (f *fakeDiscord) RoundTrip(r *http.Request) (*http.Response, error) {
	call := discordCall{Method: r.Method, Path: r.URL.Path}
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &call.Body)
	}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	status := http.StatusOK
	if f.respond != nil {
		status = f.respond(r)
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader("{}")),
		Request:    r,
	}, nil
}

func (f *fakeDiscord) Calls() []discordCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]discordCall(nil), f.calls...)
}

func newFakeSession(t *testing.T, respond func(r *http.Request) int) (*discordgo.Session, *fakeDiscord) {
	t.Helper()

	fake := &fakeDiscord{respond: respond}
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	s.Client = &http.Client{Transport: fake}

	return s, fake
}

// Discord rejects a second initial response once the interaction was acknowledged.
func alreadyAcknowledged(r *http.Request) int {
	if strings.HasSuffix(r.URL.Path, "/callback") {
		return http.StatusBadRequest
	}

	return http.StatusOK
}

func testInteraction() *discordgo.Interaction {
	return &discordgo.Interaction{ID: "1", AppID: "2", Token: "tok"}
}
