package discordutil

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFieldStopsAtLimit(t *testing.T) {
	embed := &discordgo.MessageEmbed{}
	for range MAX_EMBED_FIELDS {
		require.True(t, AddField(embed, "name", "value", true))
	}

	assert.False(t, AddField(embed, "overflow", "value", true))
	assert.Len(t, embed.Fields, MAX_EMBED_FIELDS)
}

func TestTruncateValue(t *testing.T) {
	assert.Equal(t, "short", TruncateValue("short", 10))

	long := strings.Repeat("a", 20)
	out := TruncateValue(long, 10)
	assert.Equal(t, 10, len([]rune(out)))
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestNewEmbedFieldTruncates(t *testing.T) {
	field := NewEmbedField("n", strings.Repeat("x", MAX_FIELD_VALUE_LEN+50), false)
	assert.Len(t, []rune(field.Value), MAX_FIELD_VALUE_LEN)
}

func TestOptionHelpers(t *testing.T) {
	data := discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "name", Type: discordgo.ApplicationCommandOptionString, Value: "Rome"},
			{Name: "id", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(0)},
		},
	}

	opts := GetOptions(data)
	assert.Equal(t, "Rome", OptionString(opts, "name"))
	assert.Equal(t, "", OptionString(opts, "missing"))

	name := OptionStringPtr(opts, "name")
	require.NotNil(t, name)
	assert.Equal(t, "Rome", *name)
	assert.Nil(t, OptionStringPtr(opts, "missing"))

	id := OptionIntPtr(opts, "id")
	require.NotNil(t, id)
	assert.Equal(t, 0, *id)
	assert.Nil(t, OptionIntPtr(opts, "missing"))
}

func TestGetInteractionAuthor(t *testing.T) {
	dm := &discordgo.Interaction{User: &discordgo.User{Username: "dm"}}
	assert.Equal(t, "dm", GetInteractionAuthor(dm).Username)

	guild := &discordgo.Interaction{Member: &discordgo.Member{User: &discordgo.User{Username: "member"}}}
	assert.Equal(t, "member", GetInteractionAuthor(guild).Username)

	assert.Nil(t, GetInteractionAuthor(&discordgo.Interaction{}))
}

func TestEmbedSize(t *testing.T) {
	embed := &discordgo.MessageEmbed{
		Title:       "ab",
		Description: "é",
		Fields:      []*discordgo.MessageEmbedField{{Name: "n", Value: "vv"}},
		Footer:      &discordgo.MessageEmbedFooter{Text: "foot"},
		Author:      &discordgo.MessageEmbedAuthor{Name: "me"},
	}

	assert.Equal(t, 2+1+1+2+4+2, EmbedSize(embed))
	assert.Zero(t, EmbedSize(&discordgo.MessageEmbed{}))
}

func TestReplyEphemeralFreshInteraction(t *testing.T) {
	s, fake := newFakeSession(t, nil)

	require.NoError(t, ReplyEphemeral(s, testInteraction(), "only you"))

	calls := fake.Calls()
	require.Len(t, calls, 1)
	assert.True(t, strings.HasSuffix(calls[0].Path, "/callback"))

	data := calls[0].Body["data"].(map[string]any)
	assert.Equal(t, float64(discordgo.MessageFlagsEphemeral), data["flags"])
	assert.Equal(t, "only you", data["content"])
}

func TestReplyEphemeralDeferredNeverEditsPublicResponse(t *testing.T) {
	s, fake := newFakeSession(t, alreadyAcknowledged)

	require.NoError(t, ReplyEphemeral(s, testInteraction(), "only you"))

	calls := fake.Calls()
	require.Len(t, calls, 2)
	for _, c := range calls {
		assert.NotEqual(t, http.MethodPatch, c.Method, c.Path)
	}

	followup := calls[1]
	assert.Equal(t, http.MethodPost, followup.Method)
	assert.True(t, strings.HasSuffix(followup.Path, "/webhooks/2/tok"), followup.Path)
	assert.Equal(t, float64(discordgo.MessageFlagsEphemeral), followup.Body["flags"])
	assert.Equal(t, "only you", followup.Body["content"])
}

func TestReplaceDeferredEphemeral(t *testing.T) {
	s, fake := newFakeSession(t, alreadyAcknowledged)

	require.NoError(t, ReplaceDeferredEphemeral(s, testInteraction(), "only you"))

	calls := fake.Calls()
	require.Len(t, calls, 2)

	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.True(t, strings.HasSuffix(calls[0].Path, "/messages/@original"), calls[0].Path)

	assert.Equal(t, http.MethodPost, calls[1].Method)
	assert.Equal(t, float64(discordgo.MessageFlagsEphemeral), calls[1].Body["flags"])
}
