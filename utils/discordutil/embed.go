package discordutil

import (
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	DEFAULT   = 0x000000
	AQUA      = 0x1abc9c
	GREEN     = 0x2ecc71
	BLUE      = 0x3498db
	GOLD      = 0xf1c40f
	ORANGE    = 0xe67e22
	RED       = 0xe74c3c
	GREY      = 0x95a5a6
	DARK_AQUA = 0x11806a
	DARK_GOLD = 0xc27c0e
	BLURPLE   = 0x7289da
)

// Discord rejects embeds exceeding these.
const (
	MAX_EMBED_FIELDS      = 25
	MAX_FIELD_VALUE_LEN   = 1024
	MAX_EMBEDS_PER_MSG    = 10
	MAX_EMBED_DESCRIPTION = 4096

	// Combined across every embed in one message.
	MAX_MESSAGE_EMBED_CHARS = 6000
)

func NewEmbedField(name string, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  TruncateValue(value, MAX_FIELD_VALUE_LEN),
		Inline: inline,
	}
}

// Appends a field unless the embed is already at the field limit. Reports whether the field was added.
func AddField(embed *discordgo.MessageEmbed, name string, value string, inline bool) bool {
	if len(embed.Fields) >= MAX_EMBED_FIELDS {
		return false
	}

	embed.Fields = append(embed.Fields, NewEmbedField(name, value, inline))
	return true
}

// Counts the characters of embed the way Discord does against MAX_MESSAGE_EMBED_CHARS.
func EmbedSize(embed *discordgo.MessageEmbed) int {
	n := utf8.RuneCountInString(embed.Title) + utf8.RuneCountInString(embed.Description)
	for _, f := range embed.Fields {
		n += utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
	}
	if embed.Footer != nil {
		n += utf8.RuneCountInString(embed.Footer.Text)
	}
	if embed.Author != nil {
		n += utf8.RuneCountInString(embed.Author.Name)
	}

	return n
}

// Cuts s down to at most max runes, marking the cut with an ellipsis.
func TruncateValue(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

func StringOption(name, description string, minLen *int, maxLen int) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		MinLength:   minLen,
		MaxLength:   maxLen,
		Required:    false,
	}
}

func RequiredStringOption(name, description string, minLen, maxLen int) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		MinLength:   &minLen,
		MaxLength:   maxLen,
		Required:    true,
	}
}

func IntegerOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Options of a slash command keyed by name, so handlers don't have to loop over them.
type OptionMap = map[string]*discordgo.ApplicationCommandInteractionDataOption

func GetOptions(data discordgo.ApplicationCommandInteractionData) OptionMap {
	opts := make(OptionMap, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt
	}

	return opts
}

// Returns the string value of the named option, or "" when it was not supplied.
func OptionString(opts OptionMap, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}

	return ""
}

// Returns nil when the named option was not supplied.
func OptionStringPtr(opts OptionMap, name string) *string {
	opt, ok := opts[name]
	if !ok {
		return nil
	}

	v := opt.StringValue()
	return &v
}

// Returns nil when the named option was not supplied.
func OptionIntPtr(opts OptionMap, name string) *int {
	opt, ok := opts[name]
	if !ok {
		return nil
	}

	v := int(opt.IntValue())
	return &v
}
