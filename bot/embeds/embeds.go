package embeds

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"imperator/api/iapi"
	"imperator/utils"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

var DEFAULT_FOOTER = &discordgo.MessageEmbedFooter{
	Text: "Data provided by the Imperator API",
}

// How many entities are listed on a single embed by ListEmbeds.
const ENTITIES_PER_PAGE = 20

// Longest a single entity line in ListEmbeds may be, numbering aside.
const MAX_LABEL_LEN = 100

const NONE = "None"

// Builds an embed showing every field of e. The API decides which fields exist, so keys are sorted
// to keep the layout stable and anything past the Discord field limit is left out.
func EntityEmbed(title string, e iapi.Entity, colour int) *discordgo.MessageEmbed {
	fields := e.Fields()
	keys := lo.Keys(fields)
	slices.Sort(keys)

	embed := &discordgo.MessageEmbed{
		Title:  title,
		Color:  colour,
		Footer: DEFAULT_FOOTER,
	}

	for _, k := range keys {
		value := FormatValue(fields[k])
		if !discordutil.AddField(embed, utils.TitleCase(k), value, len(value) < 40) {
			embed.Description = fmt.Sprintf("Showing %d of %d fields.", discordutil.MAX_EMBED_FIELDS, len(keys))
			break
		}
	}

	if len(embed.Fields) == 0 {
		embed.Description = "The API returned no fields for this entity."
	}

	return embed
}

func StatusEmbed(status iapi.Status) *discordgo.MessageEmbed {
	return EntityEmbed("Imperator API | Status", status, discordutil.GREEN)
}

func PlayerEmbed(p iapi.Player) *discordgo.MessageEmbed {
	return EntityEmbed(titleFor("Player", p.Name()), p, discordutil.AQUA)
}

func NationEmbed(n iapi.Nation) *discordgo.MessageEmbed {
	return EntityEmbed(titleFor("Nation", n.Name()), n, discordutil.GOLD)
}

func TownEmbed(t iapi.Town) *discordgo.MessageEmbed {
	return EntityEmbed(titleFor("Town", t.Name()), t, discordutil.BLUE)
}

func titleFor(kind, name string) string {
	if name == "" {
		return kind + " Information"
	}

	return fmt.Sprintf("%s Information | `%s`", kind, name)
}

// Splits list into pages of ENTITIES_PER_PAGE, one embed per page. Pages are added while the
// message stays within Discord's embed count and combined character limits, anything past that
// is summarised in the footer of the last page sent.
func ListEmbeds(entity, entities string, id any, list []iapi.Entity) []*discordgo.MessageEmbed {
	title := fmt.Sprintf("%s in %s `%v`", utils.TitleCase(entities), entity, id)
	if len(list) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       title,
			Description: "Nothing found.",
			Color:       discordutil.GREY,
			Footer:      DEFAULT_FOOTER,
		}}
	}

	lines := lo.Map(list, func(e iapi.Entity, idx int) string {
		return fmt.Sprintf("%d. %s", idx+1, discordutil.TruncateValue(entityLabel(e), MAX_LABEL_LEN))
	})

	pages := lo.Chunk(lines, ENTITIES_PER_PAGE)

	// Room for the note is kept back up front, sized for the worst case of nothing being shown.
	budget := discordutil.MAX_MESSAGE_EMBED_CHARS - utf8.RuneCountInString(hiddenNote(len(list)))

	out := make([]*discordgo.MessageEmbed, 0, min(len(pages), discordutil.MAX_EMBEDS_PER_MSG))
	used, shown := 0, 0
	for idx, page := range pages {
		if idx == discordutil.MAX_EMBEDS_PER_MSG {
			break
		}

		embed := &discordgo.MessageEmbed{
			Title:       utils.HumanizedSprintf("%s [%d]", title, len(list)),
			Description: discordutil.TruncateValue(strings.Join(page, "\n"), discordutil.MAX_EMBED_DESCRIPTION),
			Color:       discordutil.DARK_AQUA,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Page %d/%d", idx+1, len(pages)),
			},
		}

		size := discordutil.EmbedSize(embed)
		if idx > 0 && used+size > budget {
			break
		}

		out = append(out, embed)
		used += size
		shown += len(page)
	}

	if hidden := len(list) - shown; hidden > 0 {
		out[len(out)-1].Footer.Text += hiddenNote(hidden)
	}

	return out
}

func hiddenNote(hidden int) string {
	return utils.HumanizedSprintf(" | %d more not shown", hidden)
}

// Short one-line label for an entity within a list.
func entityLabel(e iapi.Entity) string {
	var name, id string
	switch v := e.(type) {
	case iapi.Player:
		name, id = v.Name(), v.UUID()
	case iapi.Town:
		name, id = v.Name(), v.ID()
	case iapi.Nation:
		name, id = v.Name(), v.ID()
	default:
		fields := e.Fields()
		name, _ = fields["name"].(string)
		if name == "" {
			name, _ = fields["username"].(string)
		}
		if v, ok := fields["id"]; ok && v != nil {
			id = FormatValue(v)
		}
	}

	switch {
	case name != "" && id != "":
		return fmt.Sprintf("`%s` (%s)", name, id)
	case name != "":
		return fmt.Sprintf("`%s`", name)
	case id != "":
		return id
	}

	return FormatValue(e.Fields())
}

// Renders a decoded JSON value as embed text. Numbers get thousands separators, lists are
// joined with commas and nested objects fall back to compact JSON.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return NONE
	case string:
		if strings.TrimSpace(val) == "" {
			return NONE
		}
		return val
	case bool:
		return lo.Ternary(val, "Yes", "No")
	case json.Number:
		return formatNumber(val)
	case []any:
		if len(val) == 0 {
			return NONE
		}
		return strings.Join(lo.Map(val, func(item any, _ int) string {
			return FormatValue(item)
		}), ", ")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return "`" + string(data) + "`"
}

func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return utils.HumanizedSprintf("%d", i)
	}
	if f, err := n.Float64(); err == nil {
		return utils.HumanizedSprintf("%.2f", f)
	}

	return n.String()
}
