package slashcommands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"imperator/bot/embeds"
	"imperator/bot/store"
	"imperator/utils"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
)

// How many "most used commands" to display.
const USAGE_TOP_COMMANDS = 20

type UsageCommand struct {
	db *badger.DB
}

func (cmd UsageCommand) Name() string { return "usage" }
func (cmd UsageCommand) Description() string {
	return "Get info on your personal bot usage."
}

func (cmd UsageCommand) Options() AppCommandOpts {
	return nil
}

func (cmd UsageCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	author := discordutil.GetInteractionAuthor(i.Interaction)
	if author == nil {
		return errors.New("usage: interaction has no author")
	}

	usage, err := store.GetUserUsage(cmd.db, author.ID)
	if err != nil {
		return err
	}

	if usage.TotalCommandsExecuted() == 0 {
		return discordutil.SendReply(s, i.Interaction, &discordgo.InteractionResponseData{
			Content: "No usage recorded.",
		})
	}

	return discordutil.SendReply(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{usageEmbed(author.Username, usage, time.Now())},
	})
}

func usageEmbed(username string, usage *store.UserUsage, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Bot Usage Statistics | `%s`", username),
		Footer: embeds.DEFAULT_FOOTER,
		Fields: []*discordgo.MessageEmbedField{
			discordutil.NewEmbedField("Total Commands Executed", utils.HumanizedSprintf("`%d`", usage.TotalCommandsExecuted()), false),
			discordutil.NewEmbedField("Top Commands (All Time)", formatStats(usage.GetCommandStats()), true),
			discordutil.NewEmbedField("Top Commands (Last 30 Days)", formatStats(usage.GetCommandStatsSince(now.AddDate(0, 0, -30))), true),
		},
		Color: discordutil.BLURPLE,
	}
}

func formatStats(stats []store.UsageCommandStat) string {
	if len(stats) == 0 {
		return embeds.NONE
	}

	top := min(USAGE_TOP_COMMANDS, len(stats))
	lines := make([]string, 0, top)
	for _, stat := range stats[:top] {
		lines = append(lines, utils.HumanizedSprintf("/%s - `%d` times", stat.Name, stat.Count))
	}

	return strings.Join(lines, "\n")
}
