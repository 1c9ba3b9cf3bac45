package slashcommands

import (
	"context"

	"imperator/api/iapi"
	"imperator/bot/embeds"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
)

type PlayerCommand struct {
	fetch *iapi.Fetch
}

func (cmd PlayerCommand) Name() string { return "player" }
func (cmd PlayerCommand) Description() string {
	return "Look up a player by name, UUID, or either."
}

func (cmd PlayerCommand) Options() AppCommandOpts {
	minLen := 1
	return AppCommandOpts{
		discordutil.StringOption("name", "The exact username of the player.", &minLen, 32),
		discordutil.StringOption("uuid", "The UUID of the player.", &minLen, 36),
		discordutil.StringOption("query", "A UUID or username, tried in that order.", &minLen, 36),
	}
}

func (cmd PlayerCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	q := playerQuery(discordutil.GetOptions(i.ApplicationCommandData()))
	if q == (iapi.PlayerQuery{}) {
		return discordutil.SendReply(s, i.Interaction, &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: "Supply at least one of `name`, `uuid` or `query`.",
		})
	}

	if err := discordutil.DeferReply(s, i.Interaction); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	embed, err := cmd.build(ctx, q)
	if err != nil {
		return replyWithAPIError(s, i.Interaction, err)
	}

	_, err = discordutil.FollowupEmbeds(s, i.Interaction, embed)
	return err
}

func (cmd PlayerCommand) build(ctx context.Context, q iapi.PlayerQuery) (*discordgo.MessageEmbed, error) {
	player, err := cmd.fetch.Player(ctx, q)
	if err != nil {
		return nil, err
	}

	return embeds.PlayerEmbed(player), nil
}

func playerQuery(opts discordutil.OptionMap) iapi.PlayerQuery {
	return iapi.PlayerQuery{
		Name:  discordutil.OptionString(opts, "name"),
		UUID:  discordutil.OptionString(opts, "uuid"),
		Query: discordutil.OptionString(opts, "query"),
	}
}
