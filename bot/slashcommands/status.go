package slashcommands

import (
	"context"

	"imperator/api/iapi"
	"imperator/bot/embeds"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
)

type StatusCommand struct {
	client *iapi.Client
}

func (cmd StatusCommand) Name() string { return "status" }
func (cmd StatusCommand) Description() string {
	return "Check whether the Imperator API is up and view its status."
}

func (cmd StatusCommand) Options() AppCommandOpts {
	return nil
}

func (cmd StatusCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := discordutil.DeferReply(s, i.Interaction); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	embed, err := cmd.build(ctx)
	if err != nil {
		return replyWithAPIError(s, i.Interaction, err)
	}

	_, err = discordutil.FollowupEmbeds(s, i.Interaction, embed)
	return err
}

func (cmd StatusCommand) build(ctx context.Context) (*discordgo.MessageEmbed, error) {
	status, err := cmd.client.Status(ctx)
	if err != nil {
		return nil, err
	}

	return embeds.StatusEmbed(status), nil
}
