package slashcommands

import (
	"context"

	"imperator/api/iapi"
	"imperator/bot/embeds"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
)

type ListCommand struct {
	client *iapi.Client
}

func (cmd ListCommand) Name() string { return "list" }
func (cmd ListCommand) Description() string {
	return "List everything of one kind inside another, such as the players in a town."
}

func (cmd ListCommand) Options() AppCommandOpts {
	return AppCommandOpts{
		discordutil.RequiredStringOption("entity", "The containing kind, e.g. town.", 1, 32),
		discordutil.RequiredStringOption("entities", "The kind to list, e.g. players.", 1, 32),
		discordutil.RequiredStringOption("id", "The id of the containing entity.", 1, 64),
	}
}

func (cmd ListCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := discordutil.DeferReply(s, i.Interaction); err != nil {
		return err
	}

	opts := discordutil.GetOptions(i.ApplicationCommandData())

	ctx, cancel := requestContext()
	defer cancel()

	pages, err := cmd.build(ctx,
		discordutil.OptionString(opts, "entity"),
		discordutil.OptionString(opts, "entities"),
		discordutil.OptionString(opts, "id"),
	)
	if err != nil {
		return replyWithAPIError(s, i.Interaction, err)
	}

	_, err = discordutil.FollowupEmbeds(s, i.Interaction, pages...)
	return err
}

func (cmd ListCommand) build(ctx context.Context, entity, entities, id string) ([]*discordgo.MessageEmbed, error) {
	list, err := cmd.client.Get(ctx, entity, entities, id)
	if err != nil {
		return nil, err
	}

	return embeds.ListEmbeds(entity, entities, id, list), nil
}
