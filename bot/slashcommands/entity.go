package slashcommands

import (
	"context"

	"imperator/api/iapi"
	"imperator/bot/embeds"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
)

// Nations and towns are looked up the same way, only the endpoint and embed differ.
type entityLookup func(ctx context.Context, q iapi.EntityQuery) (*discordgo.MessageEmbed, error)

func entityOptions(kind string) AppCommandOpts {
	minLen := 1
	return AppCommandOpts{
		discordutil.StringOption("name", "The name of the "+kind+".", &minLen, 64),
		discordutil.IntegerOption("id", "The id of the "+kind+". Takes priority over name.", false),
	}
}

func entityQuery(opts discordutil.OptionMap) iapi.EntityQuery {
	return iapi.EntityQuery{
		Name: discordutil.OptionStringPtr(opts, "name"),
		ID:   discordutil.OptionIntPtr(opts, "id"),
	}
}

func executeEntityLookup(s *discordgo.Session, i *discordgo.InteractionCreate, lookup entityLookup) error {
	q := entityQuery(discordutil.GetOptions(i.ApplicationCommandData()))
	if q.Name == nil && q.ID == nil {
		return discordutil.SendReply(s, i.Interaction, &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: "Supply at least one of `name` or `id`.",
		})
	}

	if err := discordutil.DeferReply(s, i.Interaction); err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	embed, err := lookup(ctx, q)
	if err != nil {
		return replyWithAPIError(s, i.Interaction, err)
	}

	_, err = discordutil.FollowupEmbeds(s, i.Interaction, embed)
	return err
}

type NationCommand struct {
	fetch *iapi.Fetch
}

func (cmd NationCommand) Name() string            { return "nation" }
func (cmd NationCommand) Description() string     { return "Look up a nation by name or id." }
func (cmd NationCommand) Options() AppCommandOpts { return entityOptions("nation") }

func (cmd NationCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return executeEntityLookup(s, i, cmd.build)
}

func (cmd NationCommand) build(ctx context.Context, q iapi.EntityQuery) (*discordgo.MessageEmbed, error) {
	nation, err := cmd.fetch.Nation(ctx, q)
	if err != nil {
		return nil, err
	}

	return embeds.NationEmbed(nation), nil
}

type TownCommand struct {
	fetch *iapi.Fetch
}

func (cmd TownCommand) Name() string            { return "town" }
func (cmd TownCommand) Description() string     { return "Look up a town by name or id." }
func (cmd TownCommand) Options() AppCommandOpts { return entityOptions("town") }

func (cmd TownCommand) Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return executeEntityLookup(s, i, cmd.build)
}

func (cmd TownCommand) build(ctx context.Context, q iapi.EntityQuery) (*discordgo.MessageEmbed, error) {
	town, err := cmd.fetch.Town(ctx, q)
	if err != nil {
		return nil, err
	}

	return embeds.TownEmbed(town), nil
}
