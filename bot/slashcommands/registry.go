package slashcommands

import (
	"context"
	"time"

	"imperator/api/iapi"

	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

// How long a single command may spend waiting on the Imperator API.
const REQUEST_TIMEOUT = 20 * time.Second

// 0 for Guild, 1 for User
var integrationTypes = []discordgo.ApplicationIntegrationType{
	discordgo.ApplicationIntegrationUserInstall,
	discordgo.ApplicationIntegrationGuildInstall,
}

// 0 for Guilds, 2 for DMs, 3 for Private Channels
var contexts = []discordgo.InteractionContextType{
	discordgo.InteractionContextBotDM,
	discordgo.InteractionContextGuild,
}

var commands = map[string]SlashCommand{}

type AppCommandOpts = []*discordgo.ApplicationCommandOption
type SlashCommand interface {
	Name() string
	Description() string
	Options() AppCommandOpts
	Execute(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

func ToApplicationCommand(cmd SlashCommand) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:             cmd.Name(),
		Description:      cmd.Description(),
		Options:          cmd.Options(),
		IntegrationTypes: &integrationTypes,
		Contexts:         &contexts,
		Type:             discordgo.ChatApplicationCommand,
	}
}

func All() map[string]SlashCommand {
	return commands
}

func Register(cmd SlashCommand) {
	if _, exists := commands[cmd.Name()]; exists {
		log.Warnf("Command '%s' is already registered!", cmd.Name())
		return
	}

	commands[cmd.Name()] = cmd
}

// Registers every command the bot offers. Must be called once before the session opens.
func RegisterDefaults(client *iapi.Client, db *badger.DB) {
	Register(PingCommand{})
	Register(StatusCommand{client: client})
	Register(PlayerCommand{fetch: client.Fetch()})
	Register(NationCommand{fetch: client.Fetch()})
	Register(TownCommand{fetch: client.Fetch()})
	Register(ListCommand{client: client})
	Register(UsageCommand{db: db})
}

// Overwrites the commands Discord knows about for this application with the registered ones.
func SyncWithRemote(s *discordgo.Session) error {
	cmds := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, cmd := range commands {
		cmds = append(cmds, ToApplicationCommand(cmd))
	}

	_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", cmds)
	return err
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), REQUEST_TIMEOUT)
}
