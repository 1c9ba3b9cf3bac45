package bot

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"imperator/api/iapi"
	"imperator/bot/events"
	"imperator/bot/slashcommands"

	dgo "github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

// Slash commands only, so no message content or reaction intents.
var guildIntents = dgo.IntentGuilds

// Connects to Discord and serves slash commands backed by client until the process receives
// an interrupt or termination signal. db holds the usage history and is not closed here.
func Run(botToken string, client *iapi.Client, db *badger.DB) error {
	s, err := dgo.New("Bot " + botToken)
	if err != nil {
		return err
	}

	// Never run handlers synchronously, always run them in a goroutine.
	s.SyncEvents = false

	slashcommands.RegisterDefaults(client, db)

	// https://discord.com/developers/docs/events/gateway-events#receive-events
	s.AddHandler(events.OnReady)
	s.AddHandler(events.OnInteractionCreateApplicationCommand(db))

	s.Identify.Intents = guildIntents

	log.Info("Establishing connection to Discord..")
	if err := s.Open(); err != nil {
		return err
	}

	// Wait for Ctrl+C or kill.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	sig := <-c

	log.Infof("Shutting down bot with signal: %s", strings.ToUpper(sig.String()))

	return s.Close()
}
