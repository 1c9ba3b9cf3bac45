package events

import (
	"runtime/debug"
	"time"

	"imperator/bot/slashcommands"
	"imperator/bot/store"
	"imperator/metrics"
	"imperator/utils/discordutil"

	"github.com/bwmarrin/discordgo"
	"github.com/dgraph-io/badger/v4"
	log "github.com/sirupsen/logrus"
)

const UNKNOWN_AUTHOR = "<unknown user>"

// Returns the handler for slash commands. Every execution except /usage itself is recorded in db.
func OnInteractionCreateApplicationCommand(db *badger.DB) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if err := recover(); err != nil {
				log.Errorf("handler OnInteractionCreateApplicationCommand recovered from a panic.\n%v\n%s", err, debug.Stack())
				discordutil.ReplyWithPanicError(s, i.Interaction, err)
			}
		}()

		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		author := interactionAuthor(i.Interaction)
		cmdName := i.ApplicationCommandData().Name

		cmd, ok := slashcommands.All()[cmdName]
		if !ok {
			log.Warnf("'%s' executed unknown command /%s", author.Username, cmdName)
			return
		}

		start := time.Now()
		err := cmd.Execute(s, i)
		elapsed := time.Since(start)

		success := err == nil
		if success {
			log.Infof("'%s' successfully executed command /%s (took: %s)", author.Username, cmdName, elapsed)
		} else {
			log.Warnf("'%s' failed to execute command /%s:\n%v", author.Username, cmdName, err)
		}

		metrics.CommandsExecuted.WithLabelValues(cmdName, commandStatus(success)).Inc()

		// Usage is keyed by user ID, there is nowhere to record it without one.
		if cmdName == "usage" || author.ID == "" {
			return
		}

		e := store.UsageCommandEntry{
			Timestamp: time.Now().Unix(),
			Success:   success,
		}

		if err := store.UpdateUserUsage(db, author.ID, cmdName, e); err != nil {
			log.Errorf("error updating usage for user: %s (%s)\n%v", author.Username, author.ID, err)
		}
	}
}

// Same as discordutil.GetInteractionAuthor, but never nil so it is always safe to log.
func interactionAuthor(i *discordgo.Interaction) *discordgo.User {
	if author := discordutil.GetInteractionAuthor(i); author != nil {
		return author
	}

	return &discordgo.User{Username: UNKNOWN_AUTHOR}
}

func commandStatus(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}
