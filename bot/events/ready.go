package events

import (
	"imperator/bot/slashcommands"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func OnReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Infof("Logged in as: %s", r.User.Username)

	if err := slashcommands.SyncWithRemote(s); err != nil {
		log.Errorf("Failed to sync slash commands with Discord: %v", err)
		return
	}

	log.Infof("Synced %d slash commands", len(slashcommands.All()))
}
