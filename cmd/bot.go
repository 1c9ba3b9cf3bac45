package cmd

import (
	"errors"
	"fmt"
	"runtime"

	"imperator/bot"
	"imperator/bot/store"
	"imperator/utils/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot",
		Long:  "Run the Discord bot until interrupted. Requires " + config.BOT_TOKEN + " to be set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if a.cfg.BotToken == "" {
				return fmt.Errorf("environment variable %q must be specified to run the bot", config.BOT_TOKEN)
			}

			db, err := store.Open(a.cfg.DBDir)
			if err != nil {
				return fmt.Errorf("cannot open usage database at %s: %w", a.cfg.DBDir, err)
			}
			defer func() {
				err = errors.Join(err, db.Close())
			}()

			log.Infof("Starting bot with %d threads.", runtime.GOMAXPROCS(-1))
			return bot.Run(a.cfg.BotToken, a.client, db)
		},
	}
}
