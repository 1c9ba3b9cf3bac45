package cmd

import (
	"context"
	"fmt"

	"imperator/api/iapi"
	"imperator/utils"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "status",
		Short:       "Show the status of the Imperator API",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipProbeAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.client.Status(cmd.Context())
			if err != nil {
				return err
			}

			printEntity(cmd, status)
			return nil
		},
	}
}

func (a *app) playerCmd() *cobra.Command {
	var q iapi.PlayerQuery

	cmd := &cobra.Command{
		Use:   "player [query]",
		Short: "Look up a player by UUID, name or a query that may be either",
		Long: `Look up a player.

--uuid takes precedence over --name, which takes precedence over the query argument.
A query is tried as a UUID first and as a username if the API rejects it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q.Query = args[0]
			}

			player, err := a.client.Fetch().Player(cmd.Context(), q)
			if err != nil {
				return err
			}

			printEntity(cmd, player)
			return nil
		},
	}

	cmd.Flags().StringVar(&q.Name, "name", "", "exact username of the player")
	cmd.Flags().StringVar(&q.UUID, "uuid", "", "UUID of the player")

	return cmd
}

type entityFetcher func(ctx context.Context, q iapi.EntityQuery) (iapi.Entity, error)

func adaptNation(f *iapi.Fetch) entityFetcher {
	return func(ctx context.Context, q iapi.EntityQuery) (iapi.Entity, error) {
		return f.Nation(ctx, q)
	}
}

func adaptTown(f *iapi.Fetch) entityFetcher {
	return func(ctx context.Context, q iapi.EntityQuery) (iapi.Entity, error) {
		return f.Town(ctx, q)
	}
}

// Builds the nation and town commands, which only differ in the endpoint they hit.
func (a *app) entityCmd(kind string, fetcher func(*iapi.Fetch) entityFetcher) *cobra.Command {
	var (
		name string
		id   int
	)

	cmd := &cobra.Command{
		Use:   kind,
		Short: fmt.Sprintf("Look up a %s by name and/or id", kind),
		Long: fmt.Sprintf(`Look up a %s by name and/or id.

Both are sent when given and the API decides which one wins (it prefers the id).`, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var q iapi.EntityQuery
			if cmd.Flags().Changed("name") {
				q.Name = &name
			}
			if cmd.Flags().Changed("id") {
				q.ID = &id
			}

			e, err := fetcher(a.client.Fetch())(cmd.Context(), q)
			if err != nil {
				return err
			}

			printEntity(cmd, e)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", fmt.Sprintf("name of the %s", kind))
	cmd.Flags().IntVar(&id, "id", 0, fmt.Sprintf("id of the %s", kind))

	return cmd
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <entity> <entities> <id>",
		Short: "List the entities of one kind inside another",
		Example: `  imperator list town1 players 5
  imperator list nation towns 12`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !iapi.KnownKind(args[1]) {
				log.Debugf("%q has no dedicated type, entries are shown as returned", args[1])
			}

			list, err := a.client.Get(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			for _, e := range list {
				printEntity(cmd, e)
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.HumanizedSprintf("%d %s found", len(list), args[1]))
			return nil
		},
	}
}
