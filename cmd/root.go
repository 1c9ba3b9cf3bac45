package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"imperator/api/iapi"
	"imperator/metrics"
	"imperator/utils"
	"imperator/utils/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Commands carrying this annotation get a client without the status probe.
const skipProbeAnnotation = "skip-probe"

// State shared by every subcommand once the root has initialised.
type app struct {
	envPath string

	cfg           *config.Config
	client        *iapi.Client
	metricsServer *http.Server
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "imperator",
		Short: "Query the Imperator Network API",
		Long: `imperator is a command line client for the Imperator Network API.

It looks up players, nations and towns, lists the entities inside one another
and can run a Discord bot offering the same lookups as slash commands.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.initialize,
		PersistentPostRunE: a.shutdown,
	}

	rootCmd.PersistentFlags().StringVar(&a.envPath, "env", ".env", "path of the .env file to load")

	rootCmd.AddCommand(
		a.statusCmd(),
		a.playerCmd(),
		a.entityCmd("nation", func(f *iapi.Fetch) entityFetcher { return adaptNation(f) }),
		a.entityCmd("town", func(f *iapi.Fetch) entityFetcher { return adaptTown(f) }),
		a.listCmd(),
		a.botCmd(),
	)

	return rootCmd
}

// Loads config, sets up logging and metrics, then builds the client.
func (a *app) initialize(cmd *cobra.Command, args []string) error {
	if isHelpOrCompletion(cmd) {
		return nil
	}

	var err error
	a.cfg, err = config.Load(a.envPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(a.cfg.LogLevel, cmd.ErrOrStderr())

	if a.cfg.MetricsAddr != "" {
		a.metricsServer = metrics.Serve(a.cfg.MetricsAddr)
	}

	httpClient := &http.Client{
		Timeout:   a.cfg.Timeout,
		Transport: metrics.NewRoundTripper(nil),
	}

	opts := []iapi.Option{
		iapi.WithBaseURL(a.cfg.BaseURL),
		iapi.WithHTTPClient(httpClient),
		iapi.WithLogger(log.StandardLogger()),
	}

	if cmd.Annotations[skipProbeAnnotation] != "" {
		a.client = iapi.New(a.cfg.APIKey, opts...)
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout(a.cfg.Timeout))
	defer cancel()

	a.client, err = iapi.Connect(ctx, a.cfg.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to the Imperator API: %w", err)
	}

	log.WithField("base_url", a.cfg.BaseURL).Debug("connected to the Imperator API")
	return nil
}

func (a *app) shutdown(cmd *cobra.Command, args []string) error {
	if a.metricsServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.metricsServer.Shutdown(ctx)
}

func isHelpOrCompletion(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return true
		}
	}

	return false
}

// The http.Client timeout already bounds the request, zero means it is unbounded.
func probeTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return time.Minute
	}

	return timeout + time.Second
}

func setupLogger(level log.Level, out io.Writer) {
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func printEntity(cmd *cobra.Command, e iapi.Entity) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.Prettify(e.Fields()))
}
