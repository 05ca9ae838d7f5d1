package main

import (
	"github.com/spf13/cobra"

	"soda/internal/adapters/soda"
	"soda/internal/platform/config"
	"soda/internal/platform/logger"
)

// newClient is swapped in tests
var newClient = func(s soda.Settings) *soda.Client { return soda.NewClient(s.Options) }

type app struct {
	settings soda.Settings
	host     string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "soda",
		Short: "Build and fetch open-data platform requests",
		Long: `soda renders endpoint URIs, row queries and discovery searches for an
open-data portal, validating identifiers before anything is sent.

The portal host defaults to SODA_HOST and can be overridden with --host.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	root.PersistentFlags().StringVar(&a.host, "host", "", "data portal host (default $SODA_HOST)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log requests at debug level")

	root.AddCommand(
		a.uriCmd(),
		a.soqlCmd(),
		a.catalogCmd(),
		a.fetchCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	opt := logger.FromEnv()
	if a.verbose {
		opt.Level = "debug"
	}
	opt.Component = "cli"
	logger.Init(opt)

	a.settings = soda.FromConfig(config.New().Prefix("SODA_"))
	if a.host != "" {
		a.settings.Host = a.host
	}
	return nil
}
