package main

import (
	"fmt"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/log"
	"github.com/qdm12/noip-renewer/internal/config"
	"github.com/qdm12/noip-renewer/internal/health"
	"github.com/qdm12/noip-renewer/internal/models"
	"github.com/spf13/cobra"
)

func newRootCommand(reader *reader.Reader, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "noip-renewer",
		Short:         "Renews the No-IP hosts about to expire",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRenewer(cmd.Context(), cmd.Flags(), reader, logger, buildInfo, timeNow)
		},
	}
	config.AddFlags(rootCommand.Flags())

	rootCommand.AddCommand(
		newVersionCommand(buildInfo),
		newHealthcheckCommand(reader),
	)
	return rootCommand
}

func newVersionCommand(buildInfo models.BuildInformation) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.VersionString())
		},
	}
}

// newHealthcheckCommand returns the command run in a separate instance
// through the Docker built-in healthcheck, to query the long running
// instance of the program about its status.
func newHealthcheckCommand(reader *reader.Reader) *cobra.Command {
	return &cobra.Command{
		Use:   "healthcheck",
		Short: "Query the health server of a running instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err := healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(cmd.Context(), *healthSettings.ServerAddress)
		},
	}
}
