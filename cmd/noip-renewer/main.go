package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/joho/godotenv"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/qdm12/noip-renewer/internal/config"
	"github.com/qdm12/noip-renewer/internal/health"
	"github.com/qdm12/noip-renewer/internal/healthchecksio"
	"github.com/qdm12/noip-renewer/internal/metrics"
	"github.com/qdm12/noip-renewer/internal/models"
	"github.com/qdm12/noip-renewer/internal/schedule"
	"github.com/qdm12/noip-renewer/internal/shoutrrr"
	"github.com/qdm12/noip-renewer/internal/update"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	// the .env file is optional
	_ = godotenv.Load()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args[1:], logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		os.Exit(1)
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		logger.Info("Shutdown successful")
		os.Exit(0)
	case <-timer.C:
		logger.Warn("Shutdown timed out")
		os.Exit(1)
	}
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	timeNow func() time.Time) (err error) {
	rootCommand := newRootCommand(reader, logger, buildInfo, timeNow)
	rootCommand.SetArgs(args)
	return rootCommand.ExecuteContext(ctx)
}

func runRenewer(ctx context.Context, flagSet *pflag.FlagSet, reader *reader.Reader,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	timeNow func() time.Time) (err error) {
	printSplash(buildInfo)

	settings, err := readConfig(reader, flagSet, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    settings.Shoutrrr.Addresses,
		DefaultTitle: settings.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	const httpTimeout = 10 * time.Second
	client := &http.Client{Timeout: httpTimeout}
	defer client.CloseIdleConnections()

	hioClient := healthchecksio.New(client, settings.Health.HealthchecksioBaseURL,
		*settings.Health.HealthchecksioUUID)
	metrics := metrics.New()
	healthState := health.NewState()
	robotMaker := newRobotMaker(settings, logger, timeNow)
	runner := update.NewRunner(robotMaker, metrics, *settings.Metrics.Textfile,
		shoutrrrClient, hioClient, healthState,
		logger.New(log.SetComponent("update")), timeNow)

	if *settings.Schedule.Cron == "" {
		return runner.Run(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	healthServer := health.NewServer(*settings.Health.ServerAddress, healthState,
		metrics.Handler(), logger.New(log.SetComponent("health")))
	healthServerDone := make(chan error)
	go func() {
		err := healthServer.Run(ctx)
		if err != nil {
			cancel()
		}
		healthServerDone <- err
	}()

	shoutrrrClient.Notify("Launched with schedule " + *settings.Schedule.Cron)
	scheduler := schedule.New(*settings.Schedule.Cron, runner,
		logger.New(log.SetComponent("scheduler")))
	err = scheduler.Run(ctx)
	cancel()
	healthServerErr := <-healthServerDone
	switch {
	case err != nil:
		return fmt.Errorf("running scheduler: %w", err)
	case healthServerErr != nil:
		shoutrrrClient.Notify(healthServerErr.Error())
		return healthServerErr
	}
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "noip-renewer",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, flagSet *pflag.FlagSet,
	logger log.LoggerInterface) (settings config.Config, err error) {
	err = settings.Read(reader, logger)
	if err != nil {
		return settings, fmt.Errorf("reading settings: %w", err)
	}

	flagSettings, err := config.ReadFlags(flagSet)
	if err != nil {
		return settings, fmt.Errorf("reading flags: %w", err)
	}
	settings.OverrideWith(flagSettings)

	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return settings, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(settings.Logger.ToOptions()...)
	logger.Info(settings.String())

	return settings, nil
}
