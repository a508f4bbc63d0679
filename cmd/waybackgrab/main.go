package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/config"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/logger"
	"github.com/LinuxUser255/WaybackMachine-Snapshot-Grabber/internal/orchestrator"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	// Command line options take precedence over the config file.
	if flags.outputSet {
		gCfg.StorageConfig.OutputDir = flags.OutputDir
	}
	if flags.delaySet {
		gCfg.FetcherConfig.RequestDelaySeconds = flags.DelaySeconds
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	// Cancel the run on SIGINT/SIGTERM so the fetch loop stops between snapshots.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received interrupt signal, stopping...")
		cancel()
	}()

	o, err := orchestrator.New(gCfg, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not initialize orchestrator")
	}

	opts := orchestrator.RunOptions{
		TargetURL: flags.TargetURL,
		Limit:     0,
	}
	if flags.Limit > 0 {
		opts.Limit = flags.Limit
	}

	metadata, err := o.Run(ctx, opts)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Run failed")
	}

	zLogger.Info().
		Int("attempted", metadata.TotalAttempted).
		Int("succeeded", metadata.TotalSucceeded).
		Int("failed", metadata.TotalFailed).
		Str("output_dir", gCfg.StorageConfig.OutputDir).
		Msg("Done")
}
