package main

import (
	"flag"
	"fmt"
	"os"
)

// AppFlags holds the consolidated command line arguments.
type AppFlags struct {
	TargetURL        string
	OutputDir        string
	Limit            int
	DelaySeconds     float64
	GlobalConfigFile string

	outputSet bool
	delaySet  bool
}

func ParseFlags() AppFlags {
	outputDir := flag.String("output", "", "Directory where snapshot files and metadata.json are written (default: snapshots).")
	outputDirAlias := flag.String("o", "", "Alias for -output")

	limit := flag.Int("limit", 0, "Maximum number of snapshots to download. Unbounded if not set.")
	limitAlias := flag.Int("l", 0, "Alias for -limit")

	delay := flag.Float64("delay", -1, "Delay in seconds between snapshot downloads (default: 1.0).")
	delayAlias := flag.Float64("d", -1, "Alias for -delay")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <url>\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	flags := AppFlags{Limit: -1, DelaySeconds: -1}

	if *outputDir != "" {
		flags.OutputDir = *outputDir
	} else if *outputDirAlias != "" {
		flags.OutputDir = *outputDirAlias
	}
	flags.outputSet = flags.OutputDir != ""

	if *limit > 0 {
		flags.Limit = *limit
	} else if *limitAlias > 0 {
		flags.Limit = *limitAlias
	}

	if *delay >= 0 {
		flags.DelaySeconds = *delay
	} else if *delayAlias >= 0 {
		flags.DelaySeconds = *delayAlias
	}
	flags.delaySet = flags.DelaySeconds >= 0

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "[FATAL] exactly one target URL argument is required")
		flag.Usage()
		os.Exit(1)
	}
	flags.TargetURL = flag.Arg(0)

	return flags
}
