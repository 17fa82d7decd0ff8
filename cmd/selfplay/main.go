// selfplay plays random-move chess games and reports how they ended.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch selfplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	summary, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Logf(1, "%s", summary)
	if summary.Errors > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.Output.Writer = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: selfplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess games with uniformly random legal moves.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCastling, en passant and promotion are not played.\n")
}
