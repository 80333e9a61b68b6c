// SPDX-License-Identifier: MIT

// factory solves a puzzle file of button machines and prints the fewest
// total presses that bring every machine's counters to its target.
//
// Usage:
//
//	factory [flags] [FILE]
//
// FILE defaults to standard input; "-" also means standard input. Flags
// override values from the --config file (or FACTORY_CONFIG).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/factory/config"
	"github.com/katalvlaran/factory/machine"
	"github.com/katalvlaran/factory/presses"
	"github.com/katalvlaran/factory/report"
)

// debugEnv forces debug logging when set to a non-empty value.
const debugEnv = "FACTORY_DEBUG"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		configPath string
		strategy   string
		bound      string
		format     string
		lights     bool
		maxButtons int
		nodeLimit  int
		debug      bool
	)

	flagSet := pflag.NewFlagSet("factory", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML or JSONC config file (default: $"+config.EnvVar+")")
	flagSet.StringVarP(&strategy, "strategy", "s", "", "engine: auto, reduction, bifurcation, bfs, pb")
	flagSet.StringVar(&bound, "bound", "", "free-variable bound: cap (exact) or residual (heuristic)")
	flagSet.StringVarP(&format, "format", "f", "", "output format: text, json, cbor")
	flagSet.BoolVarP(&lights, "lights", "l", false, "also solve the light diagrams")
	flagSet.IntVar(&maxButtons, "max-buttons", 0, "subset enumeration limit for bifurcation")
	flagSet.IntVar(&nodeLimit, "node-limit", 0, "free-variable search node limit (0: unlimited)")
	flagSet.BoolVarP(&debug, "debug", "d", false, "log per-machine debug records to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 1 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(1))
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadEnv()
	}
	if err != nil {
		return err
	}

	if flagSet.Changed("strategy") {
		cfg.Strategy = strategy
	}
	if flagSet.Changed("bound") {
		cfg.Bound = bound
	}
	if flagSet.Changed("format") {
		cfg.Format = format
	}
	if flagSet.Changed("lights") {
		cfg.Lights = lights
	}
	if flagSet.Changed("max-buttons") {
		cfg.MaxButtons = maxButtons
	}
	if flagSet.Changed("node-limit") {
		cfg.NodeLimit = nodeLimit
	}
	if debug || os.Getenv(debugEnv) != "" {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	input, name, closeInput, err := openInput(flagSet.Arg(0), stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	machines, err := machine.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	logger.Debug("puzzle loaded", "source", name, "machines", len(machines))

	opts, err := cfg.SolveOptions()
	if err != nil {
		return err
	}
	opts = append(opts, presses.WithContext(ctx), presses.WithLogger(logger))

	sum, err := presses.SolveAll(machines, opts...)
	if err != nil {
		return err
	}

	return report.Write(stdout, sum, cfg.Format)
}

// openInput opens path, or returns stdin for "" and "-".
func openInput(path string, stdin io.Reader) (io.Reader, string, func(), error) {
	if path == "" || path == "-" {
		return stdin, "stdin", func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening puzzle: %w", err)
	}

	return f, path, func() { _ = f.Close() }, nil
}
