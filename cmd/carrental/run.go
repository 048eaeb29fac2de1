package main

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/kula-app/car-rental-console/internal/config"
	"github.com/kula-app/car-rental-console/internal/console"
	"github.com/kula-app/car-rental-console/internal/logging"
	"github.com/kula-app/car-rental-console/internal/menu"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the user chose to exit.
// If the run function returns an error, startup failed or the input was closed before exiting.
//
// The logic of the run function must stay isolated so it can be tested in parallel.
func run(ctx context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	// The program takes no flags, but parsing still rejects stray arguments and answers -h
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	if err := flags.Parse(args[1:]); err != nil {
		return eris.Wrap(err, "failed to parse flags")
	}
	if flags.NArg() > 0 {
		return eris.Errorf("unexpected arguments: %v", flags.Args())
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		return eris.Wrap(err, "failed to load configuration")
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	// Diagnostics go to stderr so they never interleave with the menu on stdout
	logger := slog.New(logging.NewTerminalHandler(stderr, level))

	logger.Info("car rental console starting",
		"log_level", cfg.LogLevel,
		"currency_symbol", cfg.CurrencySymbol,
		"missing_file", cfg.Fault.MissingFile,
		"driver_name", cfg.Fault.DriverName,
		"pause", cfg.Fault.Pause)

	// Fault scenarios only ever see an empty, read-only in-memory filesystem
	files := afero.NewReadOnlyFs(afero.NewMemMapFs())

	controller := menu.NewController(console.New(stdin, stdout), cfg, files, logger)
	if err := controller.Run(ctx); err != nil {
		return eris.Wrap(err, "menu loop stopped")
	}

	logger.Info("car rental console stopped")
	return nil
}
