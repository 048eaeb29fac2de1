// Package menu drives the interactive car rental menu.
package menu

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"

	"github.com/kula-app/car-rental-console/internal/config"
	"github.com/kula-app/car-rental-console/internal/console"
	"github.com/kula-app/car-rental-console/internal/faults"
	"github.com/kula-app/car-rental-console/internal/rental"
)

const menuText = `
Welcome to the Online Car Rental System!
Please choose an operation:
1. Add a car rental entry
2. Simulate resource faults
3. Simulate runtime faults
4. Exit
`

// Messages written by the controller
const (
	PromptChoice       = "Enter your choice: "
	MessageNonNumeric  = "Invalid input: please enter a valid numeric choice."
	MessageOutOfRange  = "Invalid choice. Please select a valid option."
	MessageGoodbye     = "Exiting the system. Goodbye!"
	MessageEntryFinish = "Operation completed. Returning to main menu."
)

// Controller shows the menu and dispatches selections until exit
type Controller struct {
	console      *console.Console
	parser       *rental.Parser
	reporter     *rental.Reporter
	demonstrator *faults.Demonstrator
	logger       *slog.Logger
}

// NewController creates a new controller. Fault scenarios that open files
// use the given filesystem.
func NewController(c *console.Console, cfg *config.Config, files afero.Fs, logger *slog.Logger) *Controller {
	return &Controller{
		console:      c,
		parser:       rental.NewParser(c, logger),
		reporter:     rental.NewReporter(c.Writer(), cfg.CurrencySymbol),
		demonstrator: faults.NewDemonstrator(cfg.Fault, files, logger),
		logger:       logger,
	}
}

// Run loops over the menu until the user chooses to exit.
// It only returns an error when the context ends or the input is closed.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.console.Printf("%s", menuText)
		selection, err := c.readSelection()
		if err != nil {
			var invalid *InvalidSelectionError
			if !errors.As(err, &invalid) {
				return err
			}
			c.logger.Debug("invalid menu selection",
				"input", invalid.Input,
				"reason", invalid.Reason)
			if invalid.Reason == ReasonNonNumeric {
				c.console.Println(MessageNonNumeric)
			} else {
				c.console.Println(MessageOutOfRange)
			}
			continue
		}

		c.logger.Debug("menu selection", "selection", selection.String())

		switch selection {
		case SelectionAddEntry:
			c.AddEntry(ctx)
		case SelectionResourceFaults:
			c.RunFaults(ctx, faults.CategoryResource)
		case SelectionRuntimeFaults:
			c.RunFaults(ctx, faults.CategoryRuntime)
		case SelectionExit:
			c.console.Println(MessageGoodbye)
			return nil
		}
	}
}

// readSelection prompts once and skips blank lines until a token arrives
func (c *Controller) readSelection() (Selection, error) {
	c.console.Printf("%s", PromptChoice)
	for {
		line, err := c.console.ReadLine()
		if err != nil {
			return 0, eris.Wrap(err, "failed to read menu choice")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return ParseSelection(line)
	}
}

// AddEntry reads one rental entry and confirms it. The completion notice
// is written on every path, including failures.
func (c *Controller) AddEntry(ctx context.Context) {
	defer c.console.Printf("%s\n\n", MessageEntryFinish)

	entry, err := c.parser.Parse(ctx)
	if err != nil {
		c.console.Println(rental.Message(err))
		return
	}

	c.logger.Debug("rental entry accepted",
		"id", entry.ID,
		"model", entry.Model,
		"daily_price", entry.DailyPrice)
	c.reporter.Report(entry)
}

// RunFaults runs the fault scenarios of one category and reports each outcome
func (c *Controller) RunFaults(ctx context.Context, category faults.Category) {
	outcomes := c.demonstrator.Run(ctx, category)
	faults.Report(c.console.Writer(), outcomes)
}
