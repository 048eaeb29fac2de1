package rental

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// Prompts written before each value is read
const (
	PromptID    = "Enter car ID (integer): "
	PromptModel = "Enter car model: "
	PromptPrice = "Enter rental price per day: "
)

// ErrNotFinite is wrapped by a price ParseFailure for NaN and infinite values
var ErrNotFinite = eris.New("value is not a finite number")

// Prompter asks one question and returns the answer line
type Prompter interface {
	Prompt(label string) (string, error)
}

// Parser reads a rental entry field by field
type Parser struct {
	prompter Prompter
	logger   *slog.Logger
}

// NewParser creates a new parser
func NewParser(prompter Prompter, logger *slog.Logger) *Parser {
	return &Parser{
		prompter: prompter,
		logger:   logger,
	}
}

// Parse requests the ID, the model and the daily price in that order.
// It stops at the first invalid value without asking for the remaining ones.
func (p *Parser) Parse(ctx context.Context) (*RentalEntry, error) {
	text, err := p.ask(ctx, PromptID)
	if err != nil {
		return nil, err
	}
	id, err := ParseID(text)
	if err != nil {
		return nil, p.reject(FieldID, err)
	}

	text, err = p.ask(ctx, PromptModel)
	if err != nil {
		return nil, err
	}
	model, err := ParseModel(text)
	if err != nil {
		return nil, p.reject(FieldModel, err)
	}

	text, err = p.ask(ctx, PromptPrice)
	if err != nil {
		return nil, err
	}
	price, err := ParsePrice(text)
	if err != nil {
		return nil, p.reject(FieldPrice, err)
	}

	return NewRentalEntry(id, model, price)
}

func (p *Parser) ask(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", eris.Wrap(err, "rental entry aborted")
	}
	text, err := p.prompter.Prompt(label)
	if err != nil {
		return "", eris.Wrapf(err, "failed to read answer to %q", strings.TrimSpace(label))
	}
	return text, nil
}

func (p *Parser) reject(field string, err error) error {
	p.logger.Debug("rental input rejected",
		"field", field,
		"error", err)
	return err
}

// ParseID parses the car identifier as a 32-bit integer. Surrounding spaces are ignored.
func ParseID(text string) (int, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, &ParseFailure{Field: FieldID, Input: text, Err: err}
	}
	return int(id), nil
}

// ParseModel returns the model name verbatim, rejecting blank names
func ParseModel(text string) (string, error) {
	if err := validateField(FieldModel, text, "notblank"); err != nil {
		return "", err
	}
	return text, nil
}

// ParsePrice parses the daily price, which must be a finite positive decimal
func ParsePrice(text string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ParseFailure{Field: FieldPrice, Input: text, Err: err}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ParseFailure{Field: FieldPrice, Input: text, Err: ErrNotFinite}
	}
	if err := validateField(FieldPrice, price, "gt=0"); err != nil {
		return 0, err
	}
	return price, nil
}
