package faults

import (
	"context"
	"fmt"
	"io"
)

// Scenario is one isolated fault demonstration
type Scenario struct {
	Name     string
	Category Category

	// Run performs the operation expected to fail
	Run func(ctx context.Context) error

	// Classify maps the error returned by Run to the kind of fault it shows
	Classify func(err error) (Kind, bool)
}

// Outcome is the result of evaluating one scenario.
// Exactly one of Fault and Err is set unless the scenario completed cleanly.
type Outcome struct {
	Scenario string
	Fault    *Fault
	Err      error
}

// Triggered reports whether the scenario produced its classified fault
func (o Outcome) Triggered() bool {
	return o.Fault != nil
}

// Evaluate runs the scenario, recovering any panic, and classifies the result.
func Evaluate(ctx context.Context, s Scenario) Outcome {
	err := guard(func() error {
		return s.Run(ctx)
	})
	if err == nil {
		return Outcome{Scenario: s.Name}
	}

	if kind, ok := s.Classify(err); ok {
		return Outcome{
			Scenario: s.Name,
			Fault:    &Fault{Category: s.Category, Kind: kind, Err: err},
		}
	}
	return Outcome{Scenario: s.Name, Err: err}
}

func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return fn()
}

// Report writes one line per outcome
func Report(w io.Writer, outcomes []Outcome) {
	for _, o := range outcomes {
		switch {
		case o.Fault != nil:
			fmt.Fprintf(w, "Caught %s: %s\n", o.Fault.Kind, o.Fault.Kind.Message())
		case o.Err != nil:
			fmt.Fprintf(w, "%s: unexpected error: %v\n", o.Scenario, o.Err)
		default:
			fmt.Fprintf(w, "%s: completed without a fault\n", o.Scenario)
		}
	}
}
