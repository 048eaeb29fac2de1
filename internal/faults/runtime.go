package faults

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// ErrNegativeDuration is returned by Pause for durations below zero
var ErrNegativeDuration = eris.New("pause duration must not be negative")

func runtimeScenarios(pause time.Duration) []Scenario {
	return []Scenario{
		{
			Name:     "divide-by-zero",
			Category: CategoryRuntime,
			Run: func(context.Context) error {
				_ = divide(10, 0)
				return nil
			},
			Classify: runtimePanic(KindDivisionByZero, "divide by zero"),
		},
		{
			Name:     "nil-dereference",
			Category: CategoryRuntime,
			Run: func(context.Context) error {
				_ = length(nil)
				return nil
			},
			Classify: runtimePanic(KindNilReference, "nil pointer dereference"),
		},
		{
			Name:     "index-out-of-range",
			Category: CategoryRuntime,
			Run: func(context.Context) error {
				var values [3]int
				_ = element(values, 5)
				return nil
			},
			Classify: runtimePanic(KindIndexOutOfRange, "index out of range"),
		},
		{
			Name:     "type-assertion",
			Category: CategoryRuntime,
			Run: func(context.Context) error {
				_ = assertInt("Test")
				return nil
			},
			Classify: func(err error) (Kind, bool) {
				var assertErr *runtime.TypeAssertionError
				if errors.As(err, &assertErr) {
					return KindInvalidCast, true
				}
				return 0, false
			},
		},
		{
			Name:     "negative-pause",
			Category: CategoryRuntime,
			Run: func(ctx context.Context) error {
				return Pause(ctx, pause)
			},
			Classify: classifyPause,
		},
		{
			Name:     "parse-number",
			Category: CategoryRuntime,
			Run: func(context.Context) error {
				_, err := strconv.Atoi("invalid_number")
				return err
			},
			Classify: func(err error) (Kind, bool) {
				if errors.Is(err, strconv.ErrSyntax) || errors.Is(err, strconv.ErrRange) {
					return KindNumberFormat, true
				}
				return 0, false
			},
		},
	}
}

func divide(a, b int) int {
	return a / b
}

func length(s *string) int {
	return len(*s)
}

func element(values [3]int, i int) int {
	return values[i]
}

func assertInt(v any) int {
	return v.(int)
}

// runtimePanic classifies a recovered runtime.Error whose message contains fragment
func runtimePanic(kind Kind, fragment string) func(error) (Kind, bool) {
	return func(err error) (Kind, bool) {
		var runtimeErr runtime.Error
		if errors.As(err, &runtimeErr) && strings.Contains(runtimeErr.Error(), fragment) {
			return kind, true
		}
		return 0, false
	}
}

// Pause blocks for d or until ctx is done. Negative durations are rejected
// before waiting, so with a negative d the interruption path is never taken.
func Pause(ctx context.Context, d time.Duration) error {
	if d < 0 {
		return eris.Wrapf(ErrNegativeDuration, "cannot pause for %s", d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return eris.Wrap(ctx.Err(), "pause interrupted")
	case <-timer.C:
		return nil
	}
}

func classifyPause(err error) (Kind, bool) {
	switch {
	case errors.Is(err, ErrNegativeDuration):
		return KindInvalidArgument, true
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindInterrupted, true
	default:
		return 0, false
	}
}
