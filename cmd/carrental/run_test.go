package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kula-app/car-rental-console/internal/console"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestRun_Exit(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"carrental"}, env(nil), strings.NewReader("4\n"), &stdout, &stderr)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout.String(), "Exiting the system. Goodbye!\n"))
	// The default level is warn, so startup info stays quiet
	assert.Empty(t, stderr.String())
}

func TestRun_Session(t *testing.T) {
	var stdout, stderr bytes.Buffer
	input := strings.Join([]string{
		"abc",
		"1", "7", "Sedan", "1250.5",
		"3",
		"4",
	}, "\n") + "\n"

	err := run(context.Background(), []string{"carrental"},
		env(map[string]string{"CARRENTAL_CURRENCY_SYMBOL": "€", "CARRENTAL_LOG_LEVEL": "debug"}),
		strings.NewReader(input), &stdout, &stderr)

	require.NoError(t, err)
	out := stdout.String()
	assert.Contains(t, out, "Invalid input: please enter a valid numeric choice.")
	assert.Contains(t, out, "Rental Price: €1,250.5")
	assert.Contains(t, out, "Caught invalid number format: Invalid number format.")
	assert.Contains(t, stderr.String(), "car rental console starting")
	assert.Contains(t, stderr.String(), "fault caught")
}

func TestRun_InputClosed(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"carrental"}, env(nil), strings.NewReader("1\n"), &stdout, &stderr)

	require.Error(t, err)
	assert.ErrorIs(t, err, console.ErrInputClosed)
	assert.Contains(t, stdout.String(), "Operation completed. Returning to main menu.")
}

func TestRun_StartupErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "unexpected argument", args: []string{"carrental", "extra"}},
		{name: "unknown flag", args: []string{"carrental", "-dry-run"}},
		{name: "invalid log level", args: []string{"carrental"}, env: map[string]string{"CARRENTAL_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, env(tt.env), strings.NewReader("4\n"), &stdout, &stderr)
			assert.Error(t, err)
			assert.Empty(t, stdout.String(), "the menu is never shown")
		})
	}
}
