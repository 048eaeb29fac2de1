package rental

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kula-app/car-rental-console/internal/console"
)

func newTestParser(input string) (*Parser, *bytes.Buffer) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewParser(console.New(strings.NewReader(input), &out), logger), &out
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        *RentalEntry
		wantParse   string // field of the expected ParseFailure
		wantInvalid *ValidationFailure
		wantPrompts []string
	}{
		{
			name:        "valid entry",
			input:       "7\nSedan\n25.0\n",
			want:        &RentalEntry{ID: 7, Model: "Sedan", DailyPrice: 25.0},
			wantPrompts: []string{PromptID, PromptModel, PromptPrice},
		},
		{
			name:        "non-numeric id stops before the model",
			input:       "abc\nSedan\n25.0\n",
			wantParse:   FieldID,
			wantPrompts: []string{PromptID},
		},
		{
			name:        "empty model stops before the price",
			input:       "7\n\n10.5\n",
			wantInvalid: &ValidationFailure{Field: FieldModel, Reason: ReasonEmpty},
			wantPrompts: []string{PromptID, PromptModel},
		},
		{
			name:        "blank model is empty once trimmed",
			input:       "7\n   \n10.5\n",
			wantInvalid: &ValidationFailure{Field: FieldModel, Reason: ReasonEmpty},
			wantPrompts: []string{PromptID, PromptModel},
		},
		{
			name:        "negative price",
			input:       "7\nSedan\n-5\n",
			wantInvalid: &ValidationFailure{Field: FieldPrice, Reason: ReasonNonPositive},
			wantPrompts: []string{PromptID, PromptModel, PromptPrice},
		},
		{
			name:        "zero price",
			input:       "7\nSedan\n0\n",
			wantInvalid: &ValidationFailure{Field: FieldPrice, Reason: ReasonNonPositive},
			wantPrompts: []string{PromptID, PromptModel, PromptPrice},
		},
		{
			name:        "non-numeric price",
			input:       "7\nSedan\ncheap\n",
			wantParse:   FieldPrice,
			wantPrompts: []string{PromptID, PromptModel, PromptPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, out := newTestParser(tt.input)

			entry, err := parser.Parse(context.Background())

			assert.Equal(t, strings.Join(tt.wantPrompts, ""), out.String())

			switch {
			case tt.want != nil:
				require.NoError(t, err)
				assert.Equal(t, tt.want, entry)
			case tt.wantParse != "":
				assert.Nil(t, entry)
				var parseErr *ParseFailure
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.wantParse, parseErr.Field)
			default:
				assert.Nil(t, entry)
				var validationErr *ValidationFailure
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantInvalid, validationErr)
			}
		})
	}
}

func TestParser_ParseInputClosed(t *testing.T) {
	parser, _ := newTestParser("7\n")

	entry, err := parser.Parse(context.Background())

	assert.Nil(t, entry)
	require.ErrorIs(t, err, console.ErrInputClosed)
	var parseErr *ParseFailure
	assert.False(t, errors.As(err, &parseErr))
}

func TestParser_ParseCanceled(t *testing.T) {
	parser, out := newTestParser("7\nSedan\n25\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entry, err := parser.Parse(ctx)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "7", want: 7},
		{input: " 42 ", want: 42},
		{input: "-3", want: -3},
		{input: "+12", want: 12},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "7.5", wantErr: true},
		{input: "99999999999999999999", wantErr: true},
		{input: "2147483647", want: 2147483647},
		{input: "3000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				var parseErr *ParseFailure
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, FieldID, parseErr.Field)
				assert.Equal(t, tt.input, parseErr.Input)
				var numErr *strconv.NumError
				assert.ErrorAs(t, err, &numErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input      string
		want       float64
		wantParse  bool
		wantReason string
	}{
		{input: "25.0", want: 25},
		{input: "10.5", want: 10.5},
		{input: " 3 ", want: 3},
		{input: "1e3", want: 1000},
		{input: "-5", wantReason: ReasonNonPositive},
		{input: "0", wantReason: ReasonNonPositive},
		{input: "abc", wantParse: true},
		{input: "", wantParse: true},
		{input: "NaN", wantParse: true},
		{input: "Inf", wantParse: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePrice(tt.input)
			switch {
			case tt.wantParse:
				var parseErr *ParseFailure
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, FieldPrice, parseErr.Field)
			case tt.wantReason != "":
				var validationErr *ValidationFailure
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, FieldPrice, validationErr.Field)
				assert.Equal(t, tt.wantReason, validationErr.Reason)
			default:
				require.NoError(t, err)
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseModel(t *testing.T) {
	got, err := ParseModel("  Sedan ")
	require.NoError(t, err)
	assert.Equal(t, "  Sedan ", got, "model is kept verbatim")

	_, err = ParseModel("\t ")
	var validationErr *ValidationFailure
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, &ValidationFailure{Field: FieldModel, Reason: ReasonEmpty}, validationErr)
}
