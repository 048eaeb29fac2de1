package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is a menu option
type Selection int

const (
	SelectionAddEntry Selection = iota + 1
	SelectionResourceFaults
	SelectionRuntimeFaults
	SelectionExit
)

func (s Selection) String() string {
	switch s {
	case SelectionAddEntry:
		return "add-entry"
	case SelectionResourceFaults:
		return "resource-faults"
	case SelectionRuntimeFaults:
		return "runtime-faults"
	case SelectionExit:
		return "exit"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// Reasons reported by InvalidSelectionError
const (
	ReasonNonNumeric = "non-numeric"
	ReasonOutOfRange = "out-of-range"
)

// InvalidSelectionError reports menu input that does not name an option
type InvalidSelectionError struct {
	Input  string
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid menu selection %q: %s", e.Input, e.Reason)
}

// ParseSelection reads the first whitespace-delimited token of line as an
// option number. The rest of the line is ignored.
func ParseSelection(line string) (Selection, error) {
	var token string
	if fields := strings.Fields(line); len(fields) > 0 {
		token = fields[0]
	}

	// Options are 32-bit integers, anything wider is not a number choice
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, &InvalidSelectionError{Input: line, Reason: ReasonNonNumeric}
	}

	selection := Selection(n)
	if selection < SelectionAddEntry || selection > SelectionExit {
		return 0, &InvalidSelectionError{Input: line, Reason: ReasonOutOfRange}
	}
	return selection, nil
}
