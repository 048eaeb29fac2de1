// Package faults runs fixed catalogs of deliberately triggered faults and
// captures each result as a value.
package faults

import (
	"fmt"
)

// Category groups the scenarios shown by one menu option
type Category string

const (
	// CategoryResource covers failures reaching files, databases and drivers
	CategoryResource Category = "resource"

	// CategoryRuntime covers failures raised by the Go runtime or bad arguments
	CategoryRuntime Category = "runtime"
)

// Kind identifies a caught fault
type Kind int

const (
	KindFileNotFound Kind = iota + 1
	KindUnexpectedEOF
	KindIO
	KindDatabaseConnection
	KindDriverNotFound
	KindDivisionByZero
	KindNilReference
	KindIndexOutOfRange
	KindInvalidCast
	KindInvalidArgument
	KindInterrupted
	KindNumberFormat
)

type kindText struct {
	label   string
	message string
}

var kindTexts = map[Kind]kindText{
	KindFileNotFound:       {"file not found", "The specified file does not exist."},
	KindUnexpectedEOF:      {"unexpected EOF", "Unexpected end of file reached."},
	KindIO:                 {"I/O error", "An input/output error occurred."},
	KindDatabaseConnection: {"database connection error", "Could not connect to the database."},
	KindDriverNotFound:     {"driver not found", "The specified driver could not be found."},
	KindDivisionByZero:     {"division by zero", "Division by zero is not allowed."},
	KindNilReference:       {"nil reference", "Attempted to access a nil reference."},
	KindIndexOutOfRange:    {"index out of range", "Invalid index access."},
	KindInvalidCast:        {"invalid type assertion", "Invalid type casting."},
	KindInvalidArgument:    {"invalid argument", "Invalid argument passed."},
	KindInterrupted:        {"interrupted", "The pause was interrupted."},
	KindNumberFormat:       {"invalid number format", "Invalid number format."},
}

func (k Kind) String() string {
	if text, ok := kindTexts[k]; ok {
		return text.label
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Message is the sentence shown to the user when the fault is caught
func (k Kind) Message() string {
	return kindTexts[k].message
}

// Fault is a caught and classified failure of a scenario
type Fault struct {
	Category Category
	Kind     Kind
	Err      error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault (%s): %v", f.Category, f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// PanicError carries a value recovered from a panicking scenario
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error, such as a runtime.Error
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
