package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Flyrell/ulidkit/internal/engine"
)

const exampleULID = "01AN4Z07BY79KA1307SR9X4MV3"

// LabeledError is the error every command returns to Execute.
type LabeledError struct {
	Title   string
	Message string
	Help    string
}

func (e *LabeledError) Error() string {
	if e.Message == "" {
		return e.Title
	}
	return e.Title + ": " + e.Message
}

// newLabeledError builds a LabeledError with a formatted message.
func newLabeledError(title, format string, args ...any) *LabeledError {
	return &LabeledError{Title: title, Message: fmt.Sprintf(format, args...)}
}

// withLabel wraps err under title unless it already carries one.
func withLabel(title string, err error) error {
	if err == nil {
		return nil
	}
	var labeled *LabeledError
	if errors.As(err, &labeled) {
		return err
	}
	return &LabeledError{Title: title, Message: err.Error()}
}

// withHelp attaches a help line to a labeled error.
func withHelp(err error, help string) error {
	var labeled *LabeledError
	if errors.As(err, &labeled) {
		labeled.Help = help
		return labeled
	}
	return &LabeledError{Title: "Command failed", Message: err.Error(), Help: help}
}

// engineError labels an error from the engine package with a help line.
func engineError(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := engine.IsInvalidFormat(err); ok {
		return &LabeledError{
			Title:   "Invalid ULID format",
			Message: fmt.Sprintf("the input '%s' is not a valid ULID", e.Input),
			Help:    fmt.Sprintf("%s; valid ULIDs are 26 Crockford Base32 characters, e.g. %s", e.Reason, exampleULID),
		}
	}
	if e, ok := engine.IsTimestampOutOfRange(err); ok {
		return &LabeledError{
			Title:   "Timestamp out of range",
			Message: fmt.Sprintf("timestamp %d exceeds maximum allowed value", e.Timestamp),
			Help:    fmt.Sprintf("use a timestamp between 0 and %d (year 10889)", e.Max),
		}
	}
	var input *engine.InvalidInputError
	if errors.As(err, &input) {
		return &LabeledError{Title: "Invalid input", Message: input.Message, Help: "check the command parameters and try again"}
	}
	var gen *engine.GenerationError
	if errors.As(err, &gen) {
		return &LabeledError{Title: "ULID generation failed", Message: gen.Reason, Help: "the system random source may be unavailable"}
	}
	return withLabel("Command failed", err)
}

// printError writes err in the labeled form to w.
func printError(w io.Writer, err error) {
	var labeled *LabeledError
	if !errors.As(err, &labeled) {
		_, _ = fmt.Fprintln(w, Error("Error:")+" "+Text(err.Error()))
		return
	}
	line := Error("Error: " + labeled.Title)
	if labeled.Message != "" {
		line += Error(":") + " " + Text(labeled.Message)
	}
	_, _ = fmt.Fprintln(w, line)
	if labeled.Help != "" {
		_, _ = fmt.Fprintln(w, Silent("  help: "+labeled.Help))
	}
}
