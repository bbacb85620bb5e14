package engine

import (
	"errors"
	"fmt"
)

// InvalidFormatError reports a string that is not a decodable ULID.
type InvalidFormatError struct {
	Input  string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid ULID format '%s': %s", e.Input, e.Reason)
}

// InvalidInputError reports a bad parameter, such as an out-of-range count.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

// TimestampOutOfRangeError reports a timestamp that does not fit in 48 bits.
type TimestampOutOfRangeError struct {
	Timestamp uint64
	Max       uint64
}

func (e *TimestampOutOfRangeError) Error() string {
	return fmt.Sprintf("timestamp %d is out of range (max: %d)", e.Timestamp, e.Max)
}

// GenerationError wraps a failure of the entropy source.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	return "ULID generation error: " + e.Reason
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat checks if an error is an InvalidFormatError.
func IsInvalidFormat(err error) (*InvalidFormatError, bool) {
	var target *InvalidFormatError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsTimestampOutOfRange checks if an error is a TimestampOutOfRangeError.
func IsTimestampOutOfRange(err error) (*TimestampOutOfRangeError, bool) {
	var target *TimestampOutOfRangeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
