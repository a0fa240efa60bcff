package model

import "fmt"

// InvalidGridError reports a malformed input grid at construction time
type InvalidGridError struct {
	Reason string
	Row    int
}

func (e *InvalidGridError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("invalid grid at row %d: %s", e.Row, e.Reason)
	}
	return "invalid grid: " + e.Reason
}

// NewInvalidGridError reports a grid-wide problem not tied to a single row
func NewInvalidGridError(reason string) error {
	return &InvalidGridError{Reason: reason, Row: -1}
}

// NewInvalidGridRowError reports a problem with one specific input row
func NewInvalidGridRowError(row int, reason string) error {
	return &InvalidGridError{Reason: reason, Row: row}
}

// InvalidParameterError reports an out-of-range random-board parameter
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %v", e.Name, e.Value)
}

// UnknownTopologyError reports a topology selector outside {8, 6, 12}
type UnknownTopologyError struct {
	Selector string
}

func (e *UnknownTopologyError) Error() string {
	return fmt.Sprintf("unknown topology %q (expected 8, 6 or 12)", e.Selector)
}
