// SPDX-License-Identifier: BSD-3-Clause

package puzzle

import (
	"fmt"
)

/*

Errors: used to report problems reading puzzles.

*/

// An Error describes a problem with a puzzle file.  It tells the
// caller "this thing failed to meet this condition" as data, so
// the batch driver can decide how to report it; Error() renders
// the English message.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what the error is referring to: the
// puzzle file as a whole, or one line of it.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	FileScope
	LineScope
	MaxScope
)

// The ErrorCondition is the predicate that the file or line
// failed to satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	UnreadableCondition
	WrongLineCountCondition
	WrongLineLengthCondition
	BadCharacterCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate.  The first value is always the file path;
// LineScope errors follow it with the 1-based line number.
type ErrorData []interface{}

// fileError returns an Error scoped to a whole puzzle file.
func fileError(path string, cond ErrorCondition, values ...interface{}) Error {
	return Error{
		Scope:     FileScope,
		Condition: cond,
		Values:    append(ErrorData{path}, values...),
	}
}

// lineError returns an Error scoped to one line of a puzzle file.
func lineError(path string, line int, cond ErrorCondition, values ...interface{}) Error {
	return Error{
		Scope:     LineScope,
		Condition: cond,
		Values:    append(ErrorData{path, line}, values...),
	}
}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case FileScope:
		es = fmt.Sprintf("puzzle file %v: ", nextVal())
	case LineScope:
		es = fmt.Sprintf("puzzle file %v, line %v: ", nextVal(), nextVal())
	default:
		es = "unknown error: "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case UnreadableCondition:
		es += fmt.Sprintf("can't read puzzle: %v", nextVal())
	case WrongLineCountCondition:
		es += fmt.Sprintf("must have exactly %v puzzle lines (have %v)", Side, nextVal())
	case WrongLineLengthCondition:
		es += fmt.Sprintf("must have exactly %v cells (has %v)", Side, nextVal())
	case BadCharacterCondition:
		es += fmt.Sprintf("cell character %q is not a digit or %q", nextVal(), ".")
	default:
		es += fmt.Sprintf("supplemental data is %v", values)
	}
	return es
}
