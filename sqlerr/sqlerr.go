// Package sqlerr defines an error carrying an SQLSTATE code and a vendor
// error code, matched with errors.Is by exact state or by state class.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"
)

// Class sentinels. errors.Is(err, ErrDataException) holds for any *Error
// whose SQLSTATE starts with "22".
var (
	ErrConnection          = &Error{SQLState: "08", Message: "connection exception"}
	ErrDataException       = &Error{SQLState: "22", Message: "data exception"}
	ErrIntegrityConstraint = &Error{SQLState: "23", Message: "integrity constraint violation"}
	ErrSyntax              = &Error{SQLState: "42", Message: "syntax error or access rule violation"}
)

var classNames = map[string]string{
	"00": "successful completion",
	"01": "warning",
	"02": "no data",
	"08": "connection exception",
	"0A": "feature not supported",
	"22": "data exception",
	"23": "integrity constraint violation",
	"25": "invalid transaction state",
	"28": "invalid authorization specification",
	"40": "transaction rollback",
	"42": "syntax error or access rule violation",
	"HY": "driver error",
}

// Error is a database access error.
type Error struct {
	Message  string
	SQLState string // five characters, or a two character class
	Code     int    // vendor specific, 0 when absent
	Cause    error

	next *Error
}

// New returns an Error with msg and no state.
func New(msg string) *Error {
	return &Error{Message: msg}
}

// Newf returns an Error with a formatted message.
func Newf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with the given state caused by err.
func Wrap(err error, state, msg string) *Error {
	return &Error{Message: msg, SQLState: state, Cause: err}
}

// WithState returns a copy of e with SQLState set.
func (e *Error) WithState(state string) *Error {
	c := *e
	c.SQLState = state
	return &c
}

// WithCode returns a copy of e with the vendor code set.
func (e *Error) WithCode(code int) *Error {
	c := *e
	c.Code = code
	return &c
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.SQLState != "" {
		b.WriteString("[" + e.SQLState + "]")
	}
	if e.Message != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Message)
	}
	if e.Code != 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(code %d)", e.Code)
	}
	if e.Cause != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Class returns the two character class of the SQLSTATE, or "".
func (e *Error) Class() string {
	if len(e.SQLState) < 2 {
		return ""
	}
	return e.SQLState[:2]
}

// ClassName describes the state class, or returns "" for unknown classes.
func (e *Error) ClassName() string {
	return classNames[e.Class()]
}

// IsWarning reports whether the state is in class 01.
func (e *Error) IsWarning() bool {
	return e.Class() == "01"
}

// Is matches an *Error target with the same SQLSTATE, or a target
// holding only the two character class of this error's state.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.SQLState == "" {
		return false
	}
	if t.SQLState == e.SQLState {
		return true
	}
	return len(t.SQLState) == 2 && e.Class() == t.SQLState
}

// SetNext appends err, and the errors chained after it, to the end of
// e's chain. It does nothing when the two chains share an error, so
// chains never loop.
func (e *Error) SetNext(err *Error) {
	if err == nil {
		return
	}
	seen := make(map[*Error]bool)
	tail := e
	for ; ; tail = tail.next {
		seen[tail] = true
		if tail.next == nil {
			break
		}
	}
	for cur := err; cur != nil; cur = cur.next {
		if seen[cur] {
			return
		}
	}
	tail.next = err
}

// Next returns the next chained error, or nil.
func (e *Error) Next() *Error {
	return e.next
}

// All returns e followed by every chained error.
func (e *Error) All() []*Error {
	var all []*Error
	for cur := e; cur != nil; cur = cur.next {
		all = append(all, cur)
	}
	return all
}

// ValidState reports whether s is a well-formed five character SQLSTATE
// of digits and upper case letters.
func ValidState(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// State extracts the SQLSTATE of the first *Error in err's chain.
func State(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.SQLState
	}
	return ""
}
