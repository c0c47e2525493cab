package convert

import (
	"errors"
	"fmt"
)

// ErrConverterDone is returned by Feed once the converter has already
// reached Done, whether by success or by a prior error.
var ErrConverterDone = errors.New("convert: converter has already finished")

// Location pinpoints where in the File/Group/Account/TransactionDetail
// nesting an error occurred. GroupIndex is set once a FileHeader has been
// seen, AccountIndex while a group is open, and TransactionIndex while an
// account is open; the others are nil. Each present index counts
// already-completed siblings at that level.
type Location struct {
	GroupIndex       *int
	AccountIndex     *int
	TransactionIndex *int
}

func (l Location) String() string {
	s := ""
	if l.GroupIndex != nil {
		s += fmt.Sprintf(" group=%d", *l.GroupIndex)
	}
	if l.AccountIndex != nil {
		s += fmt.Sprintf(" account=%d", *l.AccountIndex)
	}
	if l.TransactionIndex != nil {
		s += fmt.Sprintf(" transaction=%d", *l.TransactionIndex)
	}
	return s
}

// StateError is returned when a record arrives that is not valid for the
// converter's current state (e.g. a TransactionDetail before any
// AccountIdent, or a FileTrailer while a group is still open).
type StateError struct {
	State    string
	Tag      string
	Location Location
}

func (e *StateError) Error() string {
	return fmt.Sprintf("convert: unexpected %s record in state %s%s", e.Tag, e.State, e.Location)
}

// ValidationError reports a trailer whose declared total or count does not
// match what the converter actually observed.
type ValidationError struct {
	// Level is "account", "group", or "file".
	Level string
	// Kind is "control_total", "accounts_num", "groups_num", or
	// "records_num".
	Kind     string
	Expected int64
	Actual   int64
	Location Location
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("convert: %s %s mismatch: expected %d, got %d%s",
		e.Level, e.Kind, e.Expected, e.Actual, e.Location)
}
