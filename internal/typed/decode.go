package typed

import (
	"errors"
	"unicode/utf8"

	"github.com/greenline-fi/bai2/internal/model"
)

var (
	errInvalidUTF8   = errors.New("field is not valid UTF-8")
	errNotDigits     = errors.New("field is not a run of ASCII digits")
	errBadSign       = errors.New("field has a misplaced sign")
	errWrongDateLen  = errors.New("date field must be exactly 6 digits (YYMMDD)")
	errWrongTimeLen  = errors.New("time field must be exactly 4 digits (HHMM)")

	// errUnreachableFundsLetter guards a switch arm the lexer's own
	// readFundsType already makes impossible to reach.
	errUnreachableFundsLetter = errors.New("unrecognized funds type letter")

	errUnsupportedVersion = errors.New(`version_number must be "2"`)
)

func decodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errInvalidUTF8
	}
	return string(b), nil
}

func decodeOptionalString(b []byte) (*string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	s, err := decodeString(b)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// decodeDigits parses b as an unsigned base-10 integer with no sign and no
// leading/trailing junk.
func decodeDigits(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, errNotDigits
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, errNotDigits
		}
		n = n*10 + uint64(c-'0')
	}
	return n, nil
}

// decodeSignedDigits parses an optional leading '+' or '-' followed by
// digits. BAI2 amounts are conventionally unsigned on the wire except
// where the grammar explicitly allows a sign (Status amounts, S funds-type
// buckets).
func decodeSignedDigits(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, errNotDigits
	}
	neg := false
	switch b[0] {
	case '+':
		b = b[1:]
	case '-':
		neg = true
		b = b[1:]
	}
	if len(b) == 0 {
		return 0, errBadSign
	}
	n, err := decodeDigits(b)
	if err != nil {
		return 0, err
	}
	v := int64(n)
	if neg {
		v = -v
	}
	return v, nil
}

func decodeUint32(b []byte) (uint32, error) {
	n, err := decodeDigits(b)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func decodeOptionalUint32(b []byte) (*uint32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	n, err := decodeUint32(b)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeOptionalUint64(b []byte) (*uint64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	n, err := decodeDigits(b)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeOptionalInt64(b []byte) (*int64, error) {
	if len(b) == 0 {
		return nil, nil
	}
	n, err := decodeSignedDigits(b)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func decodeInt64(b []byte) (int64, error) {
	return decodeSignedDigits(b)
}

// decodeDate parses a 6-digit YYMMDD field using cal to validate the
// resulting calendar date and apply the BAI2 pivot-year rule.
func decodeDate(b []byte, cal model.Calendar) (model.Date, error) {
	if len(b) != 6 {
		return model.Date{}, errWrongDateLen
	}
	n, err := decodeDigits(b)
	if err != nil {
		return model.Date{}, err
	}
	yy := int(n / 10000)
	mm := int((n / 100) % 100)
	dd := int(n % 100)
	return cal.Date(model.PivotYear(yy), mm, dd)
}

// decodeTime parses a 4-digit HHMM field. An empty field means "not
// present" (ok=false). "9999" is the end-of-day sentinel and resolves to
// endOfDay rather than being validated against cal.
func decodeTime(b []byte, cal model.Calendar, endOfDay model.ClockTime) (clock model.ClockTime, ok bool, err error) {
	if len(b) == 0 {
		return model.ClockTime{}, false, nil
	}
	if len(b) != 4 {
		return model.ClockTime{}, false, errWrongTimeLen
	}
	n, err := decodeDigits(b)
	if err != nil {
		return model.ClockTime{}, false, err
	}
	if n == 9999 {
		return endOfDay, true, nil
	}
	hour := int(n / 100)
	minute := int(n % 100)
	c, err := cal.Time(hour, minute)
	if err != nil {
		return model.ClockTime{}, false, err
	}
	return c, true, nil
}

// decodeDateOrTime combines a required date field and an optional time
// field into a model.DateOrTime.
func decodeDateOrTime(dateField, timeField []byte, cal model.Calendar, endOfDay model.ClockTime) (model.DateOrTime, error) {
	d, err := decodeDate(dateField, cal)
	if err != nil {
		return model.DateOrTime{}, err
	}
	c, ok, err := decodeTime(timeField, cal, endOfDay)
	if err != nil {
		return model.DateOrTime{}, err
	}
	if !ok {
		return model.NewDate(d), nil
	}
	return model.NewDateTime(d, c), nil
}
