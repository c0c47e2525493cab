package bai2

import (
	"errors"
	"io"
	"time"

	"github.com/greenline-fi/bai2/internal/convert"
	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
	"github.com/greenline-fi/bai2/internal/typed"
)

// Options configures the external collaborators and policy decisions
// Process needs: currency resolution, calendar validation, the end-of-day
// sentinel substitute, the time zone applied to combined date/time values,
// and whether records_num mismatches are fatal.
type Options struct {
	// Calendar validates and constructs calendar dates and times. Required.
	Calendar Calendar
	// CurrencyLookup resolves three-letter currency codes. Required.
	CurrencyLookup CurrencyLookup
	// EndOfDay substitutes for the (99, 99) time-of-day sentinel.
	EndOfDay ClockTime
	// Location is applied when combining a date and a time-of-day into a
	// time.Time (FileHeader.Creation). A nil Location defaults to UTC.
	Location *time.Location
	// StrictRecordCounts makes a records_num mismatch at any trailer fatal
	// instead of merely advisory. Default false.
	StrictRecordCounts bool
}

// Process parses a complete BAI2 byte stream into a File, running the
// lexer, field typer, and hierarchical converter in sequence. The returned
// error, if any, is always a *ProcessError wrapping the stage that failed.
func Process(data []byte, opts Options) (*File, error) {
	lexer := record.NewLexer(data)
	typer := &typed.Typer{
		Calendar:       opts.Calendar,
		CurrencyLookup: opts.CurrencyLookup,
		EndOfDay:       opts.EndOfDay,
		Location:       opts.Location,
	}
	conv := convert.New(convert.Options{StrictRecordCounts: opts.StrictRecordCounts})

	for {
		raw, err := lexer.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, newProcessError("lex", err)
		}

		tr, err := typeRecord(typer, raw)
		if err != nil {
			return nil, newProcessError("field-type", err)
		}

		file, err := conv.Feed(tr)
		if err != nil {
			return nil, newProcessError("convert", err)
		}
		if file != nil {
			return file, nil
		}
	}

	return nil, newProcessError("unfinished", &model.UnfinishedError{State: conv.State()})
}

// typeRecord dispatches a raw record to the matching Typer method.
func typeRecord(t *typed.Typer, raw record.Record) (interface{}, error) {
	switch r := raw.(type) {
	case record.FileHeader:
		return t.TypeFileHeader(r)
	case record.GroupHeader:
		return t.TypeGroupHeader(r)
	case record.AccountIdent:
		return t.TypeAccountIdent(r)
	case record.TransactionDetail:
		return t.TypeTransactionDetail(r)
	case record.AccountTrailer:
		return t.TypeAccountTrailer(r)
	case record.GroupTrailer:
		return t.TypeGroupTrailer(r)
	case record.FileTrailer:
		return t.TypeFileTrailer(r)
	default:
		return nil, errUnrecognizedRawRecord
	}
}

var errUnrecognizedRawRecord = errors.New("bai2: lexer produced a record of unrecognized type")
