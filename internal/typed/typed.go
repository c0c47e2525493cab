package typed

import (
	"fmt"
	"time"

	"github.com/greenline-fi/bai2/internal/model"
)

// FileHeader is a type-decoded 01 record.
type FileHeader struct {
	Sender, Receiver  model.Party
	Creation          time.Time
	IdentNum          uint32
	PhysicalRecordLen *uint32
	BlockSize         *uint32
	VersionNumber     string
}

// GroupHeader is a type-decoded 02 record.
type GroupHeader struct {
	UltimateReceiver *model.Party
	Originator       *model.Party
	Status           model.GroupStatus
	AsOf             model.DateOrTime
	Currency         *model.Currency
	AsOfDateMod      *model.AsOfDateModifier
}

// AccountIdent is a type-decoded 03 record.
type AccountIdent struct {
	CustomerAccountNum string
	Currency           *model.Currency
	Infos              []model.AccountInfo
}

// TransactionDetail is a type-decoded 16 record.
type TransactionDetail struct {
	Code           model.DetailCode
	Amount         *uint64
	Funds          model.FundsType
	BankRefNum     string
	CustomerRefNum string
	Text           []string
}

// AccountTrailer is a type-decoded 49 record.
type AccountTrailer struct {
	ControlTotal int64
	RecordsNum   *uint32
}

// GroupTrailer is a type-decoded 98 record.
type GroupTrailer struct {
	ControlTotal int64
	AccountsNum  *uint32
	RecordsNum   *uint32
}

// FileTrailer is a type-decoded 99 record.
type FileTrailer struct {
	ControlTotal int64
	GroupsNum    *uint32
	RecordsNum   *uint32
}

// Typer decodes raw internal/record values into the typed structs above,
// using the caller-supplied Calendar, CurrencyLookup, EndOfDay sentinel
// resolution, and Location to interpret date/time/currency fields.
type Typer struct {
	Calendar       model.Calendar
	CurrencyLookup model.CurrencyLookup
	EndOfDay       model.ClockTime
	Location       *time.Location
}

func fe(tag, field string, err error) error {
	if err == nil {
		return nil
	}
	return &FieldError{Record: tag, Field: field, Err: err}
}

// enumField names a field within the i-th element of a repeated group,
// e.g. enumField("info", 2) -> "info[2]".
func enumField(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}
