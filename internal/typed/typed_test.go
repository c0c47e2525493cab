package typed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// stdCalendar validates dates/times against time.Date's own rules, the way
// bai2calendar.Standard does, without importing it (avoiding a dependency
// from internal/typed's tests on the root module).
type stdCalendar struct{}

func (stdCalendar) Date(year, month, day int) (model.Date, error) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return model.Date{}, errors.New("invalid calendar date")
	}
	return d, nil
}

func (stdCalendar) Time(hour, minute int) (model.ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return model.ClockTime{}, errors.New("invalid time")
	}
	return model.ClockTime{Hour: hour, Minute: minute}, nil
}

type constCurrency struct{}

func (constCurrency) Lookup(code string) (model.Currency, error) {
	return model.Currency{Code: code}, nil
}

func newTestTyper() *Typer {
	return &Typer{Calendar: stdCalendar{}, CurrencyLookup: constCurrency{}, EndOfDay: model.ClockTime{Hour: 23, Minute: 59}}
}

func TestTypeFileHeader(t *testing.T) {
	ty := newTestTyper()
	out, err := ty.TypeFileHeader(record.FileHeader{
		Sender:        []byte("SND"),
		Receiver:      []byte("RCV"),
		CreationDate:  []byte("230101"),
		CreationTime:  []byte("1200"),
		IdentNum:      []byte("1"),
		VersionNumber: []byte("2"),
	})
	require.NoError(t, err)
	require.Equal(t, model.Party("SND"), out.Sender)
	require.Equal(t, uint32(1), out.IdentNum)
	require.Equal(t, 2023, out.Creation.Year())
	require.Equal(t, 12, out.Creation.Hour())
}

func TestTypeFileHeaderRejectsWrongVersion(t *testing.T) {
	ty := newTestTyper()
	_, err := ty.TypeFileHeader(record.FileHeader{
		Sender: []byte("SND"), Receiver: []byte("RCV"),
		CreationDate: []byte("230101"), CreationTime: []byte("1200"),
		IdentNum: []byte("1"), VersionNumber: []byte("1"),
	})
	require.Error(t, err)
}

func TestTypeAccountIdentStatusVsSummary(t *testing.T) {
	ty := newTestTyper()
	out, err := ty.TypeAccountIdent(record.AccountIdent{
		CustomerAccountNum: []byte("12345"),
		Currency:           []byte("USD"),
		Infos: []record.AccountInfo{
			{TypeCode: []byte("010"), Amount: []byte("-500")},
			{TypeCode: []byte("115"), Amount: []byte("1000"), ItemCount: []byte("3")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Infos, 2)

	status, ok := out.Infos[0].(model.StatusInfo)
	require.True(t, ok)
	require.Equal(t, int64(-500), *status.Amount)

	summary, ok := out.Infos[1].(model.SummaryInfo)
	require.True(t, ok)
	require.Equal(t, uint64(1000), *summary.Amount)
	require.Equal(t, uint32(3), *summary.ItemCount)
}

func TestTypeAccountIdentNegativeSummaryAmount(t *testing.T) {
	ty := newTestTyper()
	_, err := ty.TypeAccountIdent(record.AccountIdent{
		CustomerAccountNum: []byte("1"),
		Infos: []record.AccountInfo{
			{TypeCode: []byte("115"), Amount: []byte("-1")},
		},
	})
	require.Error(t, err)
}

func TestTypeTransactionDetailFundsDistributedAvailDMismatch(t *testing.T) {
	ty := newTestTyper()
	_, err := ty.TypeTransactionDetail(record.TransactionDetail{
		TypeCode: []byte("409"),
		Funds: &record.FundsType{
			Letter: 'D',
			Num:    []byte("3"),
			Distributions: []record.Distribution{
				{Days: []byte("1"), Amount: []byte("100")},
				{Days: []byte("2"), Amount: []byte("200")},
			},
		},
	})
	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	var mismatch *model.DistributedAvailDNumError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, uint32(3), mismatch.Declared)
	require.Equal(t, 2, mismatch.Actual)
}

func TestTypeTransactionDetailFundsDistributedAvailDExcess(t *testing.T) {
	ty := newTestTyper()
	_, err := ty.TypeTransactionDetail(record.TransactionDetail{
		TypeCode: []byte("409"),
		Funds: &record.FundsType{
			Letter: 'D',
			Num:    []byte("1"),
			Distributions: []record.Distribution{
				{Days: []byte("1"), Amount: []byte("100")},
				{Days: []byte("2"), Amount: []byte("200")},
			},
		},
	})
	require.Error(t, err)
	var mismatch *model.DistributedAvailDNumError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, uint32(1), mismatch.Declared)
	require.Equal(t, 2, mismatch.Actual)
}

func TestTypeTransactionDetailRejectsInvalidUTF8Text(t *testing.T) {
	ty := newTestTyper()
	_, err := ty.TypeTransactionDetail(record.TransactionDetail{
		TypeCode: []byte("409"),
		Text:     []string{"line one", string([]byte{0xff, 0xfe})},
	})
	require.Error(t, err)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
}
