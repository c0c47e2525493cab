package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/typed"
)

func u32(n uint32) *uint32 { return &n }
func i64(n int64) *int64   { return &n }
func u64(n uint64) *uint64 { return &n }

func feedOK(t *testing.T, c *Converter, r interface{}) *model.File {
	t.Helper()
	f, err := c.Feed(r)
	require.NoError(t, err)
	return f
}

func TestConverterMinimalFile(t *testing.T) {
	c := New(Options{})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	f := feedOK(t, c, typed.FileTrailer{ControlTotal: 0, GroupsNum: u32(0), RecordsNum: u32(2)})
	require.NotNil(t, f)
	require.Equal(t, model.Party("SND"), f.Sender)
	require.Equal(t, model.Party("RCV"), f.Receiver)
	require.Equal(t, uint32(1), f.Ident)
	require.Empty(t, f.Groups)
	require.Empty(t, f.Warnings)
}

func TestConverterEmptyGroup(t *testing.T) {
	c := New(Options{})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	require.Nil(t, feedOK(t, c, typed.GroupHeader{Status: model.GroupUpdate, AsOf: model.NewDate(model.Date{})}))
	require.Nil(t, feedOK(t, c, typed.GroupTrailer{ControlTotal: 0, AccountsNum: u32(0), RecordsNum: u32(1)}))
	f := feedOK(t, c, typed.FileTrailer{ControlTotal: 0, GroupsNum: u32(1), RecordsNum: u32(4)})
	require.NotNil(t, f)
	require.Len(t, f.Groups, 1)
	require.Equal(t, model.GroupUpdate, f.Groups[0].Status)
	// The group-level records_num in this scenario (1) disagrees with what
	// was actually observed (header+trailer=2); under the default
	// non-strict policy this surfaces only as a warning.
	require.Len(t, f.Warnings, 1)
	var mismatch *ValidationError
	require.ErrorAs(t, f.Warnings[0], &mismatch)
	require.Equal(t, "records_num", mismatch.Kind)
}

func TestConverterStrictRecordCountsFailsOnMismatch(t *testing.T) {
	c := New(Options{StrictRecordCounts: true})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	_, err := c.Feed(typed.FileTrailer{ControlTotal: 0, GroupsNum: u32(0), RecordsNum: u32(99)})
	require.Error(t, err)
	var mismatch *ValidationError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "file", mismatch.Level)
	require.Equal(t, "records_num", mismatch.Kind)
}

func TestConverterControlTotalAccumulation(t *testing.T) {
	c := New(Options{})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	require.Nil(t, feedOK(t, c, typed.GroupHeader{Status: model.GroupUpdate, AsOf: model.NewDate(model.Date{})}))
	require.Nil(t, feedOK(t, c, typed.AccountIdent{CustomerAccountNum: "123"}))
	require.Nil(t, feedOK(t, c, typed.TransactionDetail{Amount: u64(500)}))
	require.Nil(t, feedOK(t, c, typed.AccountTrailer{ControlTotal: 500, RecordsNum: u32(2)}))
}

func TestConverterAccountControlTotalMismatch(t *testing.T) {
	c := New(Options{})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	require.Nil(t, feedOK(t, c, typed.GroupHeader{Status: model.GroupUpdate, AsOf: model.NewDate(model.Date{})}))
	require.Nil(t, feedOK(t, c, typed.AccountIdent{CustomerAccountNum: "123"}))
	require.Nil(t, feedOK(t, c, typed.TransactionDetail{Amount: u64(500)}))

	_, err := c.Feed(typed.AccountTrailer{ControlTotal: 499, RecordsNum: u32(2)})
	require.Error(t, err)
	var mismatch *ValidationError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "account", mismatch.Level)
	require.Equal(t, "control_total", mismatch.Kind)
	require.Equal(t, int64(499), mismatch.Expected)
	require.Equal(t, int64(500), mismatch.Actual)
	require.NotNil(t, mismatch.Location.GroupIndex)
	require.NotNil(t, mismatch.Location.AccountIndex)
}

func TestConverterRejectsRecordOutOfSequence(t *testing.T) {
	c := New(Options{})
	_, err := c.Feed(typed.GroupHeader{})
	require.Error(t, err)
	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "Fresh", stateErr.State)
}

func TestConverterDoneAfterError(t *testing.T) {
	c := New(Options{})
	_, err := c.Feed(typed.GroupHeader{})
	require.Error(t, err)

	_, err = c.Feed(typed.FileHeader{})
	require.ErrorIs(t, err, ErrConverterDone)
}

func TestConverterStatusAndSummaryAmountsContributeToControlTotal(t *testing.T) {
	c := New(Options{})
	require.Nil(t, feedOK(t, c, typed.FileHeader{Sender: "SND", Receiver: "RCV", IdentNum: 1, VersionNumber: "2"}))
	require.Nil(t, feedOK(t, c, typed.GroupHeader{Status: model.GroupUpdate, AsOf: model.NewDate(model.Date{})}))
	require.Nil(t, feedOK(t, c, typed.AccountIdent{
		CustomerAccountNum: "1",
		Infos: []model.AccountInfo{
			model.StatusInfo{Amount: i64(-100)},
			model.SummaryInfo{Amount: u64(300)},
		},
	}))
	require.Nil(t, feedOK(t, c, typed.AccountTrailer{ControlTotal: 200, RecordsNum: u32(2)}))
}
