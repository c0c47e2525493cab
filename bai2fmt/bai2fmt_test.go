package bai2fmt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/greenline-fi/bai2/internal/model"
)

func TestSprintMinimalFile(t *testing.T) {
	f := &model.File{
		Sender:   "SND",
		Receiver: "RCV",
		Creation: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Ident:    1,
	}
	out := Sprint(f)
	require.True(t, strings.HasPrefix(out, "File: SND to RCV at 2023-01-01 12:00 (1) {\n"))
	require.Contains(t, out, "control_total=0")
}

func TestSprintNestsGroupsAndAccounts(t *testing.T) {
	code, err := model.ParseDetailCode(195)
	require.NoError(t, err)

	f := &model.File{
		Sender:   "SND",
		Receiver: "RCV",
		Creation: time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
		Ident:    1,
		Groups: []model.Group{
			{
				Status: model.GroupUpdate,
				AsOf:   model.NewDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
				Accounts: []model.Account{
					{
						CustomerAccount: "123",
						TransactionDetails: []model.TransactionDetail{
							{Code: code, Funds: model.FundsImmediateAvail{}},
						},
						ControlTotal: 0,
					},
				},
			},
		},
	}

	out := Sprint(f)
	require.Contains(t, out, "Group: status=Update")
	require.Contains(t, out, "  Group:")
	require.Contains(t, out, "Account 123")
	require.Contains(t, out, "detail Credit(195")
	require.Contains(t, out, "funds=ImmediateAvail")
}
