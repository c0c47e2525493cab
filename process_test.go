package bai2

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/greenline-fi/bai2/bai2calendar"
	"github.com/greenline-fi/bai2/bai2currency"
)

func testOptions() Options {
	return Options{
		Calendar:       bai2calendar.Standard{},
		CurrencyLookup: bai2currency.FromISOText{},
		EndOfDay:       ClockTime{Hour: 23, Minute: 59},
	}
}

func TestProcessMinimalFile(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,,2/\n99,0,0,2/")
	f, err := Process(data, testOptions())
	require.NoError(t, err)
	require.Equal(t, Party("SND"), f.Sender)
	require.Equal(t, Party("RCV"), f.Receiver)
	require.Equal(t, 2023, f.Creation.Year())
	require.Equal(t, 12, f.Creation.Hour())
	require.Equal(t, uint32(1), f.Ident)
	require.Empty(t, f.Groups)
}

func TestProcessContinuation(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,/\n88,2/\n99,0,0,2/")
	f, err := Process(data, testOptions())
	require.NoError(t, err)
	require.Equal(t, Party("SND"), f.Sender)
	require.Equal(t, uint32(1), f.Ident)
	require.Empty(t, f.Groups)
}

func TestProcessControlTotalMismatch(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,,2/\n" +
		"02,,ORIG,1,230101,,,/\n" +
		"03,123,,010,000000000500,,/\n" +
		"49,499,2/\n" +
		"98,499,1,3/\n" +
		"99,499,1,5/")
	_, err := Process(data, testOptions())
	require.Error(t, err)
	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "convert", pe.Stage())
}

func TestProcessFundsDistributedAvailDMismatch(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,,2/\n" +
		"02,,ORIG,1,230101,,,/\n" +
		"03,123,/\n" +
		"16,409,,D,3,1,100,2,200/\n" +
		"49,300,3/\n" +
		"98,300,1,4/\n" +
		"99,300,1,7/")
	_, err := Process(data, testOptions())
	require.Error(t, err)
	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "field-type", pe.Stage())
}

func TestProcessRejectsWrongVersion(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,,1/\n99,0,0,2/")
	_, err := Process(data, testOptions())
	require.Error(t, err)
	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "field-type", pe.Stage())
}

func TestProcessUnfinishedInput(t *testing.T) {
	data := []byte("01,SND,RCV,230101,1200,1,,,2/")
	_, err := Process(data, testOptions())
	require.Error(t, err)
	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "unfinished", pe.Stage())
	var unfinished *UnfinishedError
	require.True(t, errors.As(err, &unfinished))
	require.Equal(t, "InFile", unfinished.State)
}
