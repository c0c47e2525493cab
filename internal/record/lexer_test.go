package record

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerFileHeaderContinuation(t *testing.T) {
	// The physical_record_len, block_size fields are both empty, and the
	// writer chose to split the record right after block_size using the
	// 16/88 continuation protocol instead of writing it on one line.
	data := []byte("01,SND,RCV,230101,1200,1,,/\n88,2/\n99,0,0,2/\n")
	lex := NewLexer(data)

	rec, err := lex.Next()
	require.NoError(t, err)
	hdr, ok := rec.(FileHeader)
	require.True(t, ok)
	require.Equal(t, []byte("SND"), hdr.Sender)
	require.Equal(t, []byte("RCV"), hdr.Receiver)
	require.Equal(t, []byte("230101"), hdr.CreationDate)
	require.Equal(t, []byte("1200"), hdr.CreationTime)
	require.Equal(t, []byte("1"), hdr.IdentNum)
	require.Equal(t, []byte{}, hdr.PhysicalRecordLen)
	require.Equal(t, []byte{}, hdr.BlockSize)
	require.Equal(t, []byte("2"), hdr.VersionNumber)

	rec, err = lex.Next()
	require.NoError(t, err)
	trl, ok := rec.(FileTrailer)
	require.True(t, ok)
	require.Equal(t, []byte("0"), trl.ControlTotal)
	require.Equal(t, []byte("0"), trl.GroupsNum)
	require.Equal(t, []byte("2"), trl.RecordsNum)

	_, err = lex.Next()
	require.Equal(t, io.EOF, err)
}

func TestLexerTransactionNoText(t *testing.T) {
	data := []byte("16,409,000000000002500,,,/\n")
	lex := NewLexer(data)
	rec, err := lex.Next()
	require.NoError(t, err)
	td, ok := rec.(TransactionDetail)
	require.True(t, ok)
	require.Equal(t, []byte("409"), td.TypeCode)
	require.Equal(t, []byte("000000000002500"), td.Amount)
	require.Nil(t, td.Funds)
	require.Equal(t, []byte{}, td.BankRefNum)
	require.Equal(t, []byte{}, td.CustomerRefNum)
	require.Nil(t, td.Text)
}

func TestLexerTransactionMultiLineText(t *testing.T) {
	// Text mode: "x" is the seed byte, followed by "line one"; two more
	// 88,-prefixed lines continue the text; the 49 record that follows is
	// not itself prefixed with 88, so it begins a new record.
	data := []byte("16,409,,,,,xline one\n88,line two\n88,line three\n49,0,1/\n")
	lex := NewLexer(data)

	rec, err := lex.Next()
	require.NoError(t, err)
	td, ok := rec.(TransactionDetail)
	require.True(t, ok)
	require.Equal(t, []string{"xline one", "line two", "line three"}, td.Text)

	rec, err = lex.Next()
	require.NoError(t, err)
	_, ok = rec.(AccountTrailer)
	require.True(t, ok)
}

func TestLexerAccountIdentMultipleInfos(t *testing.T) {
	data := []byte("03,12345,USD,010,000000001000,,,015,000000002000,4,Z/\n")
	lex := NewLexer(data)
	rec, err := lex.Next()
	require.NoError(t, err)
	acc, ok := rec.(AccountIdent)
	require.True(t, ok)
	require.Equal(t, []byte("12345"), acc.CustomerAccountNum)
	require.Equal(t, []byte("USD"), acc.Currency)
	require.Len(t, acc.Infos, 2)
	require.Equal(t, []byte("010"), acc.Infos[0].TypeCode)
	require.Equal(t, []byte("000000001000"), acc.Infos[0].Amount)
	require.Nil(t, acc.Infos[0].Funds)
	require.Equal(t, []byte("015"), acc.Infos[1].TypeCode)
	require.Equal(t, []byte("000000002000"), acc.Infos[1].Amount)
	require.Equal(t, []byte("4"), acc.Infos[1].ItemCount)
	require.NotNil(t, acc.Infos[1].Funds)
	require.Equal(t, byte('Z'), acc.Infos[1].Funds.Letter)
}

func TestLexerFundsDistributedAvailDShortfall(t *testing.T) {
	// Declares 3 distributions but the record terminates after 2: the
	// lexer must not error, leaving the declared/actual mismatch for the
	// field typer to report.
	data := []byte("16,409,,D,3,1,100,2,200/\n")
	lex := NewLexer(data)
	rec, err := lex.Next()
	require.NoError(t, err)
	td := rec.(TransactionDetail)
	require.NotNil(t, td.Funds)
	require.Equal(t, []byte("3"), td.Funds.Num)
	require.Len(t, td.Funds.Distributions, 2)
}

func TestLexerFundsDistributedAvailDExcess(t *testing.T) {
	// Declares 1 distribution but two full pairs are actually present: the
	// lexer must read both, regardless of the declared count, again
	// leaving the mismatch for the field typer to report.
	data := []byte("16,409,,D,1,1,100,2,200/\n")
	lex := NewLexer(data)
	rec, err := lex.Next()
	require.NoError(t, err)
	td := rec.(TransactionDetail)
	require.NotNil(t, td.Funds)
	require.Equal(t, []byte("1"), td.Funds.Num)
	require.Len(t, td.Funds.Distributions, 2)
	require.Equal(t, []byte("1"), td.Funds.Distributions[0].Days)
	require.Equal(t, []byte("100"), td.Funds.Distributions[0].Amount)
	require.Equal(t, []byte("2"), td.Funds.Distributions[1].Days)
	require.Equal(t, []byte("200"), td.Funds.Distributions[1].Amount)
}

func TestLexerMissingSeparatorAfterTag(t *testing.T) {
	data := []byte("01SND,RCV/\n")
	_, err := NewLexer(data).Next()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}
