package typed

import (
	"unicode/utf8"

	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// TypeTransactionDetail decodes a raw 16 record.
func (t *Typer) TypeTransactionDetail(r record.TransactionDetail) (TransactionDetail, error) {
	const tag = "16"
	var out TransactionDetail

	code, err := decodeUint32(r.TypeCode)
	if err != nil {
		return out, fe(tag, "type_code", err)
	}
	detail, err := model.ParseDetailCode(uint16(code))
	if err != nil {
		return out, fe(tag, "type_code", err)
	}
	out.Code = detail

	if out.Amount, err = decodeOptionalUint64(r.Amount); err != nil {
		return out, fe(tag, "amount", err)
	}
	if out.Funds, err = t.typeFundsType(r.Funds); err != nil {
		return out, fe(tag, "funds_type", err)
	}
	if out.BankRefNum, err = decodeString(r.BankRefNum); err != nil {
		return out, fe(tag, "bank_ref_num", err)
	}
	if out.CustomerRefNum, err = decodeString(r.CustomerRefNum); err != nil {
		return out, fe(tag, "customer_ref_num", err)
	}
	for i, line := range r.Text {
		if !utf8.ValidString(line) {
			return out, fe(tag, enumField("text", i), errInvalidUTF8)
		}
	}
	out.Text = r.Text

	return out, nil
}
