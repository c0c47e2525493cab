package typed

import (
	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// TypeAccountIdent decodes a raw 03 record.
func (t *Typer) TypeAccountIdent(r record.AccountIdent) (AccountIdent, error) {
	const tag = "03"
	var out AccountIdent

	accountNum, err := decodeString(r.CustomerAccountNum)
	if err != nil {
		return out, fe(tag, "customer_account_num", err)
	}
	out.CustomerAccountNum = accountNum

	if len(r.Currency) > 0 {
		code, err := decodeString(r.Currency)
		if err != nil {
			return out, fe(tag, "currency", err)
		}
		cur, err := t.CurrencyLookup.Lookup(code)
		if err != nil {
			return out, fe(tag, "currency", err)
		}
		out.Currency = &cur
	}

	out.Infos = make([]model.AccountInfo, 0, len(r.Infos))
	for i, raw := range r.Infos {
		info, err := t.typeAccountInfo(raw)
		if err != nil {
			return out, fe(tag, enumField("info", i), err)
		}
		if info == nil {
			continue
		}
		out.Infos = append(out.Infos, info)
	}
	return out, nil
}

// typeAccountInfo classifies a raw AccountInfo tuple as a StatusInfo or a
// SummaryInfo by which taxonomy its type_code falls into, trying the
// Status taxonomy first since its Loan range (700-719) sits inside the
// Summary taxonomy's wider Loan range (700-799). A tuple with every field
// empty is the grammar's encoding of "no info at all" and is skipped,
// returning a nil AccountInfo and a nil error.
func (t *Typer) typeAccountInfo(raw record.AccountInfo) (model.AccountInfo, error) {
	if len(raw.TypeCode) == 0 && len(raw.Amount) == 0 && len(raw.ItemCount) == 0 && raw.Funds == nil {
		return nil, nil
	}

	code, err := decodeUint32(raw.TypeCode)
	if err != nil {
		return nil, err
	}

	if status, statusErr := model.ParseStatusCode(uint16(code)); statusErr == nil {
		if len(raw.ItemCount) != 0 {
			return nil, &model.StatusItemCountError{}
		}
		if raw.Funds != nil {
			return nil, &model.StatusFundsError{}
		}
		amount, err := decodeOptionalInt64(raw.Amount)
		if err != nil {
			return nil, err
		}
		return model.StatusInfo{Code: status, Amount: amount}, nil
	}

	summary, err := model.ParseSummaryCode(uint16(code))
	if err != nil {
		return nil, err
	}
	signed, err := decodeOptionalInt64(raw.Amount)
	if err != nil {
		return nil, err
	}
	var amount *uint64
	if signed != nil {
		if *signed < 0 {
			return nil, &model.NegativeSummaryAmountError{Value: *signed}
		}
		u := uint64(*signed)
		amount = &u
	}
	itemCount, err := decodeOptionalUint32(raw.ItemCount)
	if err != nil {
		return nil, err
	}
	funds, err := t.typeFundsType(raw.Funds)
	if err != nil {
		return nil, err
	}
	return model.SummaryInfo{Code: summary, Amount: amount, ItemCount: itemCount, Funds: funds}, nil
}
