package typed

import (
	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// TypeGroupHeader decodes a raw 02 record.
func (t *Typer) TypeGroupHeader(r record.GroupHeader) (GroupHeader, error) {
	const tag = "02"
	var out GroupHeader

	if len(r.UltimateReceiver) > 0 {
		s, err := decodeString(r.UltimateReceiver)
		if err != nil {
			return out, fe(tag, "ultimate_receiver", err)
		}
		p := model.Party(s)
		out.UltimateReceiver = &p
	}
	if len(r.Originator) > 0 {
		s, err := decodeString(r.Originator)
		if err != nil {
			return out, fe(tag, "originator", err)
		}
		p := model.Party(s)
		out.Originator = &p
	}

	statusCode, err := decodeUint32(r.Status)
	if err != nil {
		return out, fe(tag, "status", err)
	}
	status, err := model.ParseGroupStatus(int(statusCode))
	if err != nil {
		return out, fe(tag, "status", err)
	}
	out.Status = status

	asOf, err := decodeDateOrTime(r.AsOfDate, r.AsOfTime, t.Calendar, t.EndOfDay)
	if err != nil {
		return out, fe(tag, "as_of_date", err)
	}
	out.AsOf = asOf

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

	if len(r.AsOfDateMod) > 0 {
		n, err := decodeUint32(r.AsOfDateMod)
		if err != nil {
			return out, fe(tag, "as_of_date_mod", err)
		}
		mod, err := model.ParseAsOfDateModifier(int(n))
		if err != nil {
			return out, fe(tag, "as_of_date_mod", err)
		}
		out.AsOfDateMod = &mod
	}

	return out, nil
}
