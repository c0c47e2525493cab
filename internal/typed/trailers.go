package typed

import "github.com/greenline-fi/bai2/internal/record"

// TypeAccountTrailer decodes a raw 49 record.
func (t *Typer) TypeAccountTrailer(r record.AccountTrailer) (AccountTrailer, error) {
	const tag = "49"
	var out AccountTrailer
	var err error
	if out.ControlTotal, err = decodeInt64(r.ControlTotal); err != nil {
		return out, fe(tag, "control_total", err)
	}
	if out.RecordsNum, err = decodeOptionalUint32(r.RecordsNum); err != nil {
		return out, fe(tag, "records_num", err)
	}
	return out, nil
}

// TypeGroupTrailer decodes a raw 98 record.
func (t *Typer) TypeGroupTrailer(r record.GroupTrailer) (GroupTrailer, error) {
	const tag = "98"
	var out GroupTrailer
	var err error
	if out.ControlTotal, err = decodeInt64(r.ControlTotal); err != nil {
		return out, fe(tag, "control_total", err)
	}
	if out.AccountsNum, err = decodeOptionalUint32(r.AccountsNum); err != nil {
		return out, fe(tag, "accounts_num", err)
	}
	if out.RecordsNum, err = decodeOptionalUint32(r.RecordsNum); err != nil {
		return out, fe(tag, "records_num", err)
	}
	return out, nil
}

// TypeFileTrailer decodes a raw 99 record.
func (t *Typer) TypeFileTrailer(r record.FileTrailer) (FileTrailer, error) {
	const tag = "99"
	var out FileTrailer
	var err error
	if out.ControlTotal, err = decodeInt64(r.ControlTotal); err != nil {
		return out, fe(tag, "control_total", err)
	}
	if out.GroupsNum, err = decodeOptionalUint32(r.GroupsNum); err != nil {
		return out, fe(tag, "groups_num", err)
	}
	if out.RecordsNum, err = decodeOptionalUint32(r.RecordsNum); err != nil {
		return out, fe(tag, "records_num", err)
	}
	return out, nil
}
