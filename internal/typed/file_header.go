package typed

import (
	"time"

	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/record"
)

// TypeFileHeader decodes a raw 01 record. VersionNumber is required to be
// the literal "2"; every other BAI2 version this core does not understand.
func (t *Typer) TypeFileHeader(r record.FileHeader) (FileHeader, error) {
	const tag = "01"
	var out FileHeader

	sender, err := decodeString(r.Sender)
	if err != nil {
		return out, fe(tag, "sender", err)
	}
	out.Sender = model.Party(sender)

	receiver, err := decodeString(r.Receiver)
	if err != nil {
		return out, fe(tag, "receiver", err)
	}
	out.Receiver = model.Party(receiver)

	date, err := decodeDate(r.CreationDate, t.Calendar)
	if err != nil {
		return out, fe(tag, "creation_date", err)
	}
	clock, ok, err := decodeTime(r.CreationTime, t.Calendar, t.EndOfDay)
	if err != nil {
		return out, fe(tag, "creation_time", err)
	}
	hour, minute := 0, 0
	if ok {
		hour, minute = clock.Hour, clock.Minute
	}
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	out.Creation = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)

	identNum, err := decodeUint32(r.IdentNum)
	if err != nil {
		return out, fe(tag, "ident_num", err)
	}
	out.IdentNum = identNum

	if out.PhysicalRecordLen, err = decodeOptionalUint32(r.PhysicalRecordLen); err != nil {
		return out, fe(tag, "physical_record_len", err)
	}
	if out.BlockSize, err = decodeOptionalUint32(r.BlockSize); err != nil {
		return out, fe(tag, "block_size", err)
	}

	version, err := decodeString(r.VersionNumber)
	if err != nil {
		return out, fe(tag, "version_number", err)
	}
	if version != "2" {
		return out, fe(tag, "version_number", errUnsupportedVersion)
	}
	out.VersionNumber = version

	return out, nil
}
