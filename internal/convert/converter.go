package convert

import (
	"github.com/greenline-fi/bai2/internal/model"
	"github.com/greenline-fi/bai2/internal/typed"
)

// Options configures policy decisions the BAI2 grammar leaves to the
// implementer.
type Options struct {
	// StrictRecordCounts, when true, makes a records_num mismatch at any
	// trailer a fatal ValidationError, the same as an accounts_num or
	// groups_num mismatch. When false (the default), the mismatch is only
	// recorded as a non-fatal warning on the resulting File.
	StrictRecordCounts bool
}

type accountFrame struct {
	ident        typed.AccountIdent
	details      []model.TransactionDetail
	controlTotal int64
	recordsSeen  uint32
}

type groupFrame struct {
	header       typed.GroupHeader
	accounts     []model.Account
	controlTotal int64
	accountsNum  uint32
	recordsSeen  uint32
}

type fileFrame struct {
	header       typed.FileHeader
	groups       []model.Group
	controlTotal int64
	groupsNum    uint32
	recordsSeen  uint32
}

// Converter folds a sequence of typed records into a File tree. It is
// created fresh, fed records one at a time via Feed, and consumed once
// Feed reports a non-nil File or a non-nil error.
type Converter struct {
	opts Options

	state   state
	file    *fileFrame
	group   *groupFrame
	account *accountFrame

	warnings []error
}

// New returns a Converter in its initial Fresh state.
func New(opts Options) *Converter {
	return &Converter{opts: opts, state: stateFresh}
}

// State names the converter's current position, for UnfinishedError.
func (c *Converter) State() string {
	return c.state.String()
}

func (c *Converter) location() Location {
	var loc Location
	if c.file != nil {
		n := len(c.file.groups)
		loc.GroupIndex = &n
	}
	if c.group != nil {
		n := len(c.group.accounts)
		loc.AccountIndex = &n
	}
	if c.account != nil {
		n := len(c.account.details)
		loc.TransactionIndex = &n
	}
	return loc
}

func (c *Converter) stateErr(tag string) error {
	return &StateError{State: c.state.String(), Tag: tag, Location: c.location()}
}

// Feed advances the converter by one typed record. It returns a non-nil
// *model.File exactly once, upon a successful FileTrailer; a non-nil error
// terminates the converter (every subsequent Feed call returns
// ErrConverterDone). r must be one of the typed.* record structs.
func (c *Converter) Feed(r interface{}) (*model.File, error) {
	if c.state == stateDone {
		return nil, ErrConverterDone
	}

	var file *model.File
	var err error

	switch rec := r.(type) {
	case typed.FileHeader:
		err = c.feedFileHeader(rec)
	case typed.GroupHeader:
		err = c.feedGroupHeader(rec)
	case typed.AccountIdent:
		err = c.feedAccountIdent(rec)
	case typed.TransactionDetail:
		err = c.feedTransactionDetail(rec)
	case typed.AccountTrailer:
		err = c.feedAccountTrailer(rec)
	case typed.GroupTrailer:
		err = c.feedGroupTrailer(rec)
	case typed.FileTrailer:
		file, err = c.feedFileTrailer(rec)
	default:
		err = c.stateErr("unknown")
	}

	if err != nil {
		c.state = stateDone
		return nil, err
	}
	return file, nil
}

func (c *Converter) feedFileHeader(r typed.FileHeader) error {
	if c.state != stateFresh {
		return c.stateErr("01")
	}
	c.file = &fileFrame{header: r, recordsSeen: 1}
	c.state = stateInFile
	return nil
}

func (c *Converter) feedGroupHeader(r typed.GroupHeader) error {
	if c.state != stateInFile {
		return c.stateErr("02")
	}
	c.file.recordsSeen++
	c.group = &groupFrame{header: r, recordsSeen: 1}
	c.state = stateInGroup
	return nil
}

func (c *Converter) feedAccountIdent(r typed.AccountIdent) error {
	if c.state != stateInGroup {
		return c.stateErr("03")
	}
	c.file.recordsSeen++
	c.group.recordsSeen++
	c.account = &accountFrame{ident: r, recordsSeen: 1}
	for _, info := range r.Infos {
		if amt, ok := infoAmount(info); ok {
			c.account.controlTotal += amt
		}
	}
	c.state = stateInAccount
	return nil
}

// infoAmount returns an AccountInfo's signed contribution to its account's
// control total, and whether it carries one at all.
func infoAmount(info model.AccountInfo) (int64, bool) {
	switch v := info.(type) {
	case model.StatusInfo:
		if v.Amount == nil {
			return 0, false
		}
		return *v.Amount, true
	case model.SummaryInfo:
		if v.Amount == nil {
			return 0, false
		}
		return int64(*v.Amount), true
	default:
		return 0, false
	}
}

func (c *Converter) feedTransactionDetail(r typed.TransactionDetail) error {
	if c.state != stateInAccount {
		return c.stateErr("16")
	}
	c.file.recordsSeen++
	c.group.recordsSeen++
	c.account.recordsSeen++

	detail := model.TransactionDetail{
		Code:           r.Code,
		Amount:         r.Amount,
		Funds:          r.Funds,
		BankRefNum:     r.BankRefNum,
		CustomerRefNum: r.CustomerRefNum,
		Text:           r.Text,
	}
	if r.Amount != nil {
		c.account.controlTotal += int64(*r.Amount)
	}
	c.account.details = append(c.account.details, detail)
	return nil
}

func (c *Converter) feedAccountTrailer(r typed.AccountTrailer) error {
	if c.state != stateInAccount {
		return c.stateErr("49")
	}
	c.file.recordsSeen++
	c.group.recordsSeen++
	c.account.recordsSeen++

	loc := c.location()
	if r.ControlTotal != c.account.controlTotal {
		return &ValidationError{Level: "account", Kind: "control_total", Expected: r.ControlTotal, Actual: c.account.controlTotal, Location: loc}
	}
	if err := c.checkRecordsNum("account", r.RecordsNum, c.account.recordsSeen, loc); err != nil {
		return err
	}

	account := model.Account{
		CustomerAccount:    c.account.ident.CustomerAccountNum,
		Currency:           c.account.ident.Currency,
		Infos:              c.account.ident.Infos,
		TransactionDetails: c.account.details,
		ControlTotal:       c.account.controlTotal,
	}
	c.group.accounts = append(c.group.accounts, account)
	c.group.controlTotal += account.ControlTotal
	c.group.accountsNum++
	c.account = nil
	c.state = stateInGroup
	return nil
}

func (c *Converter) feedGroupTrailer(r typed.GroupTrailer) error {
	if c.state != stateInGroup {
		return c.stateErr("98")
	}
	c.file.recordsSeen++
	c.group.recordsSeen++

	loc := c.location()
	if r.ControlTotal != c.group.controlTotal {
		return &ValidationError{Level: "group", Kind: "control_total", Expected: r.ControlTotal, Actual: c.group.controlTotal, Location: loc}
	}
	if r.AccountsNum != nil && int64(*r.AccountsNum) != int64(c.group.accountsNum) {
		return &ValidationError{Level: "group", Kind: "accounts_num", Expected: int64(*r.AccountsNum), Actual: int64(c.group.accountsNum), Location: loc}
	}
	if err := c.checkRecordsNum("group", r.RecordsNum, c.group.recordsSeen, loc); err != nil {
		return err
	}

	group := model.Group{
		UltimateReceiver: c.group.header.UltimateReceiver,
		Originator:       c.group.header.Originator,
		Status:           c.group.header.Status,
		AsOf:             c.group.header.AsOf,
		Currency:         c.group.header.Currency,
		AsOfDateMod:      c.group.header.AsOfDateMod,
		Accounts:         c.group.accounts,
		ControlTotal:     c.group.controlTotal,
	}
	c.file.groups = append(c.file.groups, group)
	c.file.controlTotal += group.ControlTotal
	c.file.groupsNum++
	c.group = nil
	c.state = stateInFile
	return nil
}

func (c *Converter) feedFileTrailer(r typed.FileTrailer) (*model.File, error) {
	if c.state != stateInFile {
		return nil, c.stateErr("99")
	}
	c.file.recordsSeen++

	loc := c.location()
	if r.ControlTotal != c.file.controlTotal {
		return nil, &ValidationError{Level: "file", Kind: "control_total", Expected: r.ControlTotal, Actual: c.file.controlTotal, Location: loc}
	}
	if r.GroupsNum != nil && int64(*r.GroupsNum) != int64(c.file.groupsNum) {
		return nil, &ValidationError{Level: "file", Kind: "groups_num", Expected: int64(*r.GroupsNum), Actual: int64(c.file.groupsNum), Location: loc}
	}
	if err := c.checkRecordsNum("file", r.RecordsNum, c.file.recordsSeen, loc); err != nil {
		return nil, err
	}

	out := &model.File{
		Sender:       c.file.header.Sender,
		Receiver:     c.file.header.Receiver,
		Creation:     c.file.header.Creation,
		Ident:        c.file.header.IdentNum,
		Groups:       c.file.groups,
		ControlTotal: c.file.controlTotal,
		Warnings:     c.warnings,
	}
	c.state = stateDone
	return out, nil
}

// checkRecordsNum compares a trailer's optional declared records_num
// against what the converter actually counted at that level. A nil
// declared value means the field was absent and is never checked.
// Otherwise, a mismatch is fatal under StrictRecordCounts and advisory
// (a File.Warnings entry) when not.
func (c *Converter) checkRecordsNum(level string, declared *uint32, actual uint32, loc Location) error {
	if declared == nil {
		return nil
	}
	if int64(*declared) == int64(actual) {
		return nil
	}
	mismatch := &ValidationError{Level: level, Kind: "records_num", Expected: int64(*declared), Actual: int64(actual), Location: loc}
	if c.opts.StrictRecordCounts {
		return mismatch
	}
	c.warnings = append(c.warnings, mismatch)
	return nil
}
