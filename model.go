package bai2

import "github.com/greenline-fi/bai2/internal/model"

// Party is an opaque identifier for a sender, receiver, ultimate receiver,
// or originator. BAI2 imposes no structure on it beyond non-emptiness.
type Party = model.Party

// GroupStatus is the BAI2 group status code.
type GroupStatus = model.GroupStatus

const (
	GroupUpdate     = model.GroupUpdate
	GroupDeletion   = model.GroupDeletion
	GroupCorrection = model.GroupCorrection
	GroupTestOnly   = model.GroupTestOnly
)

// ParseGroupStatus maps a wire-level 1-4 status code to a GroupStatus.
var ParseGroupStatus = model.ParseGroupStatus

// InvalidGroupStatusError is returned when a group header's status field
// is not 1-4.
type InvalidGroupStatusError = model.InvalidGroupStatusError

// AsOfDateModifier qualifies a group's as-of date or time.
type AsOfDateModifier = model.AsOfDateModifier

const (
	InterimPrevious = model.InterimPrevious
	FinalPrevious   = model.FinalPrevious
	InterimSame     = model.InterimSame
	FinalSame       = model.FinalSame
)

// ParseAsOfDateModifier maps a wire-level 1-4 code to an AsOfDateModifier.
var ParseAsOfDateModifier = model.ParseAsOfDateModifier

// InvalidAsOfDateModifierError is returned when a group header's
// as-of-date-modifier field is not 1-4.
type InvalidAsOfDateModifierError = model.InvalidAsOfDateModifierError

// AccountInfo is either a Status or a Summary entry attached to an
// Account's identification block.
type AccountInfo = model.AccountInfo

// StatusInfo reports an account-state indicator and an optional signed
// amount. It never carries an item count or a funds type.
type StatusInfo = model.StatusInfo

// SummaryInfo reports an aggregated total: an optional non-negative
// amount, an optional item count, and an optional funds availability
// profile.
type SummaryInfo = model.SummaryInfo

// NegativeSummaryAmountError is returned when a Summary AccountInfo's wire
// amount (signed on the wire, despite being non-negative by definition)
// decodes to a negative value.
type NegativeSummaryAmountError = model.NegativeSummaryAmountError

// StatusItemCountError is returned when a Status AccountInfo tuple carries
// an item_count, a field the Status taxonomy never defines.
type StatusItemCountError = model.StatusItemCountError

// StatusFundsError is returned when a Status AccountInfo tuple carries a
// funds type, a field the Status taxonomy never defines.
type StatusFundsError = model.StatusFundsError

// TransactionDetail is a single entry recorded against an Account.
type TransactionDetail = model.TransactionDetail

// Account is a customer account and everything reported against it within
// a Group: its identification info entries and its transaction details.
type Account = model.Account

// Group is a collection of accounts reported together under one
// originator/receiver pairing and as-of date.
type Group = model.Group

// File is the root of a parsed BAI2 document.
type File = model.File
