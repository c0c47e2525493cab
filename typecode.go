package bai2

import "github.com/greenline-fi/bai2/internal/model"

// InvalidTypeCodeError is returned when a 16-bit type code does not fall
// within any declared range for the taxonomy it was parsed against.
type InvalidTypeCodeError = model.InvalidTypeCodeError

// StatusDomain classifies a StatusCode.
type StatusDomain = model.StatusDomain

const (
	StatusAccount = model.StatusAccount
	StatusLoan    = model.StatusLoan
)

// StatusCode is a 16-bit type code found on a Status AccountInfo, mapped
// onto its domain (Account or Loan). Codes 900-919 are the Account
// domain's vendor-defined Custom range.
type StatusCode = model.StatusCode

// ParseStatusCode classifies a raw code into the Status taxonomy.
var ParseStatusCode = model.ParseStatusCode

// SummaryDomain classifies a SummaryCode.
type SummaryDomain = model.SummaryDomain

const (
	SummaryCredit = model.SummaryCredit
	SummaryDebit  = model.SummaryDebit
	SummaryLoan   = model.SummaryLoan
)

// SummaryCode is a 16-bit type code found on a Summary AccountInfo, mapped
// onto its domain. Codes 920-959 are the Credit domain's Custom range;
// codes 960-999 are the Debit domain's Custom range.
type SummaryCode = model.SummaryCode

// ParseSummaryCode classifies a raw code into the Summary taxonomy.
var ParseSummaryCode = model.ParseSummaryCode

// DetailDomain classifies a DetailCode.
type DetailDomain = model.DetailDomain

const (
	DetailCredit      = model.DetailCredit
	DetailDebit       = model.DetailDebit
	DetailLoan        = model.DetailLoan
	DetailNonMonetary = model.DetailNonMonetary
)

// DetailCode is a 16-bit type code found on a TransactionDetail, mapped
// onto its domain. Codes 920-959 are the Credit domain's Custom range;
// codes 960-999 are the Debit domain's Custom range. Code 890 is the sole
// NonMonetary code.
type DetailCode = model.DetailCode

// ParseDetailCode classifies a raw code into the Detail taxonomy.
var ParseDetailCode = model.ParseDetailCode
