package model

import "fmt"

// InvalidTypeCodeError is returned when a 16-bit type code does not fall
// within any declared range for the taxonomy it was parsed against.
type InvalidTypeCodeError struct {
	Taxonomy string
	Code     uint16
}

func (e *InvalidTypeCodeError) Error() string {
	return fmt.Sprintf("bai2: invalid %s type code %d", e.Taxonomy, e.Code)
}

// StatusDomain classifies a StatusCode.
type StatusDomain int

const (
	StatusAccount StatusDomain = iota
	StatusLoan
)

func (d StatusDomain) String() string {
	switch d {
	case StatusAccount:
		return "Account"
	case StatusLoan:
		return "Loan"
	default:
		return "Unknown"
	}
}

// StatusCode is a 16-bit type code found on a Status AccountInfo, mapped
// onto its domain (Account or Loan). Codes 900-919 are the Account
// domain's vendor-defined Custom range.
type StatusCode struct {
	Domain StatusDomain
	Code   uint16
	Custom bool
}

// ParseStatusCode classifies a raw code into the Status taxonomy.
func ParseStatusCode(code uint16) (StatusCode, error) {
	switch {
	case code >= 1 && code <= 99:
		return StatusCode{Domain: StatusAccount, Code: code}, nil
	case code >= 900 && code <= 919:
		return StatusCode{Domain: StatusAccount, Code: code, Custom: true}, nil
	case code >= 700 && code <= 719:
		return StatusCode{Domain: StatusLoan, Code: code}, nil
	default:
		return StatusCode{}, &InvalidTypeCodeError{Taxonomy: "status", Code: code}
	}
}

// Int returns the wire-level code, the inverse of ParseStatusCode.
func (c StatusCode) Int() uint16 { return c.Code }

// Name returns a human-readable name for well-known codes, or "" for
// codes that fall in a Custom vendor range or that have no catalogued
// name.
func (c StatusCode) Name() string {
	if c.Custom {
		return ""
	}
	switch c.Domain {
	case StatusAccount:
		return statusAccountNames[c.Code]
	case StatusLoan:
		return statusLoanNames[c.Code]
	}
	return ""
}

func (c StatusCode) String() string {
	if name := c.Name(); name != "" {
		return fmt.Sprintf("%s(%d, %s)", c.Domain, c.Code, name)
	}
	return fmt.Sprintf("%s(%d)", c.Domain, c.Code)
}

// SummaryDomain classifies a SummaryCode.
type SummaryDomain int

const (
	SummaryCredit SummaryDomain = iota
	SummaryDebit
	SummaryLoan
)

func (d SummaryDomain) String() string {
	switch d {
	case SummaryCredit:
		return "Credit"
	case SummaryDebit:
		return "Debit"
	case SummaryLoan:
		return "Loan"
	default:
		return "Unknown"
	}
}

// SummaryCode is a 16-bit type code found on a Summary AccountInfo, mapped
// onto its domain. Codes 920-959 are the Credit domain's Custom range;
// codes 960-999 are the Debit domain's Custom range.
type SummaryCode struct {
	Domain SummaryDomain
	Code   uint16
	Custom bool
}

// ParseSummaryCode classifies a raw code into the Summary taxonomy.
func ParseSummaryCode(code uint16) (SummaryCode, error) {
	switch {
	case code >= 100 && code <= 399:
		return SummaryCode{Domain: SummaryCredit, Code: code}, nil
	case code >= 920 && code <= 959:
		return SummaryCode{Domain: SummaryCredit, Code: code, Custom: true}, nil
	case code >= 400 && code <= 469:
		return SummaryCode{Domain: SummaryDebit, Code: code}, nil
	case code >= 960 && code <= 999:
		return SummaryCode{Domain: SummaryDebit, Code: code, Custom: true}, nil
	case code >= 700 && code <= 799:
		return SummaryCode{Domain: SummaryLoan, Code: code}, nil
	default:
		return SummaryCode{}, &InvalidTypeCodeError{Taxonomy: "summary", Code: code}
	}
}

// Int returns the wire-level code, the inverse of ParseSummaryCode.
func (c SummaryCode) Int() uint16 { return c.Code }

// Name returns a human-readable name for well-known codes, or "" for
// Custom or uncatalogued codes.
func (c SummaryCode) Name() string {
	if c.Custom {
		return ""
	}
	switch c.Domain {
	case SummaryCredit:
		return summaryCreditNames[c.Code]
	case SummaryDebit:
		return summaryDebitNames[c.Code]
	case SummaryLoan:
		return summaryLoanNames[c.Code]
	}
	return ""
}

func (c SummaryCode) String() string {
	if name := c.Name(); name != "" {
		return fmt.Sprintf("%s(%d, %s)", c.Domain, c.Code, name)
	}
	return fmt.Sprintf("%s(%d)", c.Domain, c.Code)
}

// DetailDomain classifies a DetailCode.
type DetailDomain int

const (
	DetailCredit DetailDomain = iota
	DetailDebit
	DetailLoan
	DetailNonMonetary
)

func (d DetailDomain) String() string {
	switch d {
	case DetailCredit:
		return "Credit"
	case DetailDebit:
		return "Debit"
	case DetailLoan:
		return "Loan"
	case DetailNonMonetary:
		return "NonMonetary"
	default:
		return "Unknown"
	}
}

// DetailCode is a 16-bit type code found on a TransactionDetail, mapped
// onto its domain. Codes 920-959 are the Credit domain's Custom range;
// codes 960-999 are the Debit domain's Custom range. Code 890 is the sole
// NonMonetary code.
type DetailCode struct {
	Domain DetailDomain
	Code   uint16
	Custom bool
}

// ParseDetailCode classifies a raw code into the Detail taxonomy.
func ParseDetailCode(code uint16) (DetailCode, error) {
	switch {
	case code >= 100 && code <= 399:
		return DetailCode{Domain: DetailCredit, Code: code}, nil
	case code >= 920 && code <= 959:
		return DetailCode{Domain: DetailCredit, Code: code, Custom: true}, nil
	case code >= 400 && code <= 699:
		return DetailCode{Domain: DetailDebit, Code: code}, nil
	case code >= 960 && code <= 999:
		return DetailCode{Domain: DetailDebit, Code: code, Custom: true}, nil
	case code >= 700 && code <= 799:
		return DetailCode{Domain: DetailLoan, Code: code}, nil
	case code == 890:
		return DetailCode{Domain: DetailNonMonetary, Code: code}, nil
	default:
		return DetailCode{}, &InvalidTypeCodeError{Taxonomy: "detail", Code: code}
	}
}

// Int returns the wire-level code, the inverse of ParseDetailCode.
func (c DetailCode) Int() uint16 { return c.Code }

// Name returns a human-readable name for well-known codes, or "" for
// Custom or uncatalogued codes.
func (c DetailCode) Name() string {
	if c.Custom {
		return ""
	}
	switch c.Domain {
	case DetailCredit:
		return detailCreditNames[c.Code]
	case DetailDebit:
		return detailDebitNames[c.Code]
	case DetailLoan:
		return detailLoanNames[c.Code]
	case DetailNonMonetary:
		return "Non-Monetary Information"
	}
	return ""
}

func (c DetailCode) String() string {
	if name := c.Name(); name != "" {
		return fmt.Sprintf("%s(%d, %s)", c.Domain, c.Code, name)
	}
	return fmt.Sprintf("%s(%d)", c.Domain, c.Code)
}
