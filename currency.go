package bai2

import "github.com/greenline-fi/bai2/internal/model"

// Currency is an opaque reference to a resolved currency, as returned by a
// CurrencyLookup. The core never inspects its contents.
type Currency = model.Currency

// CurrencyLookup resolves a three-letter uppercase ASCII currency code to
// a Currency reference. It is the abstract currency collaborator the core
// depends on; bai2currency.FromISOText is the default implementation.
type CurrencyLookup = model.CurrencyLookup

// UnknownCurrencyError is returned by a CurrencyLookup when code is not a
// recognized currency.
type UnknownCurrencyError = model.UnknownCurrencyError
