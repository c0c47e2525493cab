// Package bai2currency provides the default bai2.CurrencyLookup
// implementation, built on golang.org/x/text/currency's ISO-4217 table.
package bai2currency

import (
	"strings"

	"golang.org/x/text/currency"

	"github.com/greenline-fi/bai2/internal/model"
)

// FromISOText resolves a three-letter code against golang.org/x/text's
// ISO-4217 currency table.
type FromISOText struct{}

// Lookup implements bai2.CurrencyLookup.
func (FromISOText) Lookup(code string) (model.Currency, error) {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return model.Currency{}, &model.UnknownCurrencyError{Code: code}
	}
	return model.Currency{Code: unit.String()}, nil
}
