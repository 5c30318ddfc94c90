package model

import "fmt"

// Currency is the ambient display preference for the whole session. It is
// never stored per-transaction; changing it only affects how consumers
// format amounts.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SupportedCurrencies returns the fixed table of selectable currencies.
func SupportedCurrencies() []Currency {
	return []Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar"},
		{Code: "EUR", Symbol: "€", Name: "Euro"},
		{Code: "GBP", Symbol: "£", Name: "British Pound"},
		{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
		{Code: "CAD", Symbol: "$", Name: "Canadian Dollar"},
		{Code: "AUD", Symbol: "$", Name: "Australian Dollar"},
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	}
}

// DefaultCurrency is used when no preference is persisted or the persisted
// code is not in the supported table.
func DefaultCurrency() Currency {
	return SupportedCurrencies()[0]
}

// LookupCurrency resolves a currency code against the supported table.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range SupportedCurrencies() {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Format renders an amount with the currency symbol, e.g. "$45.99".
func (c Currency) Format(amount float64) string {
	return fmt.Sprintf("%s%.2f", c.Symbol, amount)
}
