package entities

import "github.com/shopspring/decimal"

const DefaultCurrency = "INR"

// RupeesToMinor converts a whole-rupee amount to paise.
func RupeesToMinor(rupees int64) int64 {
	return rupees * 100
}

// FormatMinor renders a paise amount as a fixed two-decimal rupee string ("500.00").
func FormatMinor(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
