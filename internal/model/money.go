package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseAmount converts a pt-BR formatted amount ("1.234,56") into a
// number. Dots are thousands separators and the comma is the decimal
// separator. Empty, non-numeric and non-finite input is rejected.
func ParseAmount(amount string) (float64, error) {
	raw := strings.TrimSpace(amount)
	if raw == "" {
		return 0, fmt.Errorf("amount is empty")
	}

	normalized := strings.ReplaceAll(raw, ".", "")
	normalized = strings.Replace(normalized, ",", ".", 1)

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid amount %q", amount)
	}
	return value, nil
}

// FormatBRL renders a value as Brazilian currency, e.g. "R$ 1.234,56".
func FormatBRL(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}
	return brPrinter.Sprintf("R$ %.2f", value)
}
