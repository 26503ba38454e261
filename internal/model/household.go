package model

import "slices"

// People lists the household members allowed to log in. The
// spreadsheet's Pessoas tab is the source of truth; this list mirrors
// it for local selection.
var People = []string{"Luciano", "Sérgio", "Adriana", "Mariana"}

// Categories is the fixed set of expense categories.
var Categories = []string{"Mercado", "Combustível", "Lazer", "Contas", "Saúde", "Outros"}

// IsPerson reports whether name is a known household member.
func IsPerson(name string) bool {
	return slices.Contains(People, name)
}

// IsCategory reports whether name is a known expense category.
func IsCategory(name string) bool {
	return slices.Contains(Categories, name)
}
