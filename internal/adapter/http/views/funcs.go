package views

import (
	"errors"
	"gestao_orcamentos/internal/domain/entities"
	"html/template"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Funcs is the func map shared by every page.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":       Money,
		"qty":         Quantity,
		"statusClass": StatusClass,
		"tipoLabel":   func(t entities.OrcamentoTipo) string { return t.Label() },
		"dict":        dict,
	}
}

// Money formats a value as Brazilian currency, e.g. "R$ 1.234,56".
func Money(d decimal.Decimal) string {
	return "R$ " + humanize.FormatFloat("#.###,##", d.Round(2).InexactFloat64())
}

// Quantity formats a quantity with Brazilian separators and at most three
// decimals, dropping trailing zeros.
func Quantity(d decimal.Decimal) string {
	s := humanize.FormatFloat("#.###,###", d.Round(3).InexactFloat64())
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ",")
}

// StatusClass maps budget and measurement statuses to a badge css class.
func StatusClass(status any) string {
	switch status {
	case entities.OrcamentoStatusAberto, entities.MedicaoStatusAberta:
		return "badge badge-aberto"
	case entities.OrcamentoStatusFinalizado, entities.MedicaoStatusValidada:
		return "badge badge-fechado"
	}
	return "badge"
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict: keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
