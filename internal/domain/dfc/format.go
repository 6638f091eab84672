package dfc

import (
	"fmt"
	"math"
	"time"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noValue = "-"

var monthAbbrev = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// FormatCurrency formata um valor em reais no padrão pt-BR.
func FormatCurrency(v decimal.Decimal) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	amount := p.Sprintf("%.2f", v.Abs().Round(2).InexactFloat64())
	if v.Round(2).IsNegative() {
		return "-R$ " + amount
	}
	return "R$ " + amount
}

// FormatCell formata uma célula da tabela; sem dado vira "-".
func FormatCell(c entity.CellView) string {
	if !c.Present {
		return noValue
	}
	return FormatCurrency(c.Valor)
}

// FormatPercent formata AV%/AH%; nulo, não finito ou sem célula vira "-".
func FormatPercent(p entity.PercentView) string {
	if !p.Valid() || math.IsNaN(*p.Value) || math.IsInf(*p.Value, 0) {
		return noValue
	}
	return fmt.Sprintf("%.2f%%", *p.Value)
}

// FormatMonth transforma "2024-03-01" em "mar/24".
func FormatMonth(mes string) string {
	t, err := time.Parse("2006-01-02", mes)
	if err != nil {
		return mes
	}
	return fmt.Sprintf("%s/%02d", monthAbbrev[t.Month()-1], t.Year()%100)
}
