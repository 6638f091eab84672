package dfc

import "github.com/diillson/dfc-dashboard-go/internal/domain/entity"

// PairedSeries monta o gráfico Receita vs Despesa. Cada código é procurado
// entre as linhas; sem correspondência, a receita cai para o seletor e depois
// para a primeira linha, e a despesa para o seletor e depois para a segunda.
// Meses sem célula contam como zero.
func PairedSeries(months []string, rows []entity.DfcRow, revenueCode, expenseCode string, selector DefaultLineSelector) []entity.PairedPoint {
	if selector == nil {
		selector = NewKeywordSelector("", "")
	}
	revenue := resolveLine(rows, revenueCode, selector.RevenueLine, 0)
	expense := resolveLine(rows, expenseCode, selector.ExpenseLine, 1)

	points := make([]entity.PairedPoint, 0, len(months))
	for _, mes := range months {
		points = append(points, entity.PairedPoint{
			Mes:      mes,
			Receitas: valueAt(revenue, mes),
			Despesas: valueAt(expense, mes),
		})
	}
	return points
}

// EvolutionSeries monta o gráfico de evolução de uma linha, caindo para a
// primeira linha quando o código não existe.
func EvolutionSeries(months []string, rows []entity.DfcRow, lineCode string) []entity.EvolutionPoint {
	row := resolveLine(rows, lineCode, nil, 0)

	points := make([]entity.EvolutionPoint, 0, len(months))
	for _, mes := range months {
		points = append(points, entity.EvolutionPoint{Mes: mes, Valor: valueAt(row, mes)})
	}
	return points
}

// ResolveDefaults devolve as escolhas efetivas para as linhas carregadas.
// Códigos vazios ou que não existem mais nas linhas caem para o mesmo
// fallback usado pelos gráficos. A despesa só é escolhida quando há pelo
// menos duas linhas.
func ResolveDefaults(rows []entity.DfcRow, prefs entity.ReportPreferences, selector DefaultLineSelector) entity.ReportPreferences {
	if selector == nil {
		selector = NewKeywordSelector("", "")
	}
	prefs.Linha = codeOf(resolveLine(rows, prefs.Linha, nil, 0))
	prefs.Receita = codeOf(resolveLine(rows, prefs.Receita, selector.RevenueLine, 0))
	if len(rows) > 1 || hasCode(rows, prefs.Despesa) {
		prefs.Despesa = codeOf(resolveLine(rows, prefs.Despesa, selector.ExpenseLine, 1))
	} else {
		prefs.Despesa = ""
	}
	return prefs
}

func hasCode(rows []entity.DfcRow, code string) bool {
	for i := range rows {
		if rows[i].Codigo == code {
			return true
		}
	}
	return false
}

func codeOf(row *entity.DfcRow) string {
	if row == nil {
		return ""
	}
	return row.Codigo
}

func resolveLine(rows []entity.DfcRow, code string, pick func([]entity.DfcRow) (int, bool), fallback int) *entity.DfcRow {
	if code != "" {
		for i := range rows {
			if rows[i].Codigo == code {
				return &rows[i]
			}
		}
	}
	if pick != nil {
		if i, ok := pick(rows); ok && i >= 0 && i < len(rows) {
			return &rows[i]
		}
	}
	if fallback < len(rows) {
		return &rows[fallback]
	}
	return nil
}

func valueAt(row *entity.DfcRow, mes string) float64 {
	if row == nil {
		return 0
	}
	cell, ok := row.ValoresPorMes[mes]
	if !ok {
		return 0
	}
	return cell.Valor.InexactFloat64()
}
