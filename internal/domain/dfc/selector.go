package dfc

import (
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"golang.org/x/text/cases"
)

const (
	DefaultRevenueKeyword = "receita"
	DefaultExpenseKeyword = "despesa"
)

// DefaultLineSelector escolhe as linhas padrão dos gráficos quando o usuário
// ainda não escolheu nenhuma. Retorna o índice em rows.
type DefaultLineSelector interface {
	RevenueLine(rows []entity.DfcRow) (int, bool)
	ExpenseLine(rows []entity.DfcRow) (int, bool)
}

// KeywordSelector escolhe a primeira linha cujo nome contém a palavra-chave,
// ignorando maiúsculas e minúsculas.
type KeywordSelector struct {
	RevenueKeyword string
	ExpenseKeyword string
}

// NewKeywordSelector cria um seletor; palavras vazias usam "receita" e "despesa".
func NewKeywordSelector(revenue, expense string) KeywordSelector {
	if strings.TrimSpace(revenue) == "" {
		revenue = DefaultRevenueKeyword
	}
	if strings.TrimSpace(expense) == "" {
		expense = DefaultExpenseKeyword
	}
	return KeywordSelector{RevenueKeyword: revenue, ExpenseKeyword: expense}
}

// RevenueLine implementa DefaultLineSelector.
func (s KeywordSelector) RevenueLine(rows []entity.DfcRow) (int, bool) {
	return findByName(rows, s.RevenueKeyword)
}

// ExpenseLine implementa DefaultLineSelector.
func (s KeywordSelector) ExpenseLine(rows []entity.DfcRow) (int, bool) {
	return findByName(rows, s.ExpenseKeyword)
}

func findByName(rows []entity.DfcRow, keyword string) (int, bool) {
	if keyword == "" {
		return -1, false
	}
	fold := cases.Fold()
	needle := fold.String(keyword)
	for i, row := range rows {
		if strings.Contains(fold.String(row.Nome), needle) {
			return i, true
		}
	}
	return -1, false
}
