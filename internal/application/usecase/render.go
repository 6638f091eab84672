package usecase

import (
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// renderTable desenha o DFC com o total geral fixo no topo e no rodapé.
func (uc *ReportUseCase) renderTable(report *entity.DfcReport) string {
	table := uc.console.CreateTable()
	table.AddColumn("Código")
	table.AddColumn("Descrição")
	for _, mes := range report.Months {
		table.AddColumn(dfc.FormatMonth(mes))
	}
	table.AddColumn("AV%")
	table.AddColumn("AH%")

	for _, line := range report.Lines {
		table.AddRow(lineCells(line)...)
	}
	return table.Render()
}

func lineCells(line entity.LayoutLine) []interface{} {
	cells := make([]interface{}, 0, len(line.Cells)+4)

	name := strings.Repeat("  ", line.Depth) + line.Nome
	codigo := line.Codigo
	if line.Highlight {
		name = pterm.Bold.Sprint(name)
		codigo = pterm.Bold.Sprint(codigo)
	}
	cells = append(cells, codigo, name)

	for _, c := range line.Cells {
		value := dfc.FormatCell(c)
		switch {
		case c.Negative():
			value = pterm.FgRed.Sprint(value)
		case line.Highlight:
			value = pterm.Bold.Sprint(value)
		}
		cells = append(cells, value)
	}

	cells = append(cells, dfc.FormatPercent(line.AV), dfc.FormatPercent(line.AH))
	return cells
}

func legend(report *entity.DfcReport) string {
	ref := report.Layout.ReferenceMonth
	return pterm.FgGray.Sprintf(
		"Valores em R$. AV%% e AH%% referentes a %s. Linhas em negrito são subtotais e totais; negativos em vermelho; \"-\" indica mês sem lançamento.",
		dfc.FormatMonth(ref),
	)
}

func pairedValues(points []entity.PairedPoint) []types.PairedValue {
	out := make([]types.PairedValue, 0, len(points))
	for _, p := range points {
		out = append(out, types.PairedValue{Month: dfc.FormatMonth(p.Mes), Receitas: p.Receitas, Despesas: p.Despesas})
	}
	return out
}

func monthlyValues(points []entity.EvolutionPoint) []types.MonthlyValue {
	out := make([]types.MonthlyValue, 0, len(points))
	for _, p := range points {
		out = append(out, types.MonthlyValue{Month: dfc.FormatMonth(p.Mes), Value: p.Valor})
	}
	return out
}

func lineName(rows []entity.DfcRow, codigo string) string {
	for _, r := range rows {
		if r.Codigo == codigo {
			return r.Nome
		}
	}
	return codigo
}
