package dfc

import (
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
)

// Depth retorna o nível hierárquico de um código: "1" é 0, "1.2" é 1.
func Depth(codigo string) int {
	return strings.Count(codigo, ".")
}

// IsHighlighted informa se a linha é subtotal ou total.
func IsHighlighted(row entity.DfcRow) bool {
	return row.TipoLinha != entity.LineNormal
}

// NewLayout organiza as linhas para a tabela. O total mais raso é retirado
// do corpo e exposto em PinnedTotal; em empate vence o que apareceu primeiro.
// O mês de referência dos percentuais é o último mês do intervalo.
func NewLayout(rows []entity.DfcRow, months []string) entity.DfcLayout {
	layout := entity.DfcLayout{
		Months:   append([]string{}, months...),
		BodyRows: make([]entity.DfcRow, 0, len(rows)),
	}
	if len(months) > 0 {
		layout.ReferenceMonth = months[len(months)-1]
	}

	pinned := grandTotalIndex(rows)
	for i, row := range rows {
		if i == pinned {
			total := row
			layout.PinnedTotal = &total
			continue
		}
		layout.BodyRows = append(layout.BodyRows, row)
	}
	layout.NoData = len(layout.BodyRows) == 0
	return layout
}

func grandTotalIndex(rows []entity.DfcRow) int {
	best, bestDepth := -1, 0
	for i, row := range rows {
		if row.TipoLinha != entity.LineTotal {
			continue
		}
		if d := Depth(row.Codigo); best < 0 || d < bestDepth {
			best, bestDepth = i, d
		}
	}
	return best
}

// Cell retorna o valor da linha no mês. Sem célula, Present é false.
func Cell(row entity.DfcRow, mes string) entity.CellView {
	cell, ok := row.ValoresPorMes[mes]
	if !ok {
		return entity.CellView{Mes: mes}
	}
	return entity.CellView{Mes: mes, Valor: cell.Valor, Present: true}
}

// Reference retorna AV% e AH% da linha no mês de referência.
func Reference(row entity.DfcRow, mes string) (av, ah entity.PercentView) {
	cell, ok := row.ValoresPorMes[mes]
	if mes == "" || !ok {
		none := entity.PercentView{State: entity.PercentNoCell}
		return none, none
	}
	return percentView(cell.AVPercent), percentView(cell.AHPercent)
}

func percentView(p *float64) entity.PercentView {
	v := copyPercent(p)
	if v == nil {
		return entity.PercentView{State: entity.PercentNull}
	}
	return entity.PercentView{Value: v, State: entity.PercentValue}
}

// Lines devolve as linhas na ordem de desenho: total no topo, corpo e total
// no rodapé.
func Lines(layout entity.DfcLayout) []entity.LayoutLine {
	lines := make([]entity.LayoutLine, 0, len(layout.BodyRows)+2)
	if layout.PinnedTotal != nil {
		lines = append(lines, line(*layout.PinnedTotal, layout, entity.PositionTop))
	}
	for _, row := range layout.BodyRows {
		lines = append(lines, line(row, layout, entity.PositionBody))
	}
	if layout.PinnedTotal != nil {
		lines = append(lines, line(*layout.PinnedTotal, layout, entity.PositionBottom))
	}
	return lines
}

func line(row entity.DfcRow, layout entity.DfcLayout, pos entity.LinePosition) entity.LayoutLine {
	cells := make([]entity.CellView, 0, len(layout.Months))
	for _, mes := range layout.Months {
		cells = append(cells, Cell(row, mes))
	}
	av, ah := Reference(row, layout.ReferenceMonth)
	return entity.LayoutLine{
		Codigo:    row.Codigo,
		Nome:      row.Nome,
		TipoLinha: row.TipoLinha,
		Depth:     Depth(row.Codigo),
		Highlight: IsHighlighted(row),
		Position:  pos,
		Cells:     cells,
		AV:        av,
		AH:        ah,
	}
}
