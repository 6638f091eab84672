package dfc

import (
	"math"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
)

// Aggregate agrupa as linhas planas por código, na ordem em que cada código
// aparece pela primeira vez. Um par (código, mês) repetido sobrescreve o
// anterior; nome e tipo da linha seguem a última ocorrência.
func Aggregate(rows []entity.DfcFlatRow) []entity.DfcRow {
	out := make([]entity.DfcRow, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Codigo]
		if !ok {
			i = len(out)
			index[row.Codigo] = i
			out = append(out, entity.DfcRow{
				Codigo:        row.Codigo,
				ValoresPorMes: make(map[string]entity.DfcCell),
			})
		}
		out[i].Nome = row.Nome
		out[i].TipoLinha = row.TipoLinha
		out[i].ValoresPorMes[row.Mes] = entity.DfcCell{
			Valor:     row.Valor,
			AVPercent: copyPercent(row.AVPercent),
			AHPercent: copyPercent(row.AHPercent),
		}
	}
	return out
}

// copyPercent copia o percentual; NaN e ±Inf viram nulo.
func copyPercent(p *float64) *float64 {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return nil
	}
	v := *p
	return &v
}
