package dfc

import (
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func flat(codigo, nome string, tipo entity.LineType, mes string, valor int64) entity.DfcFlatRow {
	return entity.DfcFlatRow{
		EmpresaID: "emp-1",
		Mes:       mes,
		Codigo:    codigo,
		Nome:      nome,
		TipoLinha: tipo,
		Valor:     decimal.NewFromInt(valor),
	}
}

func pct(v float64) *float64 {
	return &v
}

func row(codigo, nome string, tipo entity.LineType, values map[string]int64) entity.DfcRow {
	r := entity.DfcRow{
		Codigo:        codigo,
		Nome:          nome,
		TipoLinha:     tipo,
		ValoresPorMes: make(map[string]entity.DfcCell),
	}
	for mes, v := range values {
		r.ValoresPorMes[mes] = entity.DfcCell{Valor: decimal.NewFromInt(v)}
	}
	return r
}
