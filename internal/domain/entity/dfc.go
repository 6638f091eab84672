package entity

import "github.com/shopspring/decimal"

// LineType classifica uma linha do DFC.
type LineType string

const (
	LineNormal   LineType = "normal"
	LineSubtotal LineType = "subtotal"
	LineTotal    LineType = "total"
)

// DfcFlatRow é um fato (empresa, mês, linha) como chega da view dfc_mensal_av.
// Os percentuais AV/AH já vêm calculados pela fonte de dados.
type DfcFlatRow struct {
	EmpresaID string          `json:"empresa_id"`
	Mes       string          `json:"mes"` // YYYY-MM-01
	Codigo    string          `json:"codigo"`
	Nome      string          `json:"nome"`
	TipoLinha LineType        `json:"tipo_linha_dfc"`
	Valor     decimal.Decimal `json:"valor"`
	AVPercent *float64        `json:"av_percent"`
	AHPercent *float64        `json:"ah_percent"`
}

// DfcCell guarda o valor e os percentuais de uma linha em um mês.
type DfcCell struct {
	Valor     decimal.Decimal `json:"valor"`
	AVPercent *float64        `json:"av_percent"`
	AHPercent *float64        `json:"ah_percent"`
}

// DfcRow agrupa todos os meses de um mesmo código de linha.
// Meses ausentes em ValoresPorMes significam "sem dado", não zero.
type DfcRow struct {
	Codigo        string             `json:"codigo"`
	Nome          string             `json:"nome"`
	TipoLinha     LineType           `json:"tipo_linha_dfc"`
	ValoresPorMes map[string]DfcCell `json:"valores_por_mes"`
}
