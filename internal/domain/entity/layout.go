package entity

import "github.com/shopspring/decimal"

// DfcLayout é a tabela do DFC pronta para exibição.
// PinnedTotal aparece fixo no topo e no rodapé e não se repete em BodyRows.
type DfcLayout struct {
	Months         []string `json:"meses"`
	ReferenceMonth string   `json:"mes_referencia,omitempty"`
	PinnedTotal    *DfcRow  `json:"total_geral,omitempty"`
	BodyRows       []DfcRow `json:"linhas"`
	NoData         bool     `json:"sem_dados"`
}

// LinePosition indica onde uma linha é desenhada na tabela.
type LinePosition string

const (
	PositionTop    LinePosition = "topo"
	PositionBody   LinePosition = "corpo"
	PositionBottom LinePosition = "rodape"
)

// CellView é o valor de uma célula da tabela. Present=false é exibido como "-".
type CellView struct {
	Mes     string          `json:"mes"`
	Valor   decimal.Decimal `json:"valor"`
	Present bool            `json:"presente"`
}

// Negative informa se a célula deve ser destacada como valor negativo.
func (c CellView) Negative() bool {
	return c.Present && c.Valor.IsNegative()
}

// PercentState distingue um percentual válido de um percentual nulo
// e de uma linha sem célula no mês de referência.
type PercentState string

const (
	PercentValue  PercentState = "valor"
	PercentNull   PercentState = "nulo"
	PercentNoCell PercentState = "sem_celula"
)

// PercentView é o AV% ou AH% de uma linha no mês de referência.
type PercentView struct {
	Value *float64     `json:"valor"`
	State PercentState `json:"estado"`
}

// Valid retorna true quando há um percentual para exibir.
func (p PercentView) Valid() bool {
	return p.State == PercentValue && p.Value != nil
}

// LayoutLine é uma linha já posicionada, com indentação e destaque resolvidos.
type LayoutLine struct {
	Codigo    string       `json:"codigo"`
	Nome      string       `json:"nome"`
	TipoLinha LineType     `json:"tipo_linha_dfc"`
	Depth     int          `json:"nivel"`
	Highlight bool         `json:"destaque"`
	Position  LinePosition `json:"posicao"`
	Cells     []CellView   `json:"celulas"`
	AV        PercentView  `json:"av_percent"`
	AH        PercentView  `json:"ah_percent"`
}
