package entity

// PairedPoint é um ponto do gráfico Receita vs Despesa.
type PairedPoint struct {
	Mes      string  `json:"mes"`
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
}

// EvolutionPoint é um ponto do gráfico de evolução mensal de uma linha.
type EvolutionPoint struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}
