package entity

// ReportFilters são os filtros da tela do DFC.
type ReportFilters struct {
	EmpresaID string `json:"empresa_id"`
	Ano       string `json:"ano"`
	MesInicio string `json:"mes_inicio"`
	MesFim    string `json:"mes_fim"`
	Receita   string `json:"receita,omitempty"`
	Despesa   string `json:"despesa,omitempty"`
	Linha     string `json:"linha,omitempty"`
}

// DfcReport reúne tudo o que a tabela e os gráficos precisam para um filtro.
type DfcReport struct {
	Filters     ReportFilters     `json:"filtros"`
	Months      []string          `json:"meses"`
	Layout      DfcLayout         `json:"layout"`
	Lines       []LayoutLine      `json:"linhas"`
	Paired      []PairedPoint     `json:"receita_despesa"`
	Evolution   []EvolutionPoint  `json:"evolucao"`
	Preferences ReportPreferences `json:"preferencias"`

	// Rows e Flat mantêm a ordem original e as linhas brutas para o exportador.
	Rows []DfcRow     `json:"-"`
	Flat []DfcFlatRow `json:"-"`
}
