package entity

// ReportDFC identifica o relatório de fluxo de caixa nas preferências.
const ReportDFC = "dfc"

// PreferencesKey escopa as preferências por empresa e relatório,
// evitando que a linha escolhida em uma empresa vaze para outra.
type PreferencesKey struct {
	EmpresaID string
	Report    string
}

// String retorna a chave usada no armazenamento.
func (k PreferencesKey) String() string {
	return k.EmpresaID + "|" + k.Report
}

// ReportPreferences guarda as linhas escolhidas para os gráficos.
type ReportPreferences struct {
	Receita string `json:"receita,omitempty"`
	Despesa string `json:"despesa,omitempty"`
	Linha   string `json:"linha,omitempty"`
}

// Merge retorna p com os campos não vazios de override aplicados por cima.
func (p ReportPreferences) Merge(override ReportPreferences) ReportPreferences {
	if override.Receita != "" {
		p.Receita = override.Receita
	}
	if override.Despesa != "" {
		p.Despesa = override.Despesa
	}
	if override.Linha != "" {
		p.Linha = override.Linha
	}
	return p
}

// IsZero informa se nenhuma linha foi escolhida.
func (p ReportPreferences) IsZero() bool {
	return p.Receita == "" && p.Despesa == "" && p.Linha == ""
}
