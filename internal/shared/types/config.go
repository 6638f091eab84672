package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Empresa     string         `json:"empresa" yaml:"empresa" toml:"empresa"`
	Ano         string         `json:"ano" yaml:"ano" toml:"ano"`
	MesInicio   string         `json:"mes_inicio" yaml:"mes_inicio" toml:"mes_inicio"`
	MesFim      string         `json:"mes_fim" yaml:"mes_fim" toml:"mes_fim"`
	Receita     string         `json:"receita" yaml:"receita" toml:"receita"`
	Despesa     string         `json:"despesa" yaml:"despesa" toml:"despesa"`
	Linha       string         `json:"linha" yaml:"linha" toml:"linha"`
	Source      string         `json:"source" yaml:"source" toml:"source"`
	Store       string         `json:"store" yaml:"store" toml:"store"`
	DatabaseURL string         `json:"database_url" yaml:"database_url" toml:"database_url"`
	Preferences string         `json:"preferences" yaml:"preferences" toml:"preferences"`
	Selector    SelectorConfig `json:"selector" yaml:"selector" toml:"selector"`
}

// SelectorConfig troca as palavras-chave usadas para escolher as linhas padrão dos gráficos.
type SelectorConfig struct {
	RevenueKeyword string `json:"revenue_keyword" yaml:"revenue_keyword" toml:"revenue_keyword"`
	ExpenseKeyword string `json:"expense_keyword" yaml:"expense_keyword" toml:"expense_keyword"`
}
