package types

// Fontes de dados suportadas.
const (
	SourceLocal    = "local"
	SourcePostgres = "postgres"
)

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Empresa        string
	Ano            string
	MesInicio      string
	MesFim         string
	Receita        string
	Despesa        string
	Linha          string
	Source         string
	Store          string
	DatabaseURL    string
	Preferences    string
	RevenueKeyword string
	ExpenseKeyword string
	JSON           bool
	Verbose        bool
	Port           string
}
