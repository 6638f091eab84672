package cli

import (
	"os"
	"path/filepath"

	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
)

// Variáveis de ambiente lidas (também via .env).
const (
	envDatabaseURL = "DFC_DATABASE_URL"
	envSource      = "DFC_SOURCE"
	envStore       = "DFC_STORE"
	envEmpresa     = "DFC_EMPRESA"
)

const appDirName = "dfc-dashboard"

// applyEnv preenche os campos cujas flags não foram informadas.
func applyEnv(args *types.CLIArgs, getenv func(string) string, changed func(string) bool) {
	set := func(flag string, dst *string, env string) {
		if changed(flag) {
			return
		}
		if v := getenv(env); v != "" {
			*dst = v
		}
	}
	set("database-url", &args.DatabaseURL, envDatabaseURL)
	set("source", &args.Source, envSource)
	set("store", &args.Store, envStore)
	set("empresa", &args.Empresa, envEmpresa)
}

// mergeConfig aplica os valores do arquivo sobre tudo o que não veio por flag.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(string) bool) {
	set := func(flag string, dst *string, value string) {
		if value != "" && !changed(flag) {
			*dst = value
		}
	}
	set("empresa", &args.Empresa, cfg.Empresa)
	set("ano", &args.Ano, cfg.Ano)
	set("mes-inicio", &args.MesInicio, cfg.MesInicio)
	set("mes-fim", &args.MesFim, cfg.MesFim)
	set("receita", &args.Receita, cfg.Receita)
	set("despesa", &args.Despesa, cfg.Despesa)
	set("linha", &args.Linha, cfg.Linha)
	set("source", &args.Source, cfg.Source)
	set("store", &args.Store, cfg.Store)
	set("database-url", &args.DatabaseURL, cfg.DatabaseURL)
	set("prefs", &args.Preferences, cfg.Preferences)
	set("revenue-keyword", &args.RevenueKeyword, cfg.Selector.RevenueKeyword)
	set("expense-keyword", &args.ExpenseKeyword, cfg.Selector.ExpenseKeyword)
}

// resolvePaths coloca base local e preferências no diretório de configuração
// do usuário quando não informados.
func resolvePaths(args *types.CLIArgs) error {
	if args.Store != "" && args.Preferences != "" {
		return nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(base, appDirName)
	if args.Store == "" {
		args.Store = filepath.Join(dir, "store.json")
	}
	if args.Preferences == "" {
		args.Preferences = filepath.Join(dir, "preferences.json")
	}
	return nil
}
