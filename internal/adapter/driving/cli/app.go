package cli

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/diillson/dfc-dashboard-go/internal/adapter/driven/local"
	"github.com/diillson/dfc-dashboard-go/internal/adapter/driving/api"
	"github.com/diillson/dfc-dashboard-go/internal/application/usecase"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"github.com/diillson/dfc-dashboard-go/internal/shared/logging"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/diillson/dfc-dashboard-go/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	version    string
	console    types.ConsoleInterface
	configRepo repository.ConfigRepository
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, console types.ConsoleInterface, configRepo repository.ConfigRepository) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		console:    console,
		configRepo: configRepo,
	}

	rootCmd := &cobra.Command{
		Use:           "dfc-dashboard",
		Short:         "Demonstrativo de Fluxo de Caixa (DFC) com AV/AH e gráficos",
		Version:       version.FormatVersion(),
		RunE:          app.runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{printf "DFC Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("empresa", "e", "", "Empresa (empresa_id) do relatório")
	flags.StringP("ano", "a", strconv.Itoa(time.Now().Year()), "Ano do relatório (YYYY)")
	flags.StringP("mes-inicio", "i", "01", "Mês inicial (01-12)")
	flags.StringP("mes-fim", "f", "12", "Mês final (01-12)")
	flags.String("receita", "", "Código da linha de receitas do gráfico Receita vs Despesa")
	flags.String("despesa", "", "Código da linha de despesas do gráfico Receita vs Despesa")
	flags.StringP("linha", "l", "", "Código da linha do gráfico de evolução")
	flags.StringP("source", "s", types.SourceLocal, "Fonte de dados: local ou postgres")
	flags.String("store", "", "Arquivo da base local (default: <user config dir>/dfc-dashboard/store.json)")
	flags.String("database-url", "", "Postgres connection URL (or DFC_DATABASE_URL)")
	flags.String("prefs", "", "Arquivo de preferências (default: <user config dir>/dfc-dashboard/preferences.json)")
	flags.String("revenue-keyword", "", "Palavra-chave da linha padrão de receitas")
	flags.String("expense-keyword", "", "Palavra-chave da linha padrão de despesas")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().Bool("json", false, "Imprime o payload de exportação em JSON em vez das tabelas")

	seedCmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Importa linhas do DFC (JSON ou YAML) para a base local",
		Args:  cobra.ExactArgs(1),
		RunE:  app.runSeed,
	}
	seedCmd.Flags().Bool("reset", false, "Apaga toda a base local antes de importar")
	seedCmd.Flags().Bool("replace", false, "Remove as linhas já gravadas das empresas do arquivo antes de importar")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Expõe o relatório do DFC via HTTP",
		RunE:  app.runServe,
	}
	serveCmd.Flags().StringP("port", "p", "8084", "Porta HTTP")

	rootCmd.AddCommand(seedCmd, serveCmd)
	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs lê as flags e aplica, nesta ordem de prioridade, flag explícita,
// arquivo de configuração, variáveis de ambiente e defaults.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	get := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	getBool := func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}

	args := &types.CLIArgs{
		ConfigFile:     get("config-file"),
		Empresa:        get("empresa"),
		Ano:            get("ano"),
		MesInicio:      get("mes-inicio"),
		MesFim:         get("mes-fim"),
		Receita:        get("receita"),
		Despesa:        get("despesa"),
		Linha:          get("linha"),
		Source:         get("source"),
		Store:          get("store"),
		DatabaseURL:    get("database-url"),
		Preferences:    get("prefs"),
		RevenueKeyword: get("revenue-keyword"),
		ExpenseKeyword: get("expense-keyword"),
		JSON:           getBool("json"),
		Verbose:        getBool("verbose"),
		Port:           get("port"),
	}

	// .env é opcional
	_ = godotenv.Load()

	applyEnv(args, os.Getenv, flags.Changed)

	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		mergeConfig(args, cfg, flags.Changed)
	}

	if err := resolvePaths(args); err != nil {
		return nil, err
	}
	return args, nil
}

// runReport é o ponto de entrada do relatório (comando raiz).
func (app *CLIApp) runReport(cmd *cobra.Command, _ []string) error {
	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	if !args.JSON {
		displayWelcomeBanner()
		go version.CheckLatestVersion(contextOf(cmd), app.version)
	}

	logger := logging.New(args.Verbose)
	defer func() { _ = logger.Sync() }()

	ctx := contextOf(cmd)
	deps, err := newDependencies(ctx, args, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	reportUseCase := usecase.NewReportUseCase(deps.dfcRepo, deps.prefsRepo, app.console, deps.selector, logger)
	return reportUseCase.RunReport(ctx, args)
}

// runSeed importa um arquivo de linhas para a base local.
func (app *CLIApp) runSeed(cmd *cobra.Command, positional []string) error {
	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}
	logger := logging.New(args.Verbose)
	defer func() { _ = logger.Sync() }()

	rows, err := local.LoadSeedFile(positional[0])
	if err != nil {
		return err
	}

	store, err := local.NewStore(args.Store)
	if err != nil {
		return err
	}
	writer := local.NewDfcRepository(store, logger)

	var opts usecase.SeedOptions
	opts.Reset, _ = cmd.Flags().GetBool("reset")
	opts.Replace, _ = cmd.Flags().GetBool("replace")

	n, err := usecase.NewSeedUseCase(writer, app.console, logger).Seed(contextOf(cmd), rows, opts)
	if err != nil {
		return err
	}
	app.console.LogSuccess("%d linhas importadas em %s", n, args.Store)
	return nil
}

// runServe sobe a API HTTP até receber SIGINT/SIGTERM.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	args, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(args.Verbose)
	if !args.Verbose {
		logger = logging.NewProduction()
		gin.SetMode(gin.ReleaseMode)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newDependencies(ctx, args, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	reportUseCase := usecase.NewReportUseCase(deps.dfcRepo, deps.prefsRepo, app.console, deps.selector, logger)
	router := api.NewRouter(reportUseCase, logger)

	app.console.LogInfo("DFC Dashboard API escutando na porta %s (fonte: %s)", args.Port, args.Source)
	return api.Serve(ctx, ":"+args.Port, router, logger)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
