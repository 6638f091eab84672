package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"go.uber.org/zap"
)

// NoDataMessage é exibida quando o período não tem nenhuma linha.
const NoDataMessage = "Nenhum dado encontrado para o período selecionado."

// ReportUseCase monta e exibe o relatório do DFC.
type ReportUseCase struct {
	dfcRepo   repository.DfcRepository
	prefsRepo repository.PreferencesRepository
	console   types.ConsoleInterface
	selector  dfc.DefaultLineSelector
	logger    *zap.Logger
}

// NewReportUseCase cria o caso de uso do relatório. selector nil usa as
// palavras-chave padrão; logger nil descarta os logs.
func NewReportUseCase(
	dfcRepo repository.DfcRepository,
	prefsRepo repository.PreferencesRepository,
	console types.ConsoleInterface,
	selector dfc.DefaultLineSelector,
	logger *zap.Logger,
) *ReportUseCase {
	if selector == nil {
		selector = dfc.NewKeywordSelector("", "")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportUseCase{
		dfcRepo:   dfcRepo,
		prefsRepo: prefsRepo,
		console:   console,
		selector:  selector,
		logger:    logger,
	}
}

// BuildReport carrega o período, pivota as linhas e calcula layout e gráficos.
// As escolhas explícitas de filters vencem as preferências salvas, e o
// resultado resolvido é gravado de volta para a empresa.
func (uc *ReportUseCase) BuildReport(ctx context.Context, filters entity.ReportFilters) (*entity.DfcReport, error) {
	if filters.EmpresaID == "" {
		return nil, types.ErrMissingEmpresa
	}

	months, err := dfc.BuildMonthRange(filters.Ano, filters.MesInicio, filters.MesFim)
	if err != nil {
		return nil, err
	}

	flat, err := uc.dfcRepo.Execute(ctx, entity.DfcRangeQuery(filters.EmpresaID, months))
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar DFC: %w", err)
	}
	rows := dfc.Aggregate(flat)

	prefs := uc.resolvePreferences(filters, rows)

	layout := dfc.NewLayout(rows, months)
	report := &entity.DfcReport{
		Filters:     filters,
		Months:      months,
		Layout:      layout,
		Lines:       dfc.Lines(layout),
		Paired:      dfc.PairedSeries(months, rows, prefs.Receita, prefs.Despesa, uc.selector),
		Evolution:   dfc.EvolutionSeries(months, rows, prefs.Linha),
		Preferences: prefs,
		Rows:        rows,
		Flat:        flat,
	}

	uc.logger.Debug("dfc report built",
		zap.String("empresa", filters.EmpresaID),
		zap.Strings("months", months),
		zap.Int("flat_rows", len(flat)),
		zap.Int("rows", len(rows)),
		zap.Bool("no_data", layout.NoData))
	return report, nil
}

// resolvePreferences junta preferências salvas, escolhas explícitas e os
// padrões do seletor. Falhas no repositório de preferências não impedem o relatório.
func (uc *ReportUseCase) resolvePreferences(filters entity.ReportFilters, rows []entity.DfcRow) entity.ReportPreferences {
	explicit := entity.ReportPreferences{
		Receita: filters.Receita,
		Despesa: filters.Despesa,
		Linha:   filters.Linha,
	}
	if uc.prefsRepo == nil {
		return dfc.ResolveDefaults(rows, explicit, uc.selector)
	}

	key := entity.PreferencesKey{EmpresaID: filters.EmpresaID, Report: entity.ReportDFC}
	stored, err := uc.prefsRepo.Load(key)
	if err != nil {
		uc.logger.Warn("failed to load preferences", zap.String("key", key.String()), zap.Error(err))
	}

	prefs := dfc.ResolveDefaults(rows, stored.Merge(explicit), uc.selector)
	if !prefs.IsZero() && prefs != stored {
		if err := uc.prefsRepo.Save(key, prefs); err != nil {
			uc.logger.Warn("failed to save preferences", zap.String("key", key.String()), zap.Error(err))
		}
	}
	return prefs
}

// RunReport executa o relatório para a CLI.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) error {
	filters := FiltersFromArgs(args)

	if dfc.IsSwapped(filters.MesInicio, filters.MesFim) {
		uc.console.LogWarning("Mês final ajustado: o período foi invertido para %s a %s", filters.MesFim, filters.MesInicio)
	}

	status := uc.console.Status("Carregando DFC...")
	report, err := uc.BuildReport(ctx, filters)
	status.Stop()
	if err != nil {
		return err
	}

	if args.JSON {
		data, err := json.MarshalIndent(entity.NewExportPayload(report), "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		uc.console.Println(string(data))
		return nil
	}

	if report.Layout.NoData {
		uc.console.LogWarning(NoDataMessage)
		return nil
	}

	uc.console.Print(uc.renderTable(report))
	uc.console.Println(legend(report))
	uc.console.DisplayPairedBars("Receita vs Despesa", pairedValues(report.Paired))
	uc.console.DisplayTrendBars("Evolução: "+lineName(report.Rows, report.Preferences.Linha), monthlyValues(report.Evolution))
	return nil
}

// FiltersFromArgs copia os filtros da linha de comando.
func FiltersFromArgs(args *types.CLIArgs) entity.ReportFilters {
	return entity.ReportFilters{
		EmpresaID: args.Empresa,
		Ano:       args.Ano,
		MesInicio: args.MesInicio,
		MesFim:    args.MesFim,
		Receita:   args.Receita,
		Despesa:   args.Despesa,
		Linha:     args.Linha,
	}
}
