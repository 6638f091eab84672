package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/shopspring/decimal"
)

func pct(v float64) *float64 { return &v }

func flat(codigo, nome string, tipo entity.LineType, mes string, valor int64) entity.DfcFlatRow {
	return entity.DfcFlatRow{
		EmpresaID: "emp-1",
		Mes:       mes,
		Codigo:    codigo,
		Nome:      nome,
		TipoLinha: tipo,
		Valor:     decimal.NewFromInt(valor),
	}
}

func sampleFlat() []entity.DfcFlatRow {
	total := flat("9", "Geração de Caixa", entity.LineTotal, "2024-02-01", 300)
	total.AVPercent = pct(100)
	total.AHPercent = pct(50)
	return []entity.DfcFlatRow{
		flat("1", "Receitas Operacionais", entity.LineSubtotal, "2024-01-01", 1000),
		flat("1", "Receitas Operacionais", entity.LineSubtotal, "2024-02-01", 1200),
		flat("1.1", "Vendas", entity.LineNormal, "2024-01-01", 1000),
		flat("2", "Despesas Operacionais", entity.LineSubtotal, "2024-01-01", -800),
		flat("2", "Despesas Operacionais", entity.LineSubtotal, "2024-02-01", -900),
		flat("9", "Geração de Caixa", entity.LineTotal, "2024-01-01", 200),
		total,
	}
}

func baseFilters() entity.ReportFilters {
	return entity.ReportFilters{EmpresaID: "emp-1", Ano: "2024", MesInicio: "01", MesFim: "02"}
}

func TestBuildReport(t *testing.T) {
	repo := &fakeDfcRepo{rows: sampleFlat()}
	prefs := newFakePrefsRepo()
	uc := NewReportUseCase(repo, prefs, &fakeConsole{}, nil, nil)

	report, err := uc.BuildReport(context.Background(), baseFilters())
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}

	if len(repo.queries) != 1 {
		t.Fatalf("Execute() called %d times, want 1", len(repo.queries))
	}
	q := repo.queries[0]
	if q.Table != entity.DfcTable || len(q.Filters) != 3 || len(q.Orders) != 2 {
		t.Errorf("query = %+v", q)
	}

	if got := report.Months; len(got) != 2 || got[0] != "2024-01-01" || got[1] != "2024-02-01" {
		t.Errorf("Months = %v", got)
	}
	if report.Layout.PinnedTotal == nil || report.Layout.PinnedTotal.Codigo != "9" {
		t.Fatalf("PinnedTotal = %+v, want code 9", report.Layout.PinnedTotal)
	}
	if len(report.Layout.BodyRows) != 3 {
		t.Errorf("BodyRows = %d, want 3", len(report.Layout.BodyRows))
	}
	if len(report.Lines) != 5 {
		t.Errorf("Lines = %d, want 5 (top + 3 body + bottom)", len(report.Lines))
	}

	want := entity.ReportPreferences{Receita: "1", Despesa: "2", Linha: "1"}
	if report.Preferences != want {
		t.Errorf("Preferences = %+v, want %+v", report.Preferences, want)
	}
	if report.Paired[1].Receitas != 1200 || report.Paired[1].Despesas != -900 {
		t.Errorf("Paired[1] = %+v", report.Paired[1])
	}
	if report.Evolution[0].Valor != 1000 {
		t.Errorf("Evolution[0] = %+v", report.Evolution[0])
	}

	stored, _ := prefs.Load(entity.PreferencesKey{EmpresaID: "emp-1", Report: entity.ReportDFC})
	if stored != want {
		t.Errorf("stored preferences = %+v, want %+v", stored, want)
	}
}

func TestBuildReportPreferences(t *testing.T) {
	key := entity.PreferencesKey{EmpresaID: "emp-1", Report: entity.ReportDFC}

	t.Run("stored choices are reused", func(t *testing.T) {
		prefs := newFakePrefsRepo()
		prefs.data[key.String()] = entity.ReportPreferences{Receita: "1.1", Despesa: "2", Linha: "2"}
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, prefs, &fakeConsole{}, nil, nil)

		report, err := uc.BuildReport(context.Background(), baseFilters())
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}
		if report.Preferences.Linha != "2" || report.Evolution[1].Valor != -900 {
			t.Errorf("evolution did not follow stored line: %+v", report.Evolution)
		}
		if prefs.saves != 0 {
			t.Errorf("unchanged preferences saved %d times", prefs.saves)
		}
	})

	t.Run("explicit choice wins", func(t *testing.T) {
		prefs := newFakePrefsRepo()
		prefs.data[key.String()] = entity.ReportPreferences{Receita: "1", Despesa: "2", Linha: "2"}
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, prefs, &fakeConsole{}, nil, nil)

		filters := baseFilters()
		filters.Linha = "9"
		report, _ := uc.BuildReport(context.Background(), filters)
		if report.Preferences.Linha != "9" {
			t.Errorf("Linha = %q, want 9", report.Preferences.Linha)
		}
		if prefs.data[key.String()].Linha != "9" {
			t.Errorf("explicit choice was not persisted")
		}
	})

	t.Run("other empresa is isolated", func(t *testing.T) {
		prefs := newFakePrefsRepo()
		other := entity.PreferencesKey{EmpresaID: "emp-2", Report: entity.ReportDFC}
		prefs.data[other.String()] = entity.ReportPreferences{Linha: "2"}
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, prefs, &fakeConsole{}, nil, nil)

		report, _ := uc.BuildReport(context.Background(), baseFilters())
		if report.Preferences.Linha != "1" {
			t.Errorf("Linha = %q, want default 1", report.Preferences.Linha)
		}
	})

	t.Run("load failure falls back to defaults", func(t *testing.T) {
		prefs := newFakePrefsRepo()
		prefs.loadErr = errBoom
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, prefs, &fakeConsole{}, nil, nil)

		report, err := uc.BuildReport(context.Background(), baseFilters())
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}
		if report.Preferences.Receita != "1" {
			t.Errorf("Receita = %q, want 1", report.Preferences.Receita)
		}
	})

	t.Run("stale codes are replaced and persisted", func(t *testing.T) {
		prefs := newFakePrefsRepo()
		prefs.data[key.String()] = entity.ReportPreferences{Receita: "old-r", Despesa: "old-d", Linha: "old-l"}
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, prefs, &fakeConsole{}, nil, nil)

		report, err := uc.BuildReport(context.Background(), baseFilters())
		if err != nil {
			t.Fatalf("BuildReport() error = %v", err)
		}
		want := entity.ReportPreferences{Receita: "1", Despesa: "2", Linha: "1"}
		if report.Preferences != want {
			t.Errorf("Preferences = %+v, want %+v", report.Preferences, want)
		}
		if report.Paired[1].Receitas != 1200 || report.Paired[1].Despesas != -900 || report.Evolution[1].Valor != 1200 {
			t.Errorf("charts do not match resolved preferences: %+v %+v", report.Paired, report.Evolution)
		}
		if prefs.data[key.String()] != want {
			t.Errorf("stored preferences = %+v, want %+v", prefs.data[key.String()], want)
		}
	})

	t.Run("custom selector", func(t *testing.T) {
		uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, nil, &fakeConsole{}, dfc.NewKeywordSelector("vendas", "geração"), nil)

		report, _ := uc.BuildReport(context.Background(), baseFilters())
		if report.Preferences.Receita != "1.1" || report.Preferences.Despesa != "9" {
			t.Errorf("Preferences = %+v, want receita 1.1 and despesa 9", report.Preferences)
		}
	})
}

func TestBuildReportErrors(t *testing.T) {
	tests := []struct {
		name    string
		filters entity.ReportFilters
		repoErr error
		wantErr error
	}{
		{"missing empresa", entity.ReportFilters{Ano: "2024", MesInicio: "01", MesFim: "02"}, nil, types.ErrMissingEmpresa},
		{"invalid month", entity.ReportFilters{EmpresaID: "e", Ano: "2024", MesInicio: "13", MesFim: "02"}, nil, dfc.ErrInvalidMonth},
		{"invalid year", entity.ReportFilters{EmpresaID: "e", Ano: "24", MesInicio: "01", MesFim: "02"}, nil, dfc.ErrInvalidYear},
		{"data source", baseFilters(), errBoom, errBoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewReportUseCase(&fakeDfcRepo{err: tt.repoErr}, nil, &fakeConsole{}, nil, nil)
			_, err := uc.BuildReport(context.Background(), tt.filters)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("BuildReport() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildReportNoData(t *testing.T) {
	uc := NewReportUseCase(&fakeDfcRepo{}, newFakePrefsRepo(), &fakeConsole{}, nil, nil)

	report, err := uc.BuildReport(context.Background(), baseFilters())
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}
	if !report.Layout.NoData {
		t.Error("NoData = false for an empty period")
	}
	if len(report.Paired) != 2 || len(report.Evolution) != 2 {
		t.Errorf("series lengths = %d/%d, want 2/2", len(report.Paired), len(report.Evolution))
	}
	if report.Paired[0].Receitas != 0 || report.Evolution[1].Valor != 0 {
		t.Errorf("empty period produced non-zero series")
	}
}

func TestRunReport(t *testing.T) {
	console := &fakeConsole{}
	uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, nil, console, nil, nil)

	args := &types.CLIArgs{Empresa: "emp-1", Ano: "2024", MesInicio: "02", MesFim: "01"}
	if err := uc.RunReport(context.Background(), args); err != nil {
		t.Fatalf("RunReport() error = %v", err)
	}

	if len(console.warnings) != 1 || !strings.Contains(console.warnings[0], "Mês final ajustado") {
		t.Errorf("warnings = %v, want swapped-month notice", console.warnings)
	}
	if len(console.tables) != 1 {
		t.Fatalf("tables rendered = %d, want 1", len(console.tables))
	}

	table := console.tables[0]
	wantCols := []string{"Código", "Descrição", "jan/24", "fev/24", "AV%", "AH%"}
	if strings.Join(table.columns, ",") != strings.Join(wantCols, ",") {
		t.Errorf("columns = %v, want %v", table.columns, wantCols)
	}
	if len(table.rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(table.rows))
	}
	if !strings.Contains(table.rows[0][1], "Geração de Caixa") || !strings.Contains(table.rows[4][1], "Geração de Caixa") {
		t.Errorf("grand total not pinned at top and bottom: %v / %v", table.rows[0], table.rows[4])
	}
	vendas := table.rows[2]
	if !strings.HasPrefix(vendas[1], "  Vendas") {
		t.Errorf("depth-1 line not indented: %q", vendas[1])
	}
	if vendas[3] != "-" {
		t.Errorf("missing cell = %q, want -", vendas[3])
	}
	if !strings.Contains(table.rows[0][4], "100.00%") || !strings.Contains(table.rows[0][5], "50.00%") {
		t.Errorf("reference percents = %v", table.rows[0][4:])
	}

	if len(console.paired) != 2 || console.paired[0].Month != "jan/24" {
		t.Errorf("paired bars = %+v", console.paired)
	}
	if len(console.trend) != 2 {
		t.Errorf("trend bars = %+v", console.trend)
	}
}

func TestRunReportNoData(t *testing.T) {
	console := &fakeConsole{}
	uc := NewReportUseCase(&fakeDfcRepo{}, nil, console, nil, nil)

	args := &types.CLIArgs{Empresa: "emp-1", Ano: "2024", MesInicio: "01", MesFim: "03"}
	if err := uc.RunReport(context.Background(), args); err != nil {
		t.Fatalf("RunReport() error = %v", err)
	}
	if len(console.warnings) != 1 || console.warnings[0] != NoDataMessage {
		t.Errorf("warnings = %v, want %q", console.warnings, NoDataMessage)
	}
	if len(console.tables) != 0 {
		t.Errorf("table rendered for empty period")
	}
}

func TestRunReportJSON(t *testing.T) {
	console := &fakeConsole{}
	uc := NewReportUseCase(&fakeDfcRepo{rows: sampleFlat()}, nil, console, nil, nil)

	args := &types.CLIArgs{Empresa: "emp-1", Ano: "2024", MesInicio: "01", MesFim: "02", JSON: true}
	if err := uc.RunReport(context.Background(), args); err != nil {
		t.Fatalf("RunReport() error = %v", err)
	}

	var payload struct {
		FileName string `json:"file_name"`
		Sheets   []struct {
			Name string `json:"name"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal([]byte(console.out.String()), &payload); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, console.out.String())
	}
	if payload.FileName != "dfc_emp-1_2024_01-02" {
		t.Errorf("file_name = %q", payload.FileName)
	}
	if len(payload.Sheets) != 4 {
		t.Errorf("sheets = %d, want 4", len(payload.Sheets))
	}
}
