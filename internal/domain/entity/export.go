package entity

import "fmt"

// Sheet é uma planilha em formato de grade, pronta para um exportador.
type Sheet struct {
	Name string          `json:"name"`
	Data [][]interface{} `json:"data"`
}

// ExportPayload é o contrato de entrada do exportador de XLSX/PDF.
type ExportPayload struct {
	FileName  string           `json:"file_name"`
	Filters   ReportFilters    `json:"filtros"`
	Months    []string         `json:"meses"`
	Rows      []DfcRow         `json:"linhas"`
	Paired    []PairedPoint    `json:"receita_despesa"`
	Evolution []EvolutionPoint `json:"evolucao"`
	Sheets    []Sheet          `json:"sheets"`
}

// NewExportPayload monta o payload a partir de um relatório já calculado.
func NewExportPayload(report *DfcReport) ExportPayload {
	return ExportPayload{
		FileName:  FileBaseName(report.Filters),
		Filters:   report.Filters,
		Months:    report.Months,
		Rows:      report.Rows,
		Paired:    report.Paired,
		Evolution: report.Evolution,
		Sheets:    buildSheets(report),
	}
}

// FileBaseName retorna o nome base do arquivo exportado, sem extensão.
func FileBaseName(f ReportFilters) string {
	return fmt.Sprintf("dfc_%s_%s_%s-%s", f.EmpresaID, f.Ano, f.MesInicio, f.MesFim)
}

func buildSheets(report *DfcReport) []Sheet {
	dfc := [][]interface{}{{
		ColEmpresaID, ColMes, ColCodigo, ColNome, ColTipoLinha, ColValor, ColAVPercent, ColAHPercent,
	}}
	for _, row := range report.Flat {
		dfc = append(dfc, []interface{}{
			row.EmpresaID,
			row.Mes,
			row.Codigo,
			row.Nome,
			string(row.TipoLinha),
			row.Valor.InexactFloat64(),
			percentOrBlank(row.AVPercent),
			percentOrBlank(row.AHPercent),
		})
	}

	paired := [][]interface{}{{"mes", "receitas", "despesas"}}
	for _, p := range report.Paired {
		paired = append(paired, []interface{}{p.Mes, p.Receitas, p.Despesas})
	}

	evolution := [][]interface{}{{"mes", "valor"}}
	for _, p := range report.Evolution {
		evolution = append(evolution, []interface{}{p.Mes, p.Valor})
	}

	f := report.Filters
	filters := [][]interface{}{
		{"Filtro", "Valor"},
		{"empresa_id", f.EmpresaID},
		{"ano", f.Ano},
		{"mes_inicio", f.MesInicio},
		{"mes_fim", f.MesFim},
		{"linha", report.Preferences.Linha},
		{"receita_codigo", report.Preferences.Receita},
		{"despesa_codigo", report.Preferences.Despesa},
	}

	return []Sheet{
		{Name: "DFC", Data: dfc},
		{Name: "Chart_Receita_Despesa", Data: paired},
		{Name: "Chart_Evolucao", Data: evolution},
		{Name: "Filtros", Data: filters},
	}
}

func percentOrBlank(p *float64) interface{} {
	if p == nil {
		return ""
	}
	return *p
}
