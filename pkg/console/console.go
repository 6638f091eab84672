package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores dos valores e variações exibidos nos gráficos.
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total e o título informados.
func (c *Console) ProgressWithTotal(total int, title string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle(title).
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(true).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		_, _ = h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayTrendBars exibe a evolução mensal de uma linha como barras horizontais.
// Valores negativos aparecem em vermelho.
func (c *Console) DisplayTrendBars(title string, values []types.MonthlyValue) {
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, math.Abs(v.Value))
	}
	if maxValue == 0 {
		pterm.Warning.Println("Todos os valores são zero no período")
		return
	}

	tableData := pterm.TableData{
		{"Mês", "Valor", "", "Var. m/m"},
	}

	var prev *float64
	for _, v := range values {
		bar := barFor(v.Value, maxValue)
		if v.Value < 0 {
			bar = pterm.FgRed.Sprint(bar)
		} else {
			bar = pterm.FgBlue.Sprint(bar)
		}

		tableData = append(tableData, []string{
			v.Month,
			formatAmount(v.Value),
			bar,
			monthOverMonth(prev, v.Value),
		})

		current := v.Value
		prev = &current
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

// DisplayPairedBars exibe receitas e despesas lado a lado por mês.
func (c *Console) DisplayPairedBars(title string, values []types.PairedValue) {
	maxValue := 0.0
	for _, v := range values {
		maxValue = math.Max(maxValue, math.Max(math.Abs(v.Receitas), math.Abs(v.Despesas)))
	}
	if maxValue == 0 {
		pterm.Warning.Println("Receitas e despesas são zero no período")
		return
	}

	tableData := pterm.TableData{
		{"Mês", "Receitas", "", "Despesas", ""},
	}
	for _, v := range values {
		tableData = append(tableData, []string{
			v.Month,
			formatAmount(v.Receitas),
			pterm.FgGreen.Sprint(barFor(v.Receitas, maxValue)),
			formatAmount(v.Despesas),
			pterm.FgRed.Sprint(barFor(v.Despesas, maxValue)),
		})
	}

	renderedTable, _ := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	panel := pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
	fmt.Println("\n" + panel)
}

func barFor(value, maxValue float64) string {
	if maxValue == 0 {
		return ""
	}
	return strings.Repeat("█", int(math.Abs(value)/maxValue*barWidth))
}

func formatAmount(v float64) string {
	s := dfc.FormatCurrency(decimal.NewFromFloat(v))
	if v < 0 {
		return BrightRed(s)
	}
	return s
}

func monthOverMonth(prev *float64, current float64) string {
	if prev == nil {
		return ""
	}
	if math.Abs(*prev) < 0.01 {
		if math.Abs(current) < 0.01 {
			return BrightYellow("0%")
		}
		return BrightYellow("N/A")
	}

	change := (current - *prev) / math.Abs(*prev) * 100.0
	switch {
	case math.Abs(change) < 0.01:
		return BrightYellow("0%")
	case math.Abs(change) > 999:
		if change > 0 {
			return BrightGreen(">+999%")
		}
		return BrightRed(">-999%")
	case change > 0:
		return BrightGreen(fmt.Sprintf("+%.2f%%", change))
	default:
		return BrightRed(fmt.Sprintf("%.2f%%", change))
	}
}
