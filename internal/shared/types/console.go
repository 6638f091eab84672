package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int, title string) ProgressHandle

	CreateTable() TableInterface
	DisplayTrendBars(title string, values []MonthlyValue)
	DisplayPairedBars(title string, values []PairedValue)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// MonthlyValue representa o valor de uma linha em um mês, usado nos gráficos de barras.
type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// PairedValue representa receitas e despesas de um mês.
type PairedValue struct {
	Month    string  `json:"month"`
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
}
