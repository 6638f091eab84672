package entity

// DfcTable é a view que entrega o DFC mensal com AV/AH.
const DfcTable = "dfc_mensal_av"

// Colunas da view dfc_mensal_av.
const (
	ColEmpresaID = "empresa_id"
	ColMes       = "mes"
	ColCodigo    = "codigo"
	ColNome      = "nome"
	ColTipoLinha = "tipo_linha_dfc"
	ColValor     = "valor"
	ColAVPercent = "av_percent"
	ColAHPercent = "ah_percent"
)

// FilterOp é o operador de comparação de um filtro.
type FilterOp string

const (
	OpEq  FilterOp = "eq"
	OpGte FilterOp = "gte"
	OpLte FilterOp = "lte"
)

// Filter compara um campo com um valor.
type Filter struct {
	Field string
	Op    FilterOp
	Value interface{}
}

// Order define a ordenação por um campo.
type Order struct {
	Field     string
	Ascending bool
}

// Query descreve uma consulta sem executá-la. Where e OrderBy devolvem uma
// cópia, então uma Query pode ser reutilizada e reexecutada livremente.
type Query struct {
	Table   string
	Filters []Filter
	Orders  []Order
}

// NewQuery cria uma consulta vazia sobre a tabela informada.
func NewQuery(table string) Query {
	return Query{Table: table}
}

// Where adiciona um filtro.
func (q Query) Where(field string, op FilterOp, value interface{}) Query {
	filters := make([]Filter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, Filter{Field: field, Op: op, Value: value})
	return q
}

// OrderBy adiciona um critério de ordenação depois dos já existentes.
func (q Query) OrderBy(field string, ascending bool) Query {
	orders := make([]Order, len(q.Orders), len(q.Orders)+1)
	copy(orders, q.Orders)
	q.Orders = append(orders, Order{Field: field, Ascending: ascending})
	return q
}

// DfcRangeQuery monta a consulta do DFC de uma empresa para os meses informados,
// ordenada por código e mês.
func DfcRangeQuery(empresaID string, months []string) Query {
	q := NewQuery(DfcTable).Where(ColEmpresaID, OpEq, empresaID)
	if len(months) > 0 {
		q = q.Where(ColMes, OpGte, months[0]).
			Where(ColMes, OpLte, months[len(months)-1])
	}
	return q.OrderBy(ColCodigo, true).OrderBy(ColMes, true)
}

// Record é uma linha genérica de tabela, usada pela base local.
type Record map[string]interface{}

// Clone devolve uma cópia rasa do registro.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
