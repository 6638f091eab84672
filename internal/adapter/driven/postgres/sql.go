package postgres

import (
	"fmt"
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
)

// allowedTables lista as tabelas/views consultáveis e as colunas de cada uma.
var allowedTables = map[string]map[string]string{
	entity.DfcTable: {
		entity.ColEmpresaID: "empresa_id",
		entity.ColMes:       "mes",
		entity.ColCodigo:    "codigo",
		entity.ColNome:      "nome",
		entity.ColTipoLinha: "tipo_linha_dfc",
		entity.ColValor:     "valor",
		entity.ColAVPercent: "av_percent",
		entity.ColAHPercent: "ah_percent",
	},
}

// selectColumns são lidas como texto/float8 para o Scan não depender do tipo
// numeric do driver.
const selectColumns = `empresa_id::text,
       to_char(mes, 'YYYY-MM-DD'),
       codigo::text,
       nome::text,
       tipo_linha_dfc::text,
       valor::text,
       av_percent::float8,
       ah_percent::float8`

var sqlOps = map[entity.FilterOp]string{
	entity.OpEq:  "=",
	entity.OpGte: ">=",
	entity.OpLte: "<=",
}

// buildSelect traduz a Query para SQL parametrizado. Tabelas, colunas e
// operadores fora da lista devolvem ErrInvalidQueryField.
func buildSelect(q entity.Query) (string, []interface{}, error) {
	columns, ok := allowedTables[q.Table]
	if !ok {
		return "", nil, fmt.Errorf("%w: tabela %q", types.ErrInvalidQueryField, q.Table)
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(selectColumns)
	sb.WriteString("\n  FROM ")
	sb.WriteString(q.Table)

	args := make([]interface{}, 0, len(q.Filters))
	for i, f := range q.Filters {
		column, ok := columns[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", types.ErrInvalidQueryField, f.Field)
		}
		op, ok := sqlOps[f.Op]
		if !ok {
			return "", nil, fmt.Errorf("%w: operador %q", types.ErrInvalidQueryField, f.Op)
		}
		if i == 0 {
			sb.WriteString("\n WHERE ")
		} else {
			sb.WriteString("\n   AND ")
		}
		args = append(args, f.Value)
		placeholder := fmt.Sprintf("$%d", len(args))
		if f.Field == entity.ColMes {
			placeholder += "::date"
		}
		fmt.Fprintf(&sb, "%s %s %s", column, op, placeholder)
	}

	for i, o := range q.Orders {
		column, ok := columns[o.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", types.ErrInvalidQueryField, o.Field)
		}
		if i == 0 {
			sb.WriteString("\n ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(column)
		if o.Ascending {
			sb.WriteString(" ASC")
		} else {
			sb.WriteString(" DESC")
		}
	}

	return sb.String(), args, nil
}
