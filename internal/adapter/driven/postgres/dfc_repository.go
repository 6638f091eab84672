package postgres

import (
	"context"
	"fmt"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DfcRepository lê a view dfc_mensal_av de um banco Postgres.
type DfcRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

var _ repository.DfcRepository = (*DfcRepository)(nil)

// NewDfcRepository abre o pool de conexões e valida o acesso ao banco.
func NewDfcRepository(ctx context.Context, databaseURL string, logger *zap.Logger) (*DfcRepository, error) {
	if databaseURL == "" {
		return nil, types.ErrMissingDatabaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	logger.Debug("postgres pool ready")
	return &DfcRepository{pool: pool, logger: logger}, nil
}

// Close libera o pool.
func (r *DfcRepository) Close() {
	r.pool.Close()
}

// Execute roda a consulta no banco.
func (r *DfcRepository) Execute(ctx context.Context, q entity.Query) ([]entity.DfcFlatRow, error) {
	query, args, err := buildSelect(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", q.Table, err)
	}
	defer rows.Close()

	out := make([]entity.DfcFlatRow, 0)
	for rows.Next() {
		var (
			row      entity.DfcFlatRow
			tipo     string
			valorStr string
		)
		if err := rows.Scan(
			&row.EmpresaID,
			&row.Mes,
			&row.Codigo,
			&row.Nome,
			&tipo,
			&valorStr,
			&row.AVPercent,
			&row.AHPercent,
		); err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", q.Table, err)
		}
		valor, err := decimal.NewFromString(valorStr)
		if err != nil {
			return nil, fmt.Errorf("valor inválido na linha %s/%s: %w", row.Codigo, row.Mes, err)
		}
		row.Valor = valor
		row.TipoLinha = entity.LineType(tipo)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", q.Table, err)
	}

	r.logger.Debug("postgres query executed",
		zap.String("table", q.Table),
		zap.Int("rows", len(out)))
	return out, nil
}
