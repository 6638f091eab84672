package local

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"go.uber.org/zap"
)

// dfcConflictKeys garante um fato por (empresa, mês, linha).
var dfcConflictKeys = []string{entity.ColEmpresaID, entity.ColMes, entity.ColCodigo}

// DfcRepository expõe a view dfc_mensal_av guardada na base local.
type DfcRepository struct {
	store  *Store
	logger *zap.Logger
}

var (
	_ repository.DfcRepository = (*DfcRepository)(nil)
	_ repository.DfcWriter     = (*DfcRepository)(nil)
	_ repository.DfcCleaner    = (*DfcRepository)(nil)
)

// NewDfcRepository cria o repositório sobre uma Store já aberta.
func NewDfcRepository(store *Store, logger *zap.Logger) *DfcRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DfcRepository{store: store, logger: logger}
}

// Execute roda a consulta na base local e converte os registros.
func (r *DfcRepository) Execute(ctx context.Context, q entity.Query) ([]entity.DfcFlatRow, error) {
	records, err := r.store.Select(ctx, q)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.DfcFlatRow, 0, len(records))
	for _, rec := range records {
		row, err := recordToRow(rec)
		if err != nil {
			return nil, fmt.Errorf("registro inválido em %s: %w", q.Table, err)
		}
		rows = append(rows, row)
	}
	r.logger.Debug("local query executed",
		zap.String("table", q.Table),
		zap.Int("filters", len(q.Filters)),
		zap.Int("rows", len(rows)))
	return rows, nil
}

// Save grava as linhas com upsert por (empresa, mês, código).
func (r *DfcRepository) Save(ctx context.Context, rows []entity.DfcFlatRow) (int, error) {
	records := make([]entity.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, rowToRecord(row))
	}
	written, err := r.store.Upsert(ctx, entity.DfcTable, records, dfcConflictKeys...)
	if err != nil {
		return 0, err
	}
	return len(written), nil
}

// DeleteEmpresa remove todas as linhas de uma empresa.
func (r *DfcRepository) DeleteEmpresa(ctx context.Context, empresaID string) (int, error) {
	removed, err := r.store.Delete(ctx, entity.NewQuery(entity.DfcTable).Where(entity.ColEmpresaID, entity.OpEq, empresaID))
	if err != nil {
		return 0, err
	}
	r.logger.Debug("dfc rows deleted", zap.String("empresa", empresaID), zap.Int("rows", len(removed)))
	return len(removed), nil
}

// Reset apaga a base local inteira.
func (r *DfcRepository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.Reset()
}

func recordToRow(rec entity.Record) (entity.DfcFlatRow, error) {
	valor, err := toDecimal(rec[entity.ColValor])
	if err != nil {
		return entity.DfcFlatRow{}, err
	}
	av, err := toFloatPtr(rec[entity.ColAVPercent])
	if err != nil {
		return entity.DfcFlatRow{}, err
	}
	ah, err := toFloatPtr(rec[entity.ColAHPercent])
	if err != nil {
		return entity.DfcFlatRow{}, err
	}
	tipo := entity.LineType(toString(rec[entity.ColTipoLinha]))
	if tipo == "" {
		tipo = entity.LineNormal
	}
	return entity.DfcFlatRow{
		EmpresaID: toString(rec[entity.ColEmpresaID]),
		Mes:       toString(rec[entity.ColMes]),
		Codigo:    toString(rec[entity.ColCodigo]),
		Nome:      toString(rec[entity.ColNome]),
		TipoLinha: tipo,
		Valor:     valor,
		AVPercent: av,
		AHPercent: ah,
	}, nil
}

func rowToRecord(row entity.DfcFlatRow) entity.Record {
	rec := entity.Record{
		entity.ColEmpresaID: row.EmpresaID,
		entity.ColMes:       row.Mes,
		entity.ColCodigo:    row.Codigo,
		entity.ColNome:      row.Nome,
		entity.ColTipoLinha: string(row.TipoLinha),
		entity.ColValor:     json.Number(row.Valor.String()),
		entity.ColAVPercent: nil,
		entity.ColAHPercent: nil,
	}
	if row.AVPercent != nil {
		rec[entity.ColAVPercent] = *row.AVPercent
	}
	if row.AHPercent != nil {
		rec[entity.ColAHPercent] = *row.AHPercent
	}
	return rec
}
