package repository

import (
	"context"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
)

// DfcRepository executa consultas sobre a fonte tabular do DFC.
type DfcRepository interface {
	Execute(ctx context.Context, q entity.Query) ([]entity.DfcFlatRow, error)
}

// DfcWriter grava linhas do DFC com upsert por (empresa, mês, código).
type DfcWriter interface {
	Save(ctx context.Context, rows []entity.DfcFlatRow) (int, error)
}

// DfcCleaner remove linhas da base antes de uma nova carga.
type DfcCleaner interface {
	DeleteEmpresa(ctx context.Context, empresaID string) (int, error)
	Reset(ctx context.Context) error
}

// PreferencesRepository guarda as escolhas de linhas dos gráficos por empresa e relatório.
type PreferencesRepository interface {
	Load(key entity.PreferencesKey) (entity.ReportPreferences, error)
	Save(key entity.PreferencesKey, prefs entity.ReportPreferences) error
}
