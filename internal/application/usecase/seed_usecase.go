package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"go.uber.org/zap"
)

const seedBatchSize = 500

// SeedOptions controla a limpeza feita antes da carga.
type SeedOptions struct {
	// Reset apaga a base inteira.
	Reset bool
	// Replace remove as linhas já gravadas das empresas presentes na carga.
	Replace bool
}

// SeedUseCase grava linhas do DFC na fonte de dados local.
type SeedUseCase struct {
	writer  repository.DfcWriter
	cleaner repository.DfcCleaner
	console types.ConsoleInterface
	logger  *zap.Logger
}

// NewSeedUseCase cria o caso de uso de carga.
func NewSeedUseCase(writer repository.DfcWriter, console types.ConsoleInterface, logger *zap.Logger) *SeedUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	uc := &SeedUseCase{writer: writer, console: console, logger: logger}
	if cleaner, ok := writer.(repository.DfcCleaner); ok {
		uc.cleaner = cleaner
	}
	return uc
}

// Seed grava as linhas em lotes, com upsert por (empresa, mês, código).
// Com opts.Reset ou opts.Replace a base é limpa antes da primeira gravação.
func (uc *SeedUseCase) Seed(ctx context.Context, rows []entity.DfcFlatRow, opts SeedOptions) (int, error) {
	if err := uc.clean(ctx, rows, opts); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		uc.console.LogWarning("Nenhuma linha para importar")
		return 0, nil
	}

	batches := (len(rows) + seedBatchSize - 1) / seedBatchSize
	progress := uc.console.ProgressWithTotal(batches, "Importando DFC")
	defer progress.Stop()

	total := 0
	for start := 0; start < len(rows); start += seedBatchSize {
		end := min(start+seedBatchSize, len(rows))
		n, err := uc.writer.Save(ctx, rows[start:end])
		if err != nil {
			return total, fmt.Errorf("erro ao gravar linhas %d-%d: %w", start+1, end, err)
		}
		total += n
		progress.Increment()
	}

	uc.logger.Debug("seed finished", zap.Int("rows", total), zap.Int("batches", batches))
	return total, nil
}

func (uc *SeedUseCase) clean(ctx context.Context, rows []entity.DfcFlatRow, opts SeedOptions) error {
	if !opts.Reset && !opts.Replace {
		return nil
	}
	if uc.cleaner == nil {
		return fmt.Errorf("a fonte de dados não permite limpar linhas antes da carga")
	}
	if opts.Reset {
		if err := uc.cleaner.Reset(ctx); err != nil {
			return fmt.Errorf("erro ao limpar a base: %w", err)
		}
		uc.logger.Debug("store reset before seed")
		return nil
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		if seen[row.EmpresaID] {
			continue
		}
		seen[row.EmpresaID] = true
		n, err := uc.cleaner.DeleteEmpresa(ctx, row.EmpresaID)
		if err != nil {
			return fmt.Errorf("erro ao remover linhas da empresa %s: %w", row.EmpresaID, err)
		}
		if n > 0 {
			uc.console.LogInfo("%d linhas antigas removidas da empresa %s", n, row.EmpresaID)
		}
	}
	return nil
}
