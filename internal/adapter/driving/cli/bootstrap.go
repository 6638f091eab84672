package cli

import (
	"context"
	"fmt"

	"github.com/diillson/dfc-dashboard-go/internal/adapter/driven/local"
	"github.com/diillson/dfc-dashboard-go/internal/adapter/driven/postgres"
	"github.com/diillson/dfc-dashboard-go/internal/adapter/driven/preferences"
	"github.com/diillson/dfc-dashboard-go/internal/domain/dfc"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
	"github.com/diillson/dfc-dashboard-go/internal/shared/types"
	"go.uber.org/zap"
)

// dependencies reúne os adaptadores escolhidos pelos argumentos.
type dependencies struct {
	dfcRepo   repository.DfcRepository
	prefsRepo repository.PreferencesRepository
	selector  dfc.DefaultLineSelector
	closers   []func()
}

func newDependencies(ctx context.Context, args *types.CLIArgs, logger *zap.Logger) (*dependencies, error) {
	deps := &dependencies{
		prefsRepo: preferences.NewFileRepository(args.Preferences),
		selector:  dfc.NewKeywordSelector(args.RevenueKeyword, args.ExpenseKeyword),
	}

	switch args.Source {
	case types.SourceLocal, "":
		store, err := local.NewStore(args.Store)
		if err != nil {
			return nil, err
		}
		deps.dfcRepo = local.NewDfcRepository(store, logger)
	case types.SourcePostgres:
		repo, err := postgres.NewDfcRepository(ctx, args.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		deps.dfcRepo = repo
		deps.closers = append(deps.closers, repo.Close)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownDataSource, args.Source)
	}

	logger.Debug("data source ready",
		zap.String("source", args.Source),
		zap.String("store", args.Store),
		zap.String("preferences", args.Preferences))
	return deps, nil
}

// Close libera conexões abertas pelos adaptadores.
func (d *dependencies) Close() {
	for _, c := range d.closers {
		c()
	}
}
