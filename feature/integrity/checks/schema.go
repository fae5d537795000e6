package checks

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SchemaStore is satisfied by history.Repository.
type SchemaStore interface {
	CheckSchema(ctx context.Context) ([]string, error)
	Migrate(ctx context.Context) error
}

// CheckSchema compares the runs table with the history model. With fix set,
// missing columns are created by migrating.
func CheckSchema(ctx context.Context, store SchemaStore, fix bool, logger *zap.Logger) Result {
	const name = "database"

	missing, err := store.CheckSchema(ctx)
	if err != nil {
		return failed(name, err)
	}
	if len(missing) == 0 {
		return Result{Name: name, Status: StatusOK}
	}

	logger.Warn("Run history schema is incomplete", zap.Strings("missing", missing))
	if !fix {
		return Result{
			Name:    name,
			Status:  StatusError,
			Detail:  fmt.Sprintf("runs table lacks %s", strings.Join(missing, ", ")),
			Missing: missing,
		}
	}

	if err := store.Migrate(ctx); err != nil {
		res := failed(name, err)
		res.Missing = missing
		return res
	}
	logger.Info("Migrated run history schema", zap.Strings("added", missing))
	return Result{Name: name, Status: StatusFixed, Missing: missing}
}
