package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/m04kA/SMC-BillboardCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/psqlbuilder"
)

var (
	//go:embed postgres.sql
	postgresSchema string

	//go:embed sqlite.sql
	sqliteSchema string
)

// Apply создает таблицы календаря и аренд, если их нет.
// Для production PostgreSQL предпочтительны версионированные миграции из migrations/.
func Apply(ctx context.Context, db dbmetrics.DBExecutor, dialect psqlbuilder.Dialect) error {
	ddl := postgresSchema
	if dialect == psqlbuilder.DialectSQLite {
		ddl = sqliteSchema
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("apply %s schema: %w", dialect, err)
	}
	return nil
}
