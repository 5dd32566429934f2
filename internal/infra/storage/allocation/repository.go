package allocation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/sqlerrors"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

const (
	tableAllocations       = "allocations"
	tableAllocationPeriods = "allocation_periods"
)

var allocationColumns = []string{"id", "asset_id", "start_date", "end_date"}

// Repository репозиторий аренд рекламных конструкций
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// FindOverlapping получает аренды конструкции, пересекающиеся с [start, end].
// Границы включительно, как и domain.Overlaps: start_date <= end AND end_date >= start.
// Результат отсортирован по start_date ASC, id ASC.
func (r *Repository) FindOverlapping(ctx context.Context, assetID string, start, end types.Date) ([]domain.AllocationWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(allocationColumns...).
		From(tableAllocations).
		Where(squirrel.Eq{"asset_id": assetID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AllocationWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.sb.Select(allocationColumns...).
		From(tableAllocations).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.AllocationWindow
	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.AssetID, &w.StartDate, &w.EndDate)
	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan allocation: %v", ErrScanRow, err)
	}

	return &w, nil
}

// Create сохраняет аренду и ее периоды в одной транзакции.
//
// Проверка доступности и запись - два разных шага, поэтому гонку между
// двумя одновременными запросами закрывает UNIQUE(asset_id, period_id):
// второй запрос получит ErrPeriodAlreadyAllocated.
func (r *Repository) Create(ctx context.Context, window domain.AllocationWindow, periodIDs []string) error {
	insertAllocation, args, err := r.sb.Insert(tableAllocations).
		Columns(allocationColumns...).
		Values(window.ID, window.AssetID, window.StartDate, window.EndDate).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert allocation query: %v", ErrBuildQuery, err)
	}

	var (
		insertPeriods string
		periodArgs    []interface{}
	)
	if len(periodIDs) > 0 {
		builder := r.sb.Insert(tableAllocationPeriods).Columns("allocation_id", "asset_id", "period_id")
		for _, periodID := range periodIDs {
			builder = builder.Values(window.ID, window.AssetID, periodID)
		}
		insertPeriods, periodArgs, err = builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Create - build insert periods query: %v", ErrBuildQuery, err)
		}
	}

	err = dbmetrics.WithTx(ctx, r.db, nil, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)

		if _, err := executor.ExecContext(txCtx, insertAllocation, args...); err != nil {
			return fmt.Errorf("%w: Create - execute insert allocation: %v", ErrExecQuery, err)
		}

		if insertPeriods == "" {
			return nil
		}
		if _, err := executor.ExecContext(txCtx, insertPeriods, periodArgs...); err != nil {
			if sqlerrors.IsUniqueViolation(err) {
				return fmt.Errorf("%w: asset=%s", ErrPeriodAlreadyAllocated, window.AssetID)
			}
			return fmt.Errorf("%w: Create - execute insert periods: %v", ErrExecQuery, err)
		}
		return nil
	})
	if err != nil {
		if dbmetrics.IsTxError(err) {
			return fmt.Errorf("%w: Create: %v", ErrTransaction, err)
		}
		return err
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс аренд
func (r *Repository) scanWindows(rows *sql.Rows) ([]domain.AllocationWindow, error) {
	windows := make([]domain.AllocationWindow, 0)

	for rows.Next() {
		var w domain.AllocationWindow
		if err := rows.Scan(&w.ID, &w.AssetID, &w.StartDate, &w.EndDate); err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
