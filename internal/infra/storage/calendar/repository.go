package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/internal/infra/storage/sqlerrors"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/dbmetrics"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

const tablePeriods = "calendar_periods"

var periodColumns = []string{"id", "start_date", "end_date"}

// Repository репозиторий би-недельных периодов.
// Календарь append-only: методов Update/Delete нет.
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor, dialect psqlbuilder.Dialect) *Repository {
	return &Repository{
		db: db,
		sb: psqlbuilder.For(dialect),
	}
}

// FindByID получает период по ID
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.CalendarPeriod, error) {
	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "FindByID", query, args)
}

// FindManyByID получает периоды по списку ID.
// Отсутствующие ID просто не попадают в результат - проверку делает вызывающий.
func (r *Repository) FindManyByID(ctx context.Context, ids []string) ([]domain.CalendarPeriod, error) {
	if len(ids) == 0 {
		return []domain.CalendarPeriod{}, nil
	}

	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindManyByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "FindManyByID", query, args)
}

// FindIntersecting получает периоды, пересекающие [start, end] (границы включительно):
// start_date <= end AND end_date >= start
func (r *Repository) FindIntersecting(ctx context.Context, start, end types.Date) ([]domain.CalendarPeriod, error) {
	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindIntersecting - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "FindIntersecting", query, args)
}

// FindContaining получает период, для которого start_date <= date <= end_date
func (r *Repository) FindContaining(ctx context.Context, date types.Date) (*domain.CalendarPeriod, error) {
	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("start_date ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindContaining - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "FindContaining", query, args)
}

// FindByYear получает периоды, начинающиеся в указанном году
func (r *Repository) FindByYear(ctx context.Context, year int) ([]domain.CalendarPeriod, error) {
	from := types.NewDate(year, time.January, 1)
	to := types.NewDate(year+1, time.January, 1)

	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.GtOrEq{"start_date": from}).
		Where(squirrel.Lt{"start_date": to}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByYear - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryMany(ctx, "FindByYear", query, args)
}

// FindLastBefore получает последний период, начинающийся раньше before
func (r *Repository) FindLastBefore(ctx context.Context, before types.Date) (*domain.CalendarPeriod, error) {
	query, args, err := r.sb.Select(periodColumns...).
		From(tablePeriods).
		Where(squirrel.Lt{"start_date": before}).
		OrderBy("start_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindLastBefore - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryOne(ctx, "FindLastBefore", query, args)
}

// InsertBatch атомарно добавляет периоды (используется только генерацией календаря).
// Если в контексте уже есть транзакция, вставка выполняется в ней.
func (r *Repository) InsertBatch(ctx context.Context, periods []domain.CalendarPeriod) error {
	if len(periods) == 0 {
		return nil
	}

	insert := r.sb.Insert(tablePeriods).Columns(periodColumns...)
	for _, p := range periods {
		insert = insert.Values(p.ID, p.StartDate, p.EndDate)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: InsertBatch - build insert query: %v", ErrBuildQuery, err)
	}

	err = dbmetrics.WithTx(ctx, r.db, nil, func(txCtx context.Context) error {
		executor := dbmetrics.GetExecutor(txCtx, r.db)
		if _, err := executor.ExecContext(txCtx, query, args...); err != nil {
			if sqlerrors.IsUniqueViolation(err) {
				return fmt.Errorf("%w: InsertBatch: %v", ErrDuplicatePeriod, err)
			}
			return fmt.Errorf("%w: InsertBatch - execute insert: %v", ErrExecQuery, err)
		}
		return nil
	})
	if err != nil {
		if dbmetrics.IsTxError(err) {
			return fmt.Errorf("%w: InsertBatch: %v", ErrTransaction, err)
		}
		return err
	}

	return nil
}

func (r *Repository) queryOne(ctx context.Context, op, query string, args []interface{}) (*domain.CalendarPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var p domain.CalendarPeriod
	err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.StartDate, &p.EndDate)
	if err == sql.ErrNoRows {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan period: %v", ErrScanRow, op, err)
	}

	return &p, nil
}

func (r *Repository) queryMany(ctx context.Context, op, query string, args []interface{}) ([]domain.CalendarPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanPeriods(op, rows)
}

// scanPeriods сканирует результаты запроса в слайс периодов
func (r *Repository) scanPeriods(op string, rows *sql.Rows) ([]domain.CalendarPeriod, error) {
	periods := make([]domain.CalendarPeriod, 0)

	for rows.Next() {
		var p domain.CalendarPeriod
		if err := rows.Scan(&p.ID, &p.StartDate, &p.EndDate); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return periods, nil
}
