package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обертки DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Recorder приемник метрик запросов и пула соединений
type Recorder interface {
	RecordDBQuery(operation string, duration time.Duration, err error)
	SetDBPoolStats(open, inUse, idle int)
}

var (
	// ErrTxNotSupported возвращается, когда executor не умеет открывать транзакции
	ErrTxNotSupported = errors.New("dbmetrics: executor does not support transactions")

	// ErrBeginTx возвращается, когда не удалось открыть транзакцию
	ErrBeginTx = errors.New("dbmetrics: begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("dbmetrics: commit transaction")
)

// IsTxError возвращает true для ошибок управления транзакцией (а не ошибок fn)
func IsTxError(err error) bool {
	return errors.Is(err, ErrTxNotSupported) || errors.Is(err, ErrBeginTx) || errors.Is(err, ErrCommitTx)
}

// DB обертка над *sql.DB, снимающая длительность каждого запроса
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает *sql.DB. recorder может быть nil.
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// раз в 15 секунд до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB { return d.db }

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx открывает транзакцию, запросы которой тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &trackedTx{tx: tx, db: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.recorder == nil {
		return
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	d.recorder.RecordDBQuery(Operation(query), time.Since(start), err)
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	if d.recorder == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// Operation возвращает тип SQL операции в нижнем регистре (select, insert, ...)
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

type trackedTx struct {
	tx *sql.Tx
	db *DB
}

func (t *trackedTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return res, err
}

func (t *trackedTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(query, start, err)
	return rows, err
}

func (t *trackedTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(query, start, row.Err())
	return row
}

func (t *trackedTx) Commit() error   { return t.tx.Commit() }
func (t *trackedTx) Rollback() error { return t.tx.Rollback() }

type txKey struct{}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok {
		return tx
	}
	return db
}

// IsInTransaction возвращает true, если в контексте активна транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok
}

// WithTx выполняет fn в транзакции. Транзакция передается в fn через контекст,
// репозитории берут ее через GetExecutor. Ошибка fn откатывает транзакцию.
func WithTx(ctx context.Context, db DBExecutor, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	if IsInTransaction(ctx) {
		return fn(ctx)
	}

	var (
		tx  TxExecutor
		err error
	)
	switch b := db.(type) {
	case *DB:
		tx, err = b.BeginTx(ctx, opts)
	case *sql.DB:
		tx, err = b.BeginTx(ctx, opts)
	default:
		return ErrTxNotSupported
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}
	return nil
}
