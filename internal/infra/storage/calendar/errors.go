package calendar

import "errors"

var (
	// ErrPeriodNotFound возвращается, когда период не найден
	ErrPeriodNotFound = errors.New("calendar.repository: period not found")

	// ErrDuplicatePeriod возвращается при вставке периода с существующим ID или датой начала
	ErrDuplicatePeriod = errors.New("calendar.repository: duplicate period")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("calendar.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
