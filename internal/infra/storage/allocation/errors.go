package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда аренда не найдена
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	// ErrPeriodAlreadyAllocated возвращается при нарушении UNIQUE(asset_id, period_id)
	ErrPeriodAlreadyAllocated = errors.New("allocation.repository: period already allocated for asset")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("allocation.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("allocation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("allocation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("allocation.repository: failed to scan row")
)
