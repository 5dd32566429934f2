package check_availability

import (
	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/types"
)

// Request модель запроса проверки доступности.
// Передается либо PeriodIDs, либо произвольный диапазон StartDate..EndDate.
type Request struct {
	AssetID   string     // ID рекламной конструкции
	PeriodIDs []string   // Выбранные би-недели
	StartDate types.Date // Начало произвольного диапазона (включительно)
	EndDate   types.Date // Конец произвольного диапазона (включительно)
}

// HasPeriods возвращает true, если запрос задан набором периодов
func (r *Request) HasPeriods() bool {
	return len(r.PeriodIDs) > 0
}

// HasRange возвращает true, если задан хотя бы один конец диапазона
func (r *Request) HasRange() bool {
	return !r.StartDate.IsZero() || !r.EndDate.IsZero()
}

// Response модель ответа.
// Если Aligned=false, проверка занятости не выполнялась: клиент должен
// повторить запрос с диапазоном из Suggestion.
type Response struct {
	AssetID    string
	StartDate  types.Date
	EndDate    types.Date
	PeriodIDs  []string
	Aligned    bool
	Suggestion *domain.AlignmentSuggestion
	Message    string
	Available  bool
	Conflicts  []domain.AllocationWindow
}
