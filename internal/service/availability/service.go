package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BillboardCalendar/internal/domain"
)

// Availability результат проверки доступности конструкции на диапазон периодов
type Availability struct {
	AssetID   string
	Range     domain.ResolvedRange
	Conflicts []domain.AllocationWindow
	Available bool
}

// Service сервис проверки занятости рекламных конструкций.
// Только советует: запись аренды обязана сама защищаться от гонки
// (UNIQUE(asset_id, period_id) или serializable check-then-insert).
type Service struct {
	allocationRepo AllocationRepository
	resolver       PeriodResolver
	recorder       Recorder
	logger         Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	allocationRepo AllocationRepository,
	resolver PeriodResolver,
	recorder Recorder,
	logger Logger,
) *Service {
	return &Service{
		allocationRepo: allocationRepo,
		resolver:       resolver,
		recorder:       recorder,
		logger:         logger,
	}
}

// FindConflicts возвращает существующие аренды той же конструкции, пересекающиеся с window.
// Пустой результат означает, что конструкция свободна.
// Результат отсортирован по дате начала, затем по ID.
func (s *Service) FindConflicts(ctx context.Context, window domain.AllocationWindow) ([]domain.AllocationWindow, error) {
	if err := window.Validate(); err != nil {
		s.logger.Warn("FindConflicts: invalid window asset=%s %s..%s", window.AssetID, window.StartDate, window.EndDate)
		return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)
	}

	candidates, err := s.allocationRepo.FindOverlapping(ctx, window.AssetID, window.StartDate, window.EndDate)
	if err != nil {
		s.logger.Error("FindConflicts: repository error for asset=%s: %v", window.AssetID, err)
		return nil, fmt.Errorf("%w: FindConflicts - repository error: %v", ErrInternal, err)
	}

	// Хранилище уже отфильтровало, но граница должна считаться одинаково везде
	conflicts := make([]domain.AllocationWindow, 0, len(candidates))
	for _, c := range candidates {
		if window.OverlapsWith(c) {
			conflicts = append(conflicts, c)
		}
	}
	domain.SortWindows(conflicts)

	s.logger.Info("FindConflicts: asset=%s %s..%s conflicts=%d", window.AssetID, window.StartDate, window.EndDate, len(conflicts))
	return conflicts, nil
}

// CheckPeriods проверяет доступность конструкции на набор периодов.
// Ошибки резолва периодов (пустой ввод, неизвестные ID, разрыв цепочки) возвращаются как есть.
func (s *Service) CheckPeriods(ctx context.Context, assetID string, periodIDs []string) (*Availability, error) {
	resolved, err := s.resolver.ResolveRangeFromPeriodIDs(ctx, periodIDs)
	if err != nil {
		return nil, err
	}

	return s.CheckRange(ctx, assetID, *resolved)
}

// CheckRange проверяет доступность конструкции на уже выровненный диапазон
func (s *Service) CheckRange(ctx context.Context, assetID string, resolved domain.ResolvedRange) (*Availability, error) {
	conflicts, err := s.FindConflicts(ctx, domain.AllocationWindow{
		AssetID:   assetID,
		StartDate: resolved.StartDate,
		EndDate:   resolved.EndDate,
	})
	if err != nil {
		return nil, err
	}

	available := len(conflicts) == 0
	if s.recorder != nil {
		s.recorder.RecordAvailabilityCheck(available)
	}

	return &Availability{
		AssetID:   assetID,
		Range:     resolved,
		Conflicts: conflicts,
		Available: available,
	}, nil
}
