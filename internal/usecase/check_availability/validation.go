package check_availability

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.AssetID) == "" {
		return fmt.Errorf("%w: assetId is required", ErrInvalidInput)
	}

	if req.HasPeriods() && req.HasRange() {
		return fmt.Errorf("%w: either periodIds or startDate/endDate must be set, not both", ErrInvalidInput)
	}

	if !req.HasPeriods() && !req.HasRange() {
		return fmt.Errorf("%w: periodIds or startDate/endDate is required", ErrInvalidInput)
	}

	if req.HasRange() && (req.StartDate.IsZero() || req.EndDate.IsZero()) {
		return fmt.Errorf("%w: both startDate and endDate are required", ErrInvalidInput)
	}

	return nil
}
