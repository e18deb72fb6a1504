package generate_tee_times

import (
	"fmt"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// validateRequest валидирует входные данные и возвращает разобранное время старта
func validateRequest(req *Request) (types.TimeString, error) {
	if req.GroupID <= 0 {
		return "", fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
	}
	if req.EventID <= 0 {
		return "", fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return "", fmt.Errorf("%w: invalid startTime, expected HH:MM", ErrInvalidInput)
	}

	if req.IntervalMinutes < domain.MinIntervalMinutes || req.IntervalMinutes > domain.MaxIntervalMinutes {
		return "", fmt.Errorf("%w: intervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}
	if req.Count < domain.MinGridCount || req.Count > domain.MaxGridCount {
		return "", fmt.Errorf("%w: count must be between %d and %d",
			ErrInvalidInput, domain.MinGridCount, domain.MaxGridCount)
	}
	if req.Capacity != nil && (*req.Capacity < domain.MinCapacity || *req.Capacity > domain.MaxCapacity) {
		return "", fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	return startTime, nil
}
