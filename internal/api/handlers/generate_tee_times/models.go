package generate_tee_times

import (
	generateTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/generate_tee_times"
)

// GenerateTeeTimesRequest HTTP request model
type GenerateTeeTimesRequest struct {
	StartTime       string `json:"startTime"`       // "07:00"
	IntervalMinutes int    `json:"intervalMinutes"` // шаг сетки
	Count           int    `json:"count"`           // количество слотов
	Capacity        *int   `json:"capacity,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateTeeTimesRequest) ToUseCaseRequest(groupID, eventID int64) *generateTeeTimes.Request {
	return &generateTeeTimes.Request{
		GroupID:         groupID,
		EventID:         eventID,
		StartTime:       r.StartTime,
		IntervalMinutes: r.IntervalMinutes,
		Count:           r.Count,
		Capacity:        r.Capacity,
	}
}
