package run_reminders

import (
	runReminders "github.com/m04kA/SMC-TeeTimeService/internal/usecase/run_reminders"
)

// RunRemindersRequest HTTP request model
// Тело опционально: без groupId рассылка идет по всем активным группам
type RunRemindersRequest struct {
	GroupID *int64 `json:"groupId,omitempty"`
}

// GroupSummaryResponse итог рассылки по группе
type GroupSummaryResponse struct {
	GroupID           int64  `json:"groupId"`
	GroupName         string `json:"groupName"`
	Empties           int    `json:"empties"`
	SentToSubscribers int    `json:"sentToSubscribers"`
	SentToAdmins      int    `json:"sentToAdmins"`
}

// RunRemindersResponse HTTP response model
type RunRemindersResponse struct {
	OK      bool                   `json:"ok"`
	Skipped bool                   `json:"skipped,omitempty"`
	Summary []GroupSummaryResponse `json:"summary"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *runReminders.Response) *RunRemindersResponse {
	out := &RunRemindersResponse{
		OK:      resp.OK,
		Skipped: resp.Skipped,
		Summary: make([]GroupSummaryResponse, 0, len(resp.Summary)),
	}
	for _, s := range resp.Summary {
		out.Summary = append(out.Summary, GroupSummaryResponse{
			GroupID:           s.GroupID,
			GroupName:         s.GroupName,
			Empties:           s.Empties,
			SentToSubscribers: s.SentToSubscribers,
			SentToAdmins:      s.SentToAdmins,
		})
	}
	return out
}
