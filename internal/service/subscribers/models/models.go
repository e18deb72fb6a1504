package models

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Request модели

// SubscribeRequest запрос на подписку на напоминания группы
type SubscribeRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// Response модели

// SubscriberResponse подписчик в ответе API
// Токен отписки наружу не отдается - он попадает только в письма
type SubscriberResponse struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"groupId"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriberListResponse список подписчиков группы
type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
}

// FromDomainSubscriber конвертирует domain.Subscriber в SubscriberResponse
func FromDomainSubscriber(s *domain.Subscriber) *SubscriberResponse {
	return &SubscriberResponse{
		ID:        s.ID,
		GroupID:   s.GroupID,
		Email:     s.Email,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSubscribers конвертирует список domain.Subscriber в SubscriberListResponse
func FromDomainSubscribers(subs []*domain.Subscriber) *SubscriberListResponse {
	resp := &SubscriberListResponse{
		Subscribers: make([]SubscriberResponse, 0, len(subs)),
	}
	for _, s := range subs {
		resp.Subscribers = append(resp.Subscribers, *FromDomainSubscriber(s))
	}
	return resp
}
