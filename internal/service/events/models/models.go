package models

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
	"github.com/m04kA/SMC-TeeTimeService/pkg/types"
)

// Request модели

// TeeTimeInput слот в запросе на создание события
type TeeTimeInput struct {
	Time     string `json:"time"`
	Capacity *int   `json:"capacity,omitempty"`
}

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Date        time.Time      `json:"date"`
	Type        *string        `json:"type,omitempty"`
	TeamSize    *int           `json:"teamSize,omitempty"`
	StartType   *string        `json:"startType,omitempty"`
	TeeTimes    []TeeTimeInput `json:"teeTimes,omitempty"`
}

// UpdateEventRequest запрос на обновление события (nil - поле не меняется)
type UpdateEventRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Type        *string    `json:"type,omitempty"`
	TeamSize    *int       `json:"teamSize,omitempty"`
	StartType   *string    `json:"startType,omitempty"`
}

// AddTeeTimeRequest запрос на добавление одного слота к событию
type AddTeeTimeRequest struct {
	Time     string `json:"time"`
	Capacity *int   `json:"capacity,omitempty"`
}

// Response модели

// PlayerResponse игрок в ответе API
type PlayerResponse struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// TeeTimeResponse слот в ответе API
type TeeTimeResponse struct {
	ID        int64            `json:"id"`
	Time      types.TimeString `json:"time"`
	Capacity  int              `json:"capacity"`
	Position  int              `json:"position"`
	Remaining int              `json:"remaining"`
	Players   []PlayerResponse `json:"players"`
}

// EventResponse событие в ответе API
type EventResponse struct {
	ID          int64             `json:"id"`
	GroupID     int64             `json:"groupId"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Date        time.Time         `json:"date"`
	Type        string            `json:"type"`
	TeamSize    int               `json:"teamSize"`
	StartType   string            `json:"startType"`
	TeeTimes    []TeeTimeResponse `json:"teeTimes"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// EventListResponse список событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// FromDomainPlayer конвертирует domain.Player в PlayerResponse
func FromDomainPlayer(p *domain.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		JoinedAt: p.JoinedAt,
	}
}

// FromDomainTeeTime конвертирует domain.TeeTime в TeeTimeResponse
func FromDomainTeeTime(t *domain.TeeTime) *TeeTimeResponse {
	resp := &TeeTimeResponse{
		ID:        t.ID,
		Time:      t.Time,
		Capacity:  t.Capacity,
		Position:  t.Position,
		Remaining: t.Remaining(),
		Players:   make([]PlayerResponse, 0, len(t.Players)),
	}
	for i := range t.Players {
		resp.Players = append(resp.Players, *FromDomainPlayer(&t.Players[i]))
	}
	return resp
}

// FromDomainEvent конвертирует domain.Event в EventResponse
func FromDomainEvent(e *domain.Event) *EventResponse {
	resp := &EventResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Type:        string(e.Type),
		TeamSize:    e.TeamSize,
		StartType:   e.StartType,
		TeeTimes:    make([]TeeTimeResponse, 0, len(e.TeeTimes)),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for i := range e.TeeTimes {
		resp.TeeTimes = append(resp.TeeTimes, *FromDomainTeeTime(&e.TeeTimes[i]))
	}
	return resp
}

// FromDomainEvents конвертирует список domain.Event в EventListResponse
func FromDomainEvents(eventList []*domain.Event) *EventListResponse {
	resp := &EventListResponse{
		Events: make([]EventResponse, 0, len(eventList)),
	}
	for _, e := range eventList {
		resp.Events = append(resp.Events, *FromDomainEvent(e))
	}
	return resp
}

// ToDomainUpdate конвертирует request в domain.EventUpdate
func (r *UpdateEventRequest) ToDomainUpdate() domain.EventUpdate {
	update := domain.EventUpdate{
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		TeamSize:    r.TeamSize,
		StartType:   r.StartType,
	}
	if r.Type != nil {
		t := domain.EventType(*r.Type)
		update.Type = &t
	}
	return update
}
