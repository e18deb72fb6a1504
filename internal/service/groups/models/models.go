package models

import (
	"time"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// Request модели

// CreateGroupRequest запрос на создание группы
type CreateGroupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Template    *string `json:"template,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
}

// UpdateGroupRequest запрос на обновление группы (nil - поле не меняется)
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Template    *string `json:"template,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ResolveAccessCodeRequest запрос на обмен кода доступа на группу
type ResolveAccessCodeRequest struct {
	AccessCode string `json:"accessCode"`
}

// Response модели

// GroupResponse группа в ответе API
type GroupResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Template    string    `json:"template"`
	LogoURL     *string   `json:"logoUrl,omitempty"`
	AccessCode  *string   `json:"accessCode,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GroupListResponse список групп
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

// ResolveAccessCodeResponse результат обмена кода доступа
type ResolveAccessCodeResponse struct {
	GroupID int64  `json:"groupId"`
	Name    string `json:"name"`
}

// FromDomainGroup конвертирует domain.Group в GroupResponse
func FromDomainGroup(g *domain.Group) *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Template:    string(g.Template),
		LogoURL:     g.LogoURL,
		AccessCode:  g.AccessCode,
		IsActive:    g.IsActive,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FromDomainGroups конвертирует список domain.Group в GroupListResponse
func FromDomainGroups(groups []*domain.Group) *GroupListResponse {
	resp := &GroupListResponse{
		Groups: make([]GroupResponse, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, *FromDomainGroup(g))
	}
	return resp
}

// ToDomainUpdate конвертирует request в domain.GroupUpdate
func (r *UpdateGroupRequest) ToDomainUpdate() domain.GroupUpdate {
	update := domain.GroupUpdate{
		Name:        r.Name,
		Description: r.Description,
		LogoURL:     r.LogoURL,
		IsActive:    r.IsActive,
	}
	if r.Template != nil {
		t := domain.GroupTemplate(*r.Template)
		update.Template = &t
	}
	return update
}
