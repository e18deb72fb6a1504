package domain

import "time"

// GroupTemplate represents the page template used by a group
type GroupTemplate string

const (
	TemplateDefault GroupTemplate = "default"
	TemplateGolf    GroupTemplate = "golf"
	TemplateSocial  GroupTemplate = "social"
)

// Group represents a tenant: an isolated organization with its own
// access code, events and subscriber list
type Group struct {
	ID          int64
	Name        string
	Description *string
	Template    GroupTemplate
	LogoURL     *string
	AccessCode  *string // nil for legacy groups created before access codes; backfilled on first read
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasAccessCode returns true if the group already carries an access code
func (g *Group) HasAccessCode() bool {
	return g.AccessCode != nil && *g.AccessCode != ""
}

// IsValidTemplate returns true if the template value is one of the known templates
func IsValidTemplate(t GroupTemplate) bool {
	switch t {
	case TemplateDefault, TemplateGolf, TemplateSocial:
		return true
	default:
		return false
	}
}

// GroupUpdate набор изменяемых полей группы (nil - поле не меняется)
type GroupUpdate struct {
	Name        *string
	Description *string
	Template    *GroupTemplate
	LogoURL     *string
	IsActive    *bool
}
