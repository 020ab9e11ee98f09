package models

import (
	"github.com/google/uuid"
)

// Team is a department squad inside an organization
type Team struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description    string    `json:"description" gorm:"size:500"`

	// Relationships
	Organization Organization     `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Projects     []Project        `json:"projects,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Memberships  []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
