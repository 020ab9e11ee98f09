package models

import (
	"github.com/google/uuid"
)

// Project belongs to a team and owns an ordered list of sections
type Project struct {
	BaseModel
	TeamID     uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name       string        `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Status     ProjectStatus `json:"status" gorm:"type:varchar(20);not null" validate:"required"`
	Department string        `json:"department" gorm:"size:100"` // vocabulary key the project was drawn from

	// Relationships
	Team     Team      `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Sections []Section `json:"sections,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks    []Task    `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
