package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work in a project section. CreatedAt is the simulated
// creation time, not the insert time.
type Task struct {
	BaseModel
	ProjectID   uuid.UUID    `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	SectionID   uuid.UUID    `json:"section_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssigneeID  *uuid.UUID   `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	Name        string       `json:"name" gorm:"not null;size:300" validate:"required,max=300"`
	Description string       `json:"description" gorm:"type:text"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(10);not null" validate:"required"`
	IsCompleted bool         `json:"is_completed" gorm:"not null;default:false"`
	DueDate     time.Time    `json:"due_date" gorm:"not null"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`

	// Relationships
	Project  Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Section  Section `json:"-" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	Assignee *User   `json:"-" gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// ViolatesTimeline reports whether the task breaks the ordering
// created_at <= due_date and created_at <= completed_at <= now
func (t *Task) ViolatesTimeline(now time.Time) bool {
	if t.DueDate.Before(t.CreatedAt) {
		return true
	}
	if !t.IsCompleted {
		return t.CompletedAt != nil
	}
	if t.CompletedAt == nil {
		return true
	}
	return t.CompletedAt.Before(t.CreatedAt) || t.CompletedAt.After(now)
}
