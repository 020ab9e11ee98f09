package models

import (
	"github.com/google/uuid"
)

// TeamMembership links a user to a team with a team-scoped role.
// The partial unique index allows a single admin row per team.
type TeamMembership struct {
	BaseModel
	UserID uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	TeamID uuid.UUID      `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_single_admin,where:role = 'admin'" validate:"required"`
	Role   MembershipRole `json:"role" gorm:"type:varchar(20);not null;default:'member'" validate:"required"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Team Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMembership
func (TeamMembership) TableName() string {
	return "team_memberships"
}
