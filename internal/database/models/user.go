package models

import (
	"github.com/google/uuid"
)

// User is an employee of the organization
type User struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	FullName       string    `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role           string    `json:"role" gorm:"size:100"` // free text, department derived
	IsActive       bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Organization Organization     `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Memberships  []TeamMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// MemberOf reports whether the user holds a membership in the team
func (u *User) MemberOf(teamID uuid.UUID) bool {
	for _, m := range u.Memberships {
		if m.TeamID == teamID {
			return true
		}
	}
	return false
}
