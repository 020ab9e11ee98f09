package models

// Organization is the root of a generated dataset. One per run.
type Organization struct {
	BaseModel
	Name   string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Domain string `json:"domain" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`

	// Relationships
	Teams        []Team                  `json:"teams,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Users        []User                  `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CustomFields []CustomFieldDefinition `json:"custom_fields,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
