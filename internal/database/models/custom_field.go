package models

import (
	"github.com/google/uuid"
)

// CustomFieldDefinition declares an organization-wide task attribute
type CustomFieldDefinition struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string          `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	FieldType      CustomFieldType `json:"field_type" gorm:"type:varchar(20);not null" validate:"required"`

	// Relationships
	Organization Organization       `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Values       []CustomFieldValue `json:"values,omitempty" gorm:"foreignKey:FieldDefinitionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CustomFieldDefinition
func (CustomFieldDefinition) TableName() string {
	return "custom_field_definitions"
}

// CustomFieldValue stores one task's value for a definition. Exactly one of
// ValueText and ValueNumber is set, matching the definition's type.
type CustomFieldValue struct {
	BaseModel
	TaskID            uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index" validate:"required"`
	FieldDefinitionID uuid.UUID `json:"field_definition_id" gorm:"type:uuid;not null;index" validate:"required"`
	ValueText         *string   `json:"value_text,omitempty" gorm:"size:200"`
	ValueNumber       *float64  `json:"value_number,omitempty"`

	// Relationships
	Task       Task                  `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Definition CustomFieldDefinition `json:"-" gorm:"foreignKey:FieldDefinitionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for CustomFieldValue
func (CustomFieldValue) TableName() string {
	return "custom_field_values"
}
