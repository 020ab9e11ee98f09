package models

import (
	"sort"

	"github.com/google/uuid"
)

// Section is a workflow stage of a project. Rank is the 0-based stage position.
type Section struct {
	BaseModel
	ProjectID uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_section_rank" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Rank      int       `json:"rank" gorm:"not null;uniqueIndex:idx_project_section_rank" validate:"gte=0"`

	// Relationships
	Project Project `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Tasks   []Task  `json:"tasks,omitempty" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Section
func (Section) TableName() string {
	return "sections"
}

// SortSectionsByRank returns a copy of sections ordered by rank
func SortSectionsByRank(sections []Section) []Section {
	sorted := make([]Section, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	return sorted
}
