package repository

import (
	"org-simulator/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and sections
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project without touching its sections
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(clause.Associations).Create(project).Error
}

// CreateSections inserts a project's sections in one statement
func (r *ProjectRepository) CreateSections(sections []models.Section) error {
	if len(sections) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&sections).Error
}

// GetWithSections retrieves a project with its sections ordered by rank
func (r *ProjectRepository) GetWithSections(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order(`"rank" ASC`)
	}).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByTeamID retrieves all projects of a team
func (r *ProjectRepository) GetByTeamID(teamID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("team_id = ?", teamID).Order("created_at").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}
