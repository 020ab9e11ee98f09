package repository

import (
	"org-simulator/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskRepository handles database operations for tasks and their custom field values
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateInBatches bulk-inserts tasks
func (r *TaskRepository) CreateInBatches(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).CreateInBatches(&tasks, 500).Error
}

// GetByProjectID retrieves all tasks of a project
func (r *TaskRepository) GetByProjectID(projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("project_id = ?", projectID).Order("created_at").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateCustomFieldDefinition creates a new custom field definition
func (r *TaskRepository) CreateCustomFieldDefinition(definition *models.CustomFieldDefinition) error {
	return r.db.Omit(clause.Associations).Create(definition).Error
}

// CreateCustomFieldValues bulk-inserts custom field values
func (r *TaskRepository) CreateCustomFieldValues(values []models.CustomFieldValue) error {
	if len(values) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).CreateInBatches(&values, 500).Error
}

// GetCustomFieldValuesByTaskID retrieves the custom field values of a task
func (r *TaskRepository) GetCustomFieldValuesByTaskID(taskID uuid.UUID) ([]models.CustomFieldValue, error) {
	var values []models.CustomFieldValue
	err := r.db.Where("task_id = ?", taskID).Find(&values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}
