package testutils

import (
	"fmt"
	"time"

	"org-simulator/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		Name:   "Initech",
		Domain: "initech.com",
	}
}

// WithDomain sets a custom domain for the organization
func (f *OrganizationFactory) WithDomain(domain string) *models.Organization {
	org := f.Create()
	org.Domain = domain
	return org
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team in the organization
func (f *TeamFactory) Create(orgID uuid.UUID) *models.Team {
	return f.WithName(orgID, "Engineering - Squad 1")
}

// WithName creates a test Team with a custom name
func (f *TeamFactory) WithName(orgID uuid.UUID, name string) *models.Team {
	return &models.Team{
		OrganizationID: orgID,
		Name:           name,
		Description:    "Engineering Unit 1",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with an email unique to this call
func (f *UserFactory) Create(orgID uuid.UUID) *models.User {
	suffix := uuid.New().String()[:6]
	return &models.User{
		OrganizationID: orgID,
		FullName:       "Ada Byron",
		Email:          fmt.Sprintf("ada.byron%s@initech.com", suffix),
		Role:           "Backend Engineer",
		IsActive:       true,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project owned by the team
func (f *ProjectFactory) Create(teamID uuid.UUID) *models.Project {
	return &models.Project{
		TeamID:     teamID,
		Name:       "API V2 Migration",
		Status:     models.ProjectStatusOnTrack,
		Department: "Engineering",
	}
}

// Sections builds one section per stage, ranked by position
func (f *ProjectFactory) Sections(projectID uuid.UUID, stages ...string) []models.Section {
	sections := make([]models.Section, len(stages))
	for i, stage := range stages {
		sections[i] = models.Section{ProjectID: projectID, Name: stage, Rank: i}
	}
	return sections
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates an open test Task created two days ago
func (f *TaskFactory) Create(projectID, sectionID uuid.UUID) models.Task {
	created := time.Now().Add(-48 * time.Hour)
	return models.Task{
		BaseModel:   models.BaseModel{CreatedAt: created},
		ProjectID:   projectID,
		SectionID:   sectionID,
		Name:        "Write integration tests",
		Description: "Standard task for Write integration tests.",
		Priority:    models.TaskPriorityMedium,
		DueDate:     created.Add(72 * time.Hour),
	}
}

// Completed creates a completed test Task finished one hour after creation
func (f *TaskFactory) Completed(projectID, sectionID uuid.UUID) models.Task {
	task := f.Create(projectID, sectionID)
	completed := task.CreatedAt.Add(time.Hour)
	task.IsCompleted = true
	task.CompletedAt = &completed
	return task
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Team         *TeamFactory
	User         *UserFactory
	Project      *ProjectFactory
	Task         *TaskFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Team:         NewTeamFactory(),
		User:         NewUserFactory(),
		Project:      NewProjectFactory(),
		Task:         NewTaskFactory(),
	}
}
