package repository

import (
	"org-simulator/internal/database/models"

	"gorm.io/gorm"
)

// Store is the gorm-backed StoreInterface. All repositories share one
// *gorm.DB, which is a transaction handle inside Transaction.
type Store struct {
	db            *gorm.DB
	Organizations *OrganizationRepository
	Teams         *TeamRepository
	Users         *UserRepository
	Projects      *ProjectRepository
	Tasks         *TaskRepository
}

// NewStore creates a store over db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Organizations: NewOrganizationRepository(db),
		Teams:         NewTeamRepository(db),
		Users:         NewUserRepository(db),
		Projects:      NewProjectRepository(db),
		Tasks:         NewTaskRepository(db),
	}
}

func (s *Store) CreateOrganization(org *models.Organization) error {
	return s.Organizations.Create(org)
}

func (s *Store) CreateTeam(team *models.Team) error {
	return s.Teams.Create(team)
}

func (s *Store) CreateUser(user *models.User) error {
	return s.Users.Create(user)
}

func (s *Store) CreateMembership(membership *models.TeamMembership) error {
	return s.Teams.CreateMembership(membership)
}

func (s *Store) CreateProject(project *models.Project) error {
	return s.Projects.Create(project)
}

func (s *Store) CreateSections(sections []models.Section) error {
	return s.Projects.CreateSections(sections)
}

func (s *Store) CreateTasks(tasks []models.Task) error {
	return s.Tasks.CreateInBatches(tasks)
}

func (s *Store) CreateCustomFieldDefinition(definition *models.CustomFieldDefinition) error {
	return s.Tasks.CreateCustomFieldDefinition(definition)
}

func (s *Store) CreateCustomFieldValues(values []models.CustomFieldValue) error {
	return s.Tasks.CreateCustomFieldValues(values)
}

// Transaction runs fn inside a database transaction
func (s *Store) Transaction(fn func(tx StoreInterface) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
