package repository

import (
	"org-simulator/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StoreInterface is the write side used by the generators. Every Create call
// assigns the record's identity before returning.
type StoreInterface interface {
	CreateOrganization(org *models.Organization) error
	CreateTeam(team *models.Team) error
	CreateUser(user *models.User) error
	CreateMembership(membership *models.TeamMembership) error
	CreateProject(project *models.Project) error
	CreateSections(sections []models.Section) error
	CreateTasks(tasks []models.Task) error
	CreateCustomFieldDefinition(definition *models.CustomFieldDefinition) error
	CreateCustomFieldValues(values []models.CustomFieldValue) error
	// Transaction runs fn against a transactional store. A non-nil error from
	// fn discards every write made through tx.
	Transaction(fn func(tx StoreInterface) error) error
}

// SummaryRepositoryInterface defines the read-only inspection queries
type SummaryRepositoryInterface interface {
	GetVolume() (*VolumeStats, error)
	GetLargestTeams(limit int) ([]TeamSize, error)
	GetTeamLeads(limit int) ([]TeamLead, error)
	CountTimeTravelTasks() (int64, error)
	CountTeamsWithMultipleAdmins() (int64, error)
	GetCompletionBreakdown() ([]CompletionCount, error)
	GetCompletionByRank() ([]RankCompletion, error)
	// GetDatabaseSize returns the human-readable size of the backing store
	GetDatabaseSize() (string, error)
}
