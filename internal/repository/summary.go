package repository

import (
	"org-simulator/internal/database/models"

	"gorm.io/gorm"
)

// VolumeStats counts every generated entity kind
type VolumeStats struct {
	Organizations int64 `json:"organizations"`
	Teams         int64 `json:"teams"`
	Users         int64 `json:"users"`
	Memberships   int64 `json:"memberships"`
	Projects      int64 `json:"projects"`
	Sections      int64 `json:"sections"`
	Tasks         int64 `json:"tasks"`
}

// TeamSize is a team with its membership count
type TeamSize struct {
	TeamName    string `json:"team_name"`
	MemberCount int64  `json:"member_count"`
}

// TeamLead is a team with the user holding its admin membership
type TeamLead struct {
	TeamName string `json:"team_name"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// CompletionCount is the number of tasks with a given completion flag
type CompletionCount struct {
	IsCompleted bool  `json:"is_completed"`
	Count       int64 `json:"count"`
}

// RankCompletion aggregates tasks by the rank of their section
type RankCompletion struct {
	SectionRank int   `json:"section_rank"`
	Total       int64 `json:"total"`
	Completed   int64 `json:"completed"`
}

// SummaryRepository runs read-only inspection queries
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

// GetVolume counts rows of every simulation table
func (r *SummaryRepository) GetVolume() (*VolumeStats, error) {
	var stats VolumeStats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Organization{}, &stats.Organizations},
		{&models.Team{}, &stats.Teams},
		{&models.User{}, &stats.Users},
		{&models.TeamMembership{}, &stats.Memberships},
		{&models.Project{}, &stats.Projects},
		{&models.Section{}, &stats.Sections},
		{&models.Task{}, &stats.Tasks},
	}
	for _, c := range counts {
		if err := r.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &stats, nil
}

// GetDatabaseSize returns the on-disk size of the current database, e.g. "12 MB"
func (r *SummaryRepository) GetDatabaseSize() (string, error) {
	var size string
	err := r.db.Raw("SELECT pg_size_pretty(pg_database_size(current_database()))").Scan(&size).Error
	if err != nil {
		return "", err
	}
	return size, nil
}

// GetLargestTeams returns the teams with the most memberships
func (r *SummaryRepository) GetLargestTeams(limit int) ([]TeamSize, error) {
	var rows []TeamSize
	err := r.db.Table("teams AS t").
		Select("t.name AS team_name, COUNT(tm.user_id) AS member_count").
		Joins("JOIN team_memberships tm ON t.id = tm.team_id").
		Group("t.id, t.name").
		Order("member_count DESC, t.name").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetTeamLeads returns a sample of admin memberships with user names
func (r *SummaryRepository) GetTeamLeads(limit int) ([]TeamLead, error) {
	var rows []TeamLead
	err := r.db.Table("team_memberships AS tm").
		Select("t.name AS team_name, u.full_name AS full_name, u.role AS role").
		Joins("JOIN users u ON tm.user_id = u.id").
		Joins("JOIN teams t ON tm.team_id = t.id").
		Where("tm.role = ?", models.MembershipRoleAdmin).
		Order("t.name").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountTimeTravelTasks counts tasks completed before they were created.
// A correct generator always yields zero.
func (r *SummaryRepository) CountTimeTravelTasks() (int64, error) {
	var count int64
	err := r.db.Model(&models.Task{}).Where("completed_at < created_at").Count(&count).Error
	return count, err
}

// CountTeamsWithMultipleAdmins counts teams holding more than one admin membership
func (r *SummaryRepository) CountTeamsWithMultipleAdmins() (int64, error) {
	var count int64
	err := r.db.Raw(`SELECT COUNT(*) FROM (
		SELECT team_id FROM team_memberships WHERE role = ? GROUP BY team_id HAVING COUNT(*) > 1
	) AS duplicated`, models.MembershipRoleAdmin).Scan(&count).Error
	return count, err
}

// GetCompletionBreakdown counts tasks by completion flag
func (r *SummaryRepository) GetCompletionBreakdown() ([]CompletionCount, error) {
	var rows []CompletionCount
	err := r.db.Model(&models.Task{}).
		Select("is_completed, COUNT(*) AS count").
		Group("is_completed").
		Order("is_completed").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetCompletionByRank aggregates completion by section rank
func (r *SummaryRepository) GetCompletionByRank() ([]RankCompletion, error) {
	var rows []RankCompletion
	err := r.db.Table("tasks").
		Select(`sections."rank" AS section_rank, COUNT(*) AS total,
			SUM(CASE WHEN tasks.is_completed THEN 1 ELSE 0 END) AS completed`).
		Joins("JOIN sections ON sections.id = tasks.section_id").
		Group(`sections."rank"`).
		Order("section_rank").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
