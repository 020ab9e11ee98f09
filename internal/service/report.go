package service

import (
	"fmt"

	"org-simulator/internal/repository"
)

const reportSampleSize = 5

// RankRate is the completion rate of tasks in sections of one rank
type RankRate struct {
	SectionRank int     `json:"section_rank"`
	Total       int64   `json:"total"`
	Completed   int64   `json:"completed"`
	Rate        float64 `json:"rate"`
}

// Report is the read-only inspection of a generated store
type Report struct {
	Volume                  repository.VolumeStats       `json:"volume"`
	LargestTeams            []repository.TeamSize        `json:"largest_teams"`
	TeamLeads               []repository.TeamLead        `json:"team_leads"`
	TimeTravelTasks         int64                        `json:"time_travel_tasks"`
	TeamsWithMultipleAdmins int64                        `json:"teams_with_multiple_admins"`
	Completion              []repository.CompletionCount `json:"completion"`
	CompletionByRank        []RankRate                   `json:"completion_by_rank"`
}

// Healthy reports whether both integrity checks came back clean
func (r *Report) Healthy() bool {
	return r.TimeTravelTasks == 0 && r.TeamsWithMultipleAdmins == 0
}

// ReportService assembles inspection reports
type ReportService struct {
	repo repository.SummaryRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(repo repository.SummaryRepositoryInterface) *ReportService {
	return &ReportService{repo: repo}
}

// GetReport runs every summary query
func (s *ReportService) GetReport() (*Report, error) {
	volume, err := s.repo.GetVolume()
	if err != nil {
		return nil, fmt.Errorf("failed to count entities: %w", err)
	}
	teams, err := s.repo.GetLargestTeams(reportSampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get largest teams: %w", err)
	}
	leads, err := s.repo.GetTeamLeads(reportSampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get team leads: %w", err)
	}
	timeTravel, err := s.repo.CountTimeTravelTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to check task timeline: %w", err)
	}
	multiAdmin, err := s.repo.CountTeamsWithMultipleAdmins()
	if err != nil {
		return nil, fmt.Errorf("failed to check team admins: %w", err)
	}
	completion, err := s.repo.GetCompletionBreakdown()
	if err != nil {
		return nil, fmt.Errorf("failed to get completion breakdown: %w", err)
	}
	byRank, err := s.repo.GetCompletionByRank()
	if err != nil {
		return nil, fmt.Errorf("failed to get completion by rank: %w", err)
	}

	rates := make([]RankRate, len(byRank))
	for i, r := range byRank {
		rates[i] = RankRate{SectionRank: r.SectionRank, Total: r.Total, Completed: r.Completed}
		if r.Total > 0 {
			rates[i].Rate = float64(r.Completed) / float64(r.Total)
		}
	}

	return &Report{
		Volume:                  *volume,
		LargestTeams:            teams,
		TeamLeads:               leads,
		TimeTravelTasks:         timeTravel,
		TeamsWithMultipleAdmins: multiAdmin,
		Completion:              completion,
		CompletionByRank:        rates,
	}, nil
}
