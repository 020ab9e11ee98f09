package service

import (
	"time"

	"org-simulator/internal/config"
)

// SimulationOptions parameterizes one generation run
type SimulationOptions struct {
	TotalUsers              int    `validate:"gte=1"`
	TargetTeamSize          int    `validate:"gte=1"`
	OrganizationName        string `validate:"max=200"`
	DefaultOrganizationName string `validate:"required,max=200"`
	// Seed drives every random draw of the run; zero picks a time-based seed
	Seed               uint64
	CompanyFetchLimit  int `validate:"gte=1"`
	MinProjectsPerTeam int `validate:"gte=0"`
	MaxProjectsPerTeam int `validate:"gtefield=MinProjectsPerTeam"`
	FallbackPoolSize   int `validate:"gte=0"`
	MaxEmailAttempts   int `validate:"gte=0"`

	Duration        DurationSampler
	Completion      CompletionPolicy
	Tasks           TaskSettings
	CustomFieldRate float64 `validate:"gte=0,lte=1"`
}

// DefaultSimulationOptions mirrors the configuration defaults
func DefaultSimulationOptions() SimulationOptions {
	return SimulationOptions{
		TotalUsers:              5000,
		TargetTeamSize:          12,
		DefaultOrganizationName: "Globex Corp",
		CompanyFetchLimit:       5,
		MinProjectsPerTeam:      1,
		MaxProjectsPerTeam:      4,
		FallbackPoolSize:        3,
		MaxEmailAttempts:        100,
		Duration:                NewDurationSampler(0.5, 0.8, 0.1, 60),
		Completion:              DefaultCompletionPolicy(),
		Tasks:                   DefaultTaskSettings(),
		CustomFieldRate:         0.7,
	}
}

// NewSimulationOptions builds run options from configuration
func NewSimulationOptions(cfg *config.Config) SimulationOptions {
	return SimulationOptions{
		TotalUsers:              cfg.TotalUsers,
		TargetTeamSize:          cfg.TargetTeamSize,
		OrganizationName:        cfg.OrganizationName,
		DefaultOrganizationName: cfg.DefaultOrganizationName,
		Seed:                    cfg.Seed,
		CompanyFetchLimit:       cfg.CompanyFetchLimit,
		MinProjectsPerTeam:      cfg.MinProjectsPerTeam,
		MaxProjectsPerTeam:      cfg.MaxProjectsPerTeam,
		FallbackPoolSize:        cfg.FallbackPoolSize,
		MaxEmailAttempts:        cfg.MaxEmailAttempts,
		Duration: NewDurationSampler(
			cfg.TaskDurationMu, cfg.TaskDurationSigma,
			cfg.TaskDurationMinDays, cfg.TaskDurationMaxDays,
		),
		Completion: CompletionPolicy{
			DoneKeywords:       cfg.DoneKeywords,
			DoneProbability:    cfg.DoneProbability,
			BacklogKeywords:    cfg.BacklogKeywords,
			BacklogProbability: cfg.BacklogProbability,
		},
		Tasks: TaskSettings{
			MinPerSection:  cfg.MinTasksPerSection,
			MaxPerSection:  cfg.MaxTasksPerSection,
			MaxAgeDays:     cfg.TaskMaxAgeDays,
			AssignmentRate: cfg.AssignmentRate,
		},
		CustomFieldRate: cfg.CustomFieldRate,
	}
}

// CompanyFetchTimeout returns the name-source timeout from configuration
func CompanyFetchTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.CompanyFetchTimeoutSec) * time.Second
}

// ContentTimeout returns the content-backend timeout from configuration
func ContentTimeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.ContentTimeoutSec) * time.Second
}
