package service_test

import (
	"testing"
	"time"

	"org-simulator/internal/config"
	"org-simulator/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationOptions(t *testing.T) {
	cfg := &config.Config{
		TotalUsers:              300,
		TargetTeamSize:          10,
		OrganizationName:        "Initech",
		DefaultOrganizationName: "Globex Corp",
		Seed:                    99,
		CompanyFetchLimit:       5,
		MinProjectsPerTeam:      2,
		MaxProjectsPerTeam:      3,
		FallbackPoolSize:        4,
		MaxEmailAttempts:        50,
		TaskDurationMu:          0.5,
		TaskDurationSigma:       0.8,
		TaskDurationMinDays:     0.1,
		TaskDurationMaxDays:     60,
		DoneKeywords:            []string{"done"},
		DoneProbability:         1,
		BacklogKeywords:         []string{"backlog"},
		BacklogProbability:      0,
		MinTasksPerSection:      1,
		MaxTasksPerSection:      2,
		TaskMaxAgeDays:          30,
		AssignmentRate:          0.5,
		CustomFieldRate:         0.25,
		CompanyFetchTimeoutSec:  3,
		ContentTimeoutSec:       20,
	}

	opts := service.NewSimulationOptions(cfg)

	assert.Equal(t, 300, opts.TotalUsers)
	assert.Equal(t, "Initech", opts.OrganizationName)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Equal(t, 3, opts.MaxProjectsPerTeam)
	assert.Equal(t, service.NewDurationSampler(0.5, 0.8, 0.1, 60), opts.Duration)
	assert.Equal(t, []string{"done"}, opts.Completion.DoneKeywords)
	assert.Equal(t, 30, opts.Tasks.MaxAgeDays)
	assert.Equal(t, 0.25, opts.CustomFieldRate)
	require.NoError(t, validator.New().Struct(opts))

	assert.Equal(t, 3*time.Second, service.CompanyFetchTimeout(cfg))
	assert.Equal(t, 20*time.Second, service.ContentTimeout(cfg))
}

func TestSimulationOptionsValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*service.SimulationOptions)
	}{
		{"no users", func(o *service.SimulationOptions) { o.TotalUsers = 0 }},
		{"no team size", func(o *service.SimulationOptions) { o.TargetTeamSize = 0 }},
		{"no default name", func(o *service.SimulationOptions) { o.DefaultOrganizationName = "" }},
		{"inverted project range", func(o *service.SimulationOptions) { o.MinProjectsPerTeam, o.MaxProjectsPerTeam = 4, 1 }},
		{"custom field rate above one", func(o *service.SimulationOptions) { o.CustomFieldRate = 1.5 }},
		{"inverted duration clamp", func(o *service.SimulationOptions) { o.Duration.MaxDays = 0.05 }},
		{"negative done probability", func(o *service.SimulationOptions) { o.Completion.DoneProbability = -0.1 }},
	}

	v := validator.New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := service.DefaultSimulationOptions()
			tc.mutate(&opts)
			assert.Error(t, v.Struct(opts))
		})
	}
}
