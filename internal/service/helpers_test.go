package service_test

import (
	"context"
	"math/rand/v2"
	"sync"

	"org-simulator/internal/database/models"
	"org-simulator/internal/repository"
	"org-simulator/internal/service"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// fixedNamer always returns the same person, forcing email collisions
type fixedNamer struct {
	first, last string
}

func (n fixedNamer) FirstName() string { return n.first }
func (n fixedNamer) LastName() string  { return n.last }

// recordingContent returns numbered items and records every call
type recordingContent struct {
	mu    sync.Mutex
	calls []contentCall
}

type contentCall struct {
	department string
	stage      string
	count      int
}

func (r *recordingContent) GenerateTaskContent(_ context.Context, department, stage string, count int) []service.TaskContent {
	r.mu.Lock()
	r.calls = append(r.calls, contentCall{department: department, stage: stage, count: count})
	r.mu.Unlock()

	items := make([]service.TaskContent, count)
	for i := range items {
		items[i] = service.TaskContent{Title: stage + " task", Description: "Standard task for " + stage + " task."}
	}
	return items
}

// seedProject persists an organization, team and project with the given stages
func seedProject(store *repository.MemoryStore, stages ...string) (*models.Team, *models.Project, error) {
	org := &models.Organization{Name: "Initech", Domain: "initech.com"}
	if err := store.CreateOrganization(org); err != nil {
		return nil, nil, err
	}
	team := &models.Team{OrganizationID: org.ID, Name: "Engineering - Squad 1"}
	if err := store.CreateTeam(team); err != nil {
		return nil, nil, err
	}
	project := &models.Project{TeamID: team.ID, Name: "API V2 Migration", Status: models.ProjectStatusOnTrack, Department: "Engineering"}
	if err := store.CreateProject(project); err != nil {
		return nil, nil, err
	}
	sections := make([]models.Section, len(stages))
	for i, stage := range stages {
		sections[i] = models.Section{ProjectID: project.ID, Name: stage, Rank: i}
	}
	if len(sections) > 0 {
		if err := store.CreateSections(sections); err != nil {
			return nil, nil, err
		}
	}
	project.Sections = sections
	return team, project, nil
}
