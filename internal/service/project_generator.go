package service

import (
	"math/rand/v2"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/vocabulary"
)

// ProjectGenerator creates projects for a team together with their ordered
// sections, using the department template the team name resolves to.
type ProjectGenerator struct {
	store   repository.StoreInterface
	vocab   *vocabulary.Vocabulary
	metrics *metrics.Recorder
}

// NewProjectGenerator creates a new project generator
func NewProjectGenerator(store repository.StoreInterface, vocab *vocabulary.Vocabulary, rec *metrics.Recorder) *ProjectGenerator {
	return &ProjectGenerator{store: store, vocab: vocab, metrics: rec}
}

// Generate creates count projects for team. Titles may repeat. Each project is
// persisted before its sections, and is returned with Sections populated in
// rank order.
func (g *ProjectGenerator) Generate(rng *rand.Rand, team *models.Team, count int) ([]models.Project, error) {
	dept := g.vocab.Resolve(team.Name)

	projects := make([]models.Project, 0, count)
	sectionCount := 0
	for i := 0; i < count; i++ {
		project := models.Project{
			TeamID:     team.ID,
			Name:       dept.ProjectTitles[rng.IntN(len(dept.ProjectTitles))],
			Status:     models.ProjectStatuses[rng.IntN(len(models.ProjectStatuses))],
			Department: dept.Name,
		}
		if err := g.store.CreateProject(&project); err != nil {
			return nil, apperrors.NewPersistenceError("create", "project", err)
		}

		sections := make([]models.Section, len(dept.Stages))
		for rank, stage := range dept.Stages {
			sections[rank] = models.Section{ProjectID: project.ID, Name: stage, Rank: rank}
		}
		if err := g.store.CreateSections(sections); err != nil {
			return nil, apperrors.NewPersistenceError("create", "sections", err)
		}
		project.Sections = sections
		sectionCount += len(sections)

		projects = append(projects, project)
	}

	g.metrics.EntitiesGenerated("project", len(projects))
	g.metrics.EntitiesGenerated("section", sectionCount)
	return projects, nil
}
