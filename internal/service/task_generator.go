package service

import (
	"context"
	"math/rand/v2"
	"time"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/logger"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
	"org-simulator/internal/vocabulary"
)

// TaskSettings shapes the task backlog of a project
type TaskSettings struct {
	MinPerSection  int     `validate:"gte=0"`
	MaxPerSection  int     `validate:"gtefield=MinPerSection"`
	MaxAgeDays     int     `validate:"gte=1"`
	AssignmentRate float64 `validate:"gte=0,lte=1"`
}

// DefaultTaskSettings returns 3-8 tasks per section, up to 90 days old, 85% assigned
func DefaultTaskSettings() TaskSettings {
	return TaskSettings{MinPerSection: 3, MaxPerSection: 8, MaxAgeDays: 90, AssignmentRate: 0.85}
}

// TaskGenerator fills a project's sections with tasks whose completion state
// follows the completion policy and whose timestamps satisfy
// created_at <= due_date and created_at <= completed_at <= now.
type TaskGenerator struct {
	store        repository.StoreInterface
	content      ContentProvider
	sampler      DurationSampler
	policy       CompletionPolicy
	settings     TaskSettings
	customFields *CustomFieldGenerator
	metrics      *metrics.Recorder
	now          func() time.Time
}

// NewTaskGenerator creates a new task generator. customFields may be nil.
func NewTaskGenerator(store repository.StoreInterface, content ContentProvider, sampler DurationSampler, policy CompletionPolicy, settings TaskSettings, customFields *CustomFieldGenerator, rec *metrics.Recorder) *TaskGenerator {
	return &TaskGenerator{
		store:        store,
		content:      content,
		sampler:      sampler,
		policy:       policy,
		settings:     settings,
		customFields: customFields,
		metrics:      rec,
		now:          time.Now,
	}
}

// Generate creates the tasks of project, drawing assignees from assignees.
// A project without sections yields no tasks and no store writes.
func (g *TaskGenerator) Generate(ctx context.Context, rng *rand.Rand, project *models.Project, assignees []models.User) ([]models.Task, error) {
	sections := models.SortSectionsByRank(project.Sections)
	if len(sections) == 0 {
		return nil, nil
	}

	department := project.Department
	if department == "" {
		department = vocabulary.GeneralContentKey
	}
	now := g.now().UTC()

	var tasks []models.Task
	var durations []float64
	for _, section := range sections {
		probability := g.policy.Probability(section.Rank, len(sections), section.Name)
		count := g.settings.MinPerSection + rng.IntN(g.settings.MaxPerSection-g.settings.MinPerSection+1)

		for _, content := range g.content.GenerateTaskContent(ctx, department, section.Name, count) {
			days := g.sampler.SampleDays(rng)
			task := g.newTask(rng, now, project, &section, content, days, probability, assignees)
			tasks = append(tasks, task)
			durations = append(durations, days)
		}
	}

	if err := g.store.CreateTasks(tasks); err != nil {
		return nil, apperrors.NewPersistenceError("create", "tasks", err)
	}
	if g.customFields != nil {
		if err := g.customFields.Generate(rng, tasks, durations); err != nil {
			return nil, err
		}
	}

	g.metrics.EntitiesGenerated("task", len(tasks))
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"project": project.Name,
		"tasks":   len(tasks),
	}).Debug("Generated tasks for project")
	return tasks, nil
}

func (g *TaskGenerator) newTask(rng *rand.Rand, now time.Time, project *models.Project, section *models.Section, content TaskContent, durationDays, probability float64, assignees []models.User) models.Task {
	createdAt := now.AddDate(0, 0, -(1 + rng.IntN(g.settings.MaxAgeDays)))
	dueDate := createdAt.Add(daysToDuration(durationDays))

	task := models.Task{
		BaseModel:   models.BaseModel{CreatedAt: createdAt},
		ProjectID:   project.ID,
		SectionID:   section.ID,
		Name:        content.Title,
		Description: content.Description,
		DueDate:     dueDate,
	}

	if rng.Float64() < probability {
		completedAt := completionTime(rng, now, createdAt, dueDate)
		task.IsCompleted = true
		task.CompletedAt = &completedAt
	}

	if len(assignees) > 0 && rng.Float64() < g.settings.AssignmentRate {
		id := assignees[rng.IntN(len(assignees))].ID
		task.AssigneeID = &id
	}

	task.Priority = models.TaskPriorities[rng.IntN(len(models.TaskPriorities))]
	return task
}

// completionTime scatters completion between two days early and five days
// late around the due date, then pulls it inside [createdAt, now]
func completionTime(rng *rand.Rand, now, createdAt, dueDate time.Time) time.Time {
	variance := -2 + rng.Float64()*7
	completed := dueDate.Add(daysToDuration(variance))

	if completed.Before(createdAt) {
		completed = createdAt.Add(time.Duration(1+rng.IntN(24)) * time.Hour)
	}
	if completed.After(now) {
		completed = now.Add(-time.Duration(10+rng.IntN(991)) * time.Minute)
	}
	return completed
}
