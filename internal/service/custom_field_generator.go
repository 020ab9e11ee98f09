package service

import (
	"math"
	"math/rand/v2"

	"org-simulator/internal/database/models"
	apperrors "org-simulator/internal/errors"
	"org-simulator/internal/metrics"
	"org-simulator/internal/repository"
)

const (
	StoryPointsField    = "Story Points"
	RequestChannelField = "Request Channel"
)

var (
	storyPointBuckets = []float64{1, 2, 3, 5, 8, 13, 21}
	requestChannels   = []string{"Slack", "Email", "Jira", "Meeting"}
)

// CustomFieldGenerator defines the organization's custom task fields and
// fills them for a share of tasks
type CustomFieldGenerator struct {
	store          repository.StoreInterface
	rate           float64
	metrics        *metrics.Recorder
	storyPoints    *models.CustomFieldDefinition
	requestChannel *models.CustomFieldDefinition
}

// NewCustomFieldGenerator creates a generator that fills values for a task
// with probability rate
func NewCustomFieldGenerator(store repository.StoreInterface, rate float64, rec *metrics.Recorder) *CustomFieldGenerator {
	return &CustomFieldGenerator{store: store, rate: rate, metrics: rec}
}

// Define creates the field definitions for org
func (g *CustomFieldGenerator) Define(org *models.Organization) error {
	storyPoints := &models.CustomFieldDefinition{OrganizationID: org.ID, Name: StoryPointsField, FieldType: models.CustomFieldTypeNumber}
	if err := g.store.CreateCustomFieldDefinition(storyPoints); err != nil {
		return apperrors.NewPersistenceError("create", "custom field definition", err)
	}
	requestChannel := &models.CustomFieldDefinition{OrganizationID: org.ID, Name: RequestChannelField, FieldType: models.CustomFieldTypeText}
	if err := g.store.CreateCustomFieldDefinition(requestChannel); err != nil {
		return apperrors.NewPersistenceError("create", "custom field definition", err)
	}
	g.storyPoints, g.requestChannel = storyPoints, requestChannel
	return nil
}

// Generate writes values for persisted tasks. durationDays[i] is the planned
// duration of tasks[i]. Without Define it does nothing.
func (g *CustomFieldGenerator) Generate(rng *rand.Rand, tasks []models.Task, durationDays []float64) error {
	if g.storyPoints == nil || g.requestChannel == nil {
		return nil
	}

	var values []models.CustomFieldValue
	for i := range tasks {
		if rng.Float64() >= g.rate {
			continue
		}
		points := StoryPoints(durationDays[i])
		channel := requestChannels[rng.IntN(len(requestChannels))]
		values = append(values,
			models.CustomFieldValue{TaskID: tasks[i].ID, FieldDefinitionID: g.storyPoints.ID, ValueNumber: &points},
			models.CustomFieldValue{TaskID: tasks[i].ID, FieldDefinitionID: g.requestChannel.ID, ValueText: &channel},
		)
	}
	if len(values) == 0 {
		return nil
	}
	if err := g.store.CreateCustomFieldValues(values); err != nil {
		return apperrors.NewPersistenceError("create", "custom field values", err)
	}
	g.metrics.EntitiesGenerated("custom_field_value", len(values))
	return nil
}

// StoryPoints returns the Fibonacci bucket nearest to days; ties go low
func StoryPoints(days float64) float64 {
	best := storyPointBuckets[0]
	for _, b := range storyPointBuckets[1:] {
		if math.Abs(b-days) < math.Abs(best-days) {
			best = b
		}
	}
	return best
}
