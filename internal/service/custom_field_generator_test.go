package service_test

import (
	"testing"

	"org-simulator/internal/database/models"
	"org-simulator/internal/repository"
	"org-simulator/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryPoints(t *testing.T) {
	testCases := []struct {
		days     float64
		expected float64
	}{
		{0.1, 1},
		{1.4, 1},
		{1.5, 1},
		{1.6, 2},
		{4, 3},
		{4.1, 5},
		{10.4, 8},
		{17, 13},
		{60, 21},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, service.StoryPoints(tc.days), "days=%v", tc.days)
	}
}

func TestCustomFieldGenerator(t *testing.T) {
	store := repository.NewMemoryStore()
	team, project, err := seedProject(store, "Backlog")
	require.NoError(t, err)

	tasks := []models.Task{
		{ProjectID: project.ID, SectionID: project.Sections[0].ID, Name: "a"},
		{ProjectID: project.ID, SectionID: project.Sections[0].ID, Name: "b"},
	}
	require.NoError(t, store.CreateTasks(tasks))
	org := &models.Organization{BaseModel: models.BaseModel{ID: team.OrganizationID}}

	t.Run("without definitions nothing is written", func(t *testing.T) {
		gen := service.NewCustomFieldGenerator(store, 1, nil)
		require.NoError(t, gen.Generate(newRNG(1), tasks, []float64{1, 2}))
		assert.Empty(t, store.CustomFieldValues())
	})

	t.Run("rate zero writes no values", func(t *testing.T) {
		gen := service.NewCustomFieldGenerator(store, 0, nil)
		require.NoError(t, gen.Define(org))
		require.NoError(t, gen.Generate(newRNG(1), tasks, []float64{1, 2}))
		assert.Empty(t, store.CustomFieldValues())
	})

	t.Run("rate one fills every task", func(t *testing.T) {
		gen := service.NewCustomFieldGenerator(store, 1, nil)
		require.NoError(t, gen.Define(org))
		require.NoError(t, gen.Generate(newRNG(1), tasks, []float64{4.2, 12}))

		values := store.CustomFieldValues()
		require.Len(t, values, 4)
		var numbers []float64
		for _, v := range values {
			if v.ValueNumber != nil {
				numbers = append(numbers, *v.ValueNumber)
				assert.Nil(t, v.ValueText)
			} else {
				require.NotNil(t, v.ValueText)
				assert.Contains(t, []string{"Slack", "Email", "Jira", "Meeting"}, *v.ValueText)
			}
		}
		assert.Equal(t, []float64{5, 13}, numbers)
	})
}
