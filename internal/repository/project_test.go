//go:build integration
// +build integration

package repository

import (
	"testing"

	"org-simulator/internal/database/models"
	"org-simulator/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ProjectRepositoryTestSuite tests the ProjectRepository and TaskRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	taskRepo      *TaskRepository
	factories     *testutils.FactorySet
	team          *models.Team
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.taskRepo = NewTaskRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	org := suite.factories.Organization.Create()
	suite.Require().NoError(NewOrganizationRepository(db).Create(org))
	suite.team = suite.factories.Team.Create(org.ID)
	suite.Require().NoError(NewTeamRepository(db).Create(suite.team))
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByTeamID tests listing a team's projects
func (suite *ProjectRepositoryTestSuite) TestGetByTeamID() {
	first := suite.factories.Project.Create(suite.team.ID)
	second := suite.factories.Project.Create(suite.team.ID)
	second.Name = "Security Audit"
	suite.Require().NoError(suite.repo.Create(first))
	suite.Require().NoError(suite.repo.Create(second))

	projects, err := suite.repo.GetByTeamID(suite.team.ID)
	suite.NoError(err)
	suite.Len(projects, 2)
}

// TestCreateSectionsEmpty tests that an empty batch is a no-op
func (suite *ProjectRepositoryTestSuite) TestCreateSectionsEmpty() {
	suite.NoError(suite.repo.CreateSections(nil))
}

// TestCustomFieldValues tests definitions and values attached to a task
func (suite *ProjectRepositoryTestSuite) TestCustomFieldValues() {
	project := suite.factories.Project.Create(suite.team.ID)
	suite.Require().NoError(suite.repo.Create(project))
	sections := suite.factories.Project.Sections(project.ID, "Backlog")
	suite.Require().NoError(suite.repo.CreateSections(sections))

	tasks := []models.Task{suite.factories.Task.Create(project.ID, sections[0].ID)}
	suite.Require().NoError(suite.taskRepo.CreateInBatches(tasks))

	definition := &models.CustomFieldDefinition{OrganizationID: suite.team.OrganizationID, Name: "Story Points", FieldType: models.CustomFieldTypeNumber}
	suite.Require().NoError(suite.taskRepo.CreateCustomFieldDefinition(definition))

	points := 5.0
	suite.Require().NoError(suite.taskRepo.CreateCustomFieldValues([]models.CustomFieldValue{
		{TaskID: tasks[0].ID, FieldDefinitionID: definition.ID, ValueNumber: &points},
	}))
	suite.NoError(suite.taskRepo.CreateCustomFieldValues(nil))

	values, err := suite.taskRepo.GetCustomFieldValuesByTaskID(tasks[0].ID)
	suite.NoError(err)
	suite.Require().Len(values, 1)
	suite.Equal(5.0, *values[0].ValueNumber)
	suite.Nil(values[0].ValueText)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
