//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"org-simulator/internal/database/models"
	"org-simulator/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite tests the gorm-backed Store and SummaryRepository
type StoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *Store
	summary       *SummaryRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *StoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.summary = NewSummaryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *StoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *StoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *StoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *StoreTestSuite) seedTeam() (*models.Organization, *models.Team) {
	org := suite.factories.Organization.Create()
	suite.Require().NoError(suite.store.CreateOrganization(org))
	team := suite.factories.Team.Create(org.ID)
	suite.Require().NoError(suite.store.CreateTeam(team))
	return org, team
}

// TestCreateAssignsIdentity tests that every Create call returns with an ID
func (suite *StoreTestSuite) TestCreateAssignsIdentity() {
	org, team := suite.seedTeam()

	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(org.CreatedAt)

	found, err := suite.store.Organizations.GetByDomain("initech.com")
	suite.NoError(err)
	suite.Equal(org.ID, found.ID)
}

// TestDuplicateEmail tests the unique email index
func (suite *StoreTestSuite) TestDuplicateEmail() {
	org, _ := suite.seedTeam()

	user := suite.factories.User.Create(org.ID)
	suite.Require().NoError(suite.store.CreateUser(user))

	dup := suite.factories.User.Create(org.ID)
	dup.Email = user.Email
	err := suite.store.CreateUser(dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestSingleAdminPerTeam tests the partial unique index on admin memberships
func (suite *StoreTestSuite) TestSingleAdminPerTeam() {
	org, team := suite.seedTeam()

	first := suite.factories.User.Create(org.ID)
	second := suite.factories.User.Create(org.ID)
	suite.Require().NoError(suite.store.CreateUser(first))
	suite.Require().NoError(suite.store.CreateUser(second))

	suite.NoError(suite.store.CreateMembership(&models.TeamMembership{UserID: first.ID, TeamID: team.ID, Role: models.MembershipRoleAdmin}))
	err := suite.store.CreateMembership(&models.TeamMembership{UserID: second.ID, TeamID: team.ID, Role: models.MembershipRoleAdmin})
	suite.Error(err)

	suite.NoError(suite.store.CreateMembership(&models.TeamMembership{UserID: second.ID, TeamID: team.ID, Role: models.MembershipRoleMember}))

	loaded, err := suite.store.Teams.GetWithMemberships(team.ID)
	suite.NoError(err)
	suite.Len(loaded.Memberships, 2)
}

// TestSectionsAndTasks tests bulk creation and rank ordering
func (suite *StoreTestSuite) TestSectionsAndTasks() {
	_, team := suite.seedTeam()

	project := suite.factories.Project.Create(team.ID)
	suite.Require().NoError(suite.store.CreateProject(project))

	sections := suite.factories.Project.Sections(project.ID, "Backlog", "In Development", "Deployed")
	suite.Require().NoError(suite.store.CreateSections(sections))

	dup := suite.factories.Project.Sections(project.ID, "Again")
	suite.Error(suite.store.CreateSections(dup))

	tasks := []models.Task{
		suite.factories.Task.Create(project.ID, sections[0].ID),
		suite.factories.Task.Completed(project.ID, sections[2].ID),
	}
	suite.Require().NoError(suite.store.CreateTasks(tasks))
	suite.NotEqual(uuid.Nil, tasks[1].ID)

	loaded, err := suite.store.Projects.GetWithSections(project.ID)
	suite.NoError(err)
	suite.Equal([]string{"Backlog", "In Development", "Deployed"}, []string{loaded.Sections[0].Name, loaded.Sections[1].Name, loaded.Sections[2].Name})

	stored, err := suite.store.Tasks.GetByProjectID(project.ID)
	suite.NoError(err)
	suite.Len(stored, 2)
	for i := range stored {
		suite.Equal(tasks[0].CreatedAt.Unix(), stored[i].CreatedAt.Unix(), "simulated creation time is kept")
	}

	ranks, err := suite.summary.GetCompletionByRank()
	suite.NoError(err)
	suite.Equal([]RankCompletion{{SectionRank: 0, Total: 1}, {SectionRank: 2, Total: 1, Completed: 1}}, ranks)

	travel, err := suite.summary.CountTimeTravelTasks()
	suite.NoError(err)
	suite.Zero(travel)
}

// TestTransactionRollback tests that a failing callback discards its writes
func (suite *StoreTestSuite) TestTransactionRollback() {
	boom := errors.New("boom")

	err := suite.store.Transaction(func(tx StoreInterface) error {
		org := suite.factories.Organization.Create()
		if err := tx.CreateOrganization(org); err != nil {
			return err
		}
		if err := tx.CreateTeam(suite.factories.Team.Create(org.ID)); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	volume, err := suite.summary.GetVolume()
	suite.NoError(err)
	suite.Equal(&VolumeStats{}, volume)
}

// TestSummaryQueries tests the inspection queries on a small dataset
func (suite *StoreTestSuite) TestSummaryQueries() {
	org, team := suite.seedTeam()

	lead := suite.factories.User.Create(org.ID)
	lead.Role = "Engineering Lead"
	member := suite.factories.User.Create(org.ID)
	suite.Require().NoError(suite.store.CreateUser(lead))
	suite.Require().NoError(suite.store.CreateUser(member))
	suite.Require().NoError(suite.store.CreateMembership(&models.TeamMembership{UserID: lead.ID, TeamID: team.ID, Role: models.MembershipRoleAdmin}))
	suite.Require().NoError(suite.store.CreateMembership(&models.TeamMembership{UserID: member.ID, TeamID: team.ID, Role: models.MembershipRoleMember}))

	teams, err := suite.summary.GetLargestTeams(5)
	suite.NoError(err)
	suite.Equal([]TeamSize{{TeamName: team.Name, MemberCount: 2}}, teams)

	leads, err := suite.summary.GetTeamLeads(5)
	suite.NoError(err)
	suite.Require().Len(leads, 1)
	suite.Equal("Engineering Lead", leads[0].Role)

	multi, err := suite.summary.CountTeamsWithMultipleAdmins()
	suite.NoError(err)
	suite.Zero(multi)
}

// TestDatabaseSize tests that the store reports a human-readable size
func (suite *StoreTestSuite) TestDatabaseSize() {
	suite.seedTeam()

	size, err := suite.summary.GetDatabaseSize()
	suite.NoError(err)
	suite.Regexp(`^\d+ (bytes|kB|MB|GB)$`, size)
}

// TestStoreTestSuite runs the test suite
func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
