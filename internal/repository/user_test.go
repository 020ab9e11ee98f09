//go:build integration
// +build integration

package repository

import (
	"testing"

	"org-simulator/internal/database/models"
	"org-simulator/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	orgRepo       *OrganizationRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
	org           *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.org))
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByEmail tests retrieving a user by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
	suite.True(found.IsActive)

	_, err = suite.repo.GetByEmail("nobody@initech.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOrganizationID tests listing users with their memberships
func (suite *UserRepositoryTestSuite) TestGetByOrganizationID() {
	team := suite.factories.Team.Create(suite.org.ID)
	suite.Require().NoError(suite.teamRepo.Create(team))

	for i := 0; i < 3; i++ {
		user := suite.factories.User.Create(suite.org.ID)
		suite.Require().NoError(suite.repo.Create(user))
		suite.Require().NoError(suite.teamRepo.CreateMembership(&models.TeamMembership{UserID: user.ID, TeamID: team.ID, Role: models.MembershipRoleMember}))
	}

	users, total, err := suite.repo.GetByOrganizationID(suite.org.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(users, 2)
	suite.Less(users[0].Email, users[1].Email)
	suite.True(users[0].MemberOf(team.ID))

	_, total, err = suite.repo.GetByOrganizationID(uuid.New(), 10, 0)
	suite.NoError(err)
	suite.Zero(total)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
