package handlers

import (
	"errors"
	"net/http"
	"testing"

	"org-simulator/internal/mocks"
	"org-simulator/internal/repository"
	"org-simulator/internal/service"
	"org-simulator/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockReportService *mocks.MockReportServiceInterface
	handler           *ReportHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = NewReportHandler(suite.mockReportService)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/report", suite.handler.GetReport)
}

// TearDownTest cleans up after each test
func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetReport tests a healthy report
func (suite *ReportHandlerTestSuite) TestGetReport() {
	report := &service.Report{
		Volume:       repository.VolumeStats{Organizations: 1, Teams: 1, Users: 12, Tasks: 40},
		LargestTeams: []repository.TeamSize{{TeamName: "Engineering - Squad 1", MemberCount: 12}},
		CompletionByRank: []service.RankRate{
			{SectionRank: 0, Total: 10, Completed: 1, Rate: 0.1},
		},
	}
	suite.mockReportService.EXPECT().GetReport().Return(report, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/report", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), true, response["healthy"])
	volume := response["volume"].(map[string]interface{})
	assert.Equal(suite.T(), float64(12), volume["users"])
	assert.Len(suite.T(), response["largest_teams"], 1)
}

// TestGetReportUnhealthy tests that integrity failures still return the report
func (suite *ReportHandlerTestSuite) TestGetReportUnhealthy() {
	suite.mockReportService.EXPECT().GetReport().Return(&service.Report{TeamsWithMultipleAdmins: 1}, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/report", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), false, response["healthy"])
	assert.Equal(suite.T(), float64(1), response["teams_with_multiple_admins"])
}

// TestGetReportError tests a failing summary query
func (suite *ReportHandlerTestSuite) TestGetReportError() {
	suite.mockReportService.EXPECT().GetReport().Return(nil, errors.New("relation \"tasks\" does not exist")).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/report", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to build report")
}

// TestReportHandlerTestSuite runs the test suite
func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
