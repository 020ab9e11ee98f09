package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"org-simulator/internal/testutils"

	"github.com/stretchr/testify/suite"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(context.Context) error { return p.err }

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
}

func (suite *HealthHandlerTestSuite) setup(pinger Pinger) {
	handler := NewHealthHandler(pinger, "test")
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/health", handler.Health)
	suite.httpSuite.Router.GET("/health/ready", handler.Ready)
	suite.httpSuite.Router.GET("/health/live", handler.Live)
}

// TestHealthy tests the health endpoint with a reachable database
func (suite *HealthHandlerTestSuite) TestHealthy() {
	suite.setup(stubPinger{})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("healthy", response.Status)
	suite.Equal("test", response.Version)
	suite.Equal("healthy", response.Services["database"])
}

// TestUnhealthy tests the health endpoint when the database is down
func (suite *HealthHandlerTestSuite) TestUnhealthy() {
	suite.setup(stubPinger{err: errors.New("connection refused")})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response HealthResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &response)
	suite.Equal("unhealthy", response.Status)
	suite.Contains(response.Services["database"], "connection refused")
}

// TestReady tests the readiness endpoint in both states
func (suite *HealthHandlerTestSuite) TestReady() {
	suite.setup(stubPinger{})
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["ready"])

	suite.setup(stubPinger{err: errors.New("timeout")})
	recorder = suite.httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusServiceUnavailable, &response)
	suite.Equal(false, response["ready"])
}

// TestLive tests that liveness ignores the database
func (suite *HealthHandlerTestSuite) TestLive() {
	suite.setup(stubPinger{err: errors.New("down")})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(true, response["alive"])
}

// TestHealthHandlerTestSuite runs the test suite
func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
