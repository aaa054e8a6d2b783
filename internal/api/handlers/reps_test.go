package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesflow-backend/internal/api/handlers"
	"salesflow-backend/internal/incentive"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/persistence"
	"salesflow-backend/internal/sales"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// RepsHandlerTestSuite defines the test suite for RepsHandler
type RepsHandlerTestSuite struct {
	suite.Suite
	store   *store.Store
	handler *handlers.RepsHandler
	router  *gin.Engine
}

func (suite *RepsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = store.New(persistence.NewMemory(), logger.New())
	suite.Require().NoError(suite.store.Load(context.Background()))

	suite.handler = handlers.NewRepsHandler(suite.store, validator.New())

	suite.router = gin.New()
	suite.router.GET("/reps", suite.handler.ListReps)
	suite.router.PATCH("/reps/:id/quota", suite.handler.UpdateQuota)
	suite.router.GET("/reps/:id/incentive", suite.handler.Incentive)
}

func (suite *RepsHandlerTestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *RepsHandlerTestSuite) serve(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RepsHandlerTestSuite) TestListReps() {
	w := suite.serve(http.MethodGet, "/reps", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []sales.SalesRep
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got, 5)
	assert.Equal(suite.T(), "george", got[0].ID)
	assert.Equal(suite.T(), []string{"Dinesh", "Venkat", "Arjun"}, got[2].TeamMembers)
}

func (suite *RepsHandlerTestSuite) TestUpdateQuota_Success() {
	w := suite.serve(http.MethodPatch, "/reps/george/quota", map[string]any{"quota": 5 * sales.Crore})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got sales.SalesRep
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 5.0*sales.Crore, got.Quota)

	rep, err := suite.store.Rep("george")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 5.0*sales.Crore, rep.Quota)
}

func (suite *RepsHandlerTestSuite) TestUpdateQuota_Invalid() {
	w := suite.serve(http.MethodPatch, "/reps/george/quota", map[string]any{"quota": 0})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.serve(http.MethodPatch, "/reps/george/quota", map[string]any{"quota": -2000})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	rep, err := suite.store.Rep("george")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 4.0*sales.Crore, rep.Quota)
}

func (suite *RepsHandlerTestSuite) TestUpdateQuota_NotFound() {
	w := suite.serve(http.MethodPatch, "/reps/nobody/quota", map[string]any{"quota": sales.Crore})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RepsHandlerTestSuite) TestIncentive() {
	// George closed 0.4 Cr against a 4 Cr quota, 10% achievement
	w := suite.serve(http.MethodGet, "/reps/george/incentive", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got incentive.Statement
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "george", got.RepID)
	assert.InDelta(suite.T(), 0.4*sales.Crore, got.Revenue, 0.01)
	assert.InDelta(suite.T(), 10.0, got.AchievementPct, 0.001)
	assert.Equal(suite.T(), 5.0, got.TierPercent)
	assert.False(suite.T(), got.IncentiveEligible)
	assert.Len(suite.T(), got.PlanHealth, 4)
}

func (suite *RepsHandlerTestSuite) TestIncentive_NotFound() {
	w := suite.serve(http.MethodGet, "/reps/nobody/incentive", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestRepsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RepsHandlerTestSuite))
}
