package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"salesflow-backend/internal/api/handlers"
	"salesflow-backend/internal/insight"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/mocks"
	"salesflow-backend/internal/persistence"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InsightsHandlerTestSuite defines the test suite for InsightsHandler
type InsightsHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockInsights *mocks.MockGenerator
	store        *store.Store
	router       *gin.Engine
}

func (suite *InsightsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInsights = mocks.NewMockGenerator(suite.ctrl)

	suite.store = store.New(persistence.NewMemory(), logger.New())
	suite.Require().NoError(suite.store.Load(context.Background()))

	handler := handlers.NewInsightsHandler(suite.store, suite.mockInsights)
	suite.router = gin.New()
	suite.router.GET("/insights/pipeline", handler.Pipeline)
}

func (suite *InsightsHandlerTestSuite) TearDownTest() {
	suite.store.Close()
	suite.ctrl.Finish()
}

func (suite *InsightsHandlerTestSuite) get() *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/insights/pipeline", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InsightsHandlerTestSuite) TestPipeline_Success() {
	suite.mockInsights.EXPECT().
		SummarizePipeline(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("### Pipeline Health\nStrong quarter ahead.", nil)

	w := suite.get()

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "### Pipeline Health\nStrong quarter ahead.", got["summary"])
}

func (suite *InsightsHandlerTestSuite) TestPipeline_FallsBackOnError() {
	suite.mockInsights.EXPECT().
		SummarizePipeline(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("quota exhausted"))

	w := suite.get()

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), insight.FallbackPipeline, got["summary"])
}

func TestInsightsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsHandlerTestSuite))
}
