package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salesflow-backend/internal/api/handlers"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/persistence"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// LiveHandlerTestSuite defines the test suite for LiveHandler
type LiveHandlerTestSuite struct {
	suite.Suite
	store  *store.Store
	feed   *store.Feed
	router *gin.Engine
}

func (suite *LiveHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.store = store.New(persistence.NewMemory(), logger.New())
	suite.Require().NoError(suite.store.Load(context.Background()))

	// No notifier, so enabling the feed runs the simulation
	suite.feed = store.NewFeed(suite.store, nil, store.FeedConfig{
		Interval:     time.Hour,
		TickChance:   0.3,
		JitterPoints: 5,
	})

	handler := handlers.NewLiveHandler(suite.feed, validator.New())
	suite.router = gin.New()
	suite.router.GET("/live", handler.Status)
	suite.router.PATCH("/live", handler.Toggle)
}

func (suite *LiveHandlerTestSuite) TearDownTest() {
	suite.Require().NoError(suite.feed.SetLive(false))
	suite.store.Close()
}

func (suite *LiveHandlerTestSuite) toggle(body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPatch, "/live", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LiveHandlerTestSuite) TestStatus_InitiallyOff() {
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.LiveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Enabled)
	assert.Equal(suite.T(), store.ModeOff, got.Mode)
}

func (suite *LiveHandlerTestSuite) TestToggle() {
	w := suite.toggle(map[string]any{"enabled": true})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got handlers.LiveResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(suite.T(), got.Enabled)
	assert.Equal(suite.T(), store.ModeSimulated, got.Mode)
	assert.True(suite.T(), suite.feed.Live())

	w = suite.toggle(map[string]any{"enabled": false})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Enabled)
	assert.Equal(suite.T(), store.ModeOff, got.Mode)
	assert.False(suite.T(), suite.feed.Live())
}

func (suite *LiveHandlerTestSuite) TestToggle_MissingFlag() {
	w := suite.toggle(map[string]any{})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), suite.feed.Live())
}

func TestLiveHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LiveHandlerTestSuite))
}
