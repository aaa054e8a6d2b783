package store

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "salesflow-backend/internal/errors"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/mocks"
	"salesflow-backend/internal/sales"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errRemote = errors.New("backend unavailable")

// StoreTestSuite drives the optimistic synchronization semantics against
// a mocked collaborator
type StoreTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	collab *mocks.MockCollaborator
	store  *Store
	now    time.Time
	ctx    context.Context
}

func (suite *StoreTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.collab = mocks.NewMockCollaborator(suite.ctrl)
	suite.now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.store = New(suite.collab, logger.New(), WithClock(func() time.Time {
		return suite.now
	}))
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.store.Close()
	suite.ctrl.Finish()
}

func (suite *StoreTestSuite) loadFixture(deals []sales.Deal, reps []sales.SalesRep) {
	suite.collab.EXPECT().FetchReps(gomock.Any()).Return(reps, nil)
	suite.collab.EXPECT().FetchDeals(gomock.Any()).Return(deals, nil)
	suite.Require().NoError(suite.store.Load(suite.ctx))
}

func fixtureDeal(id string, stage sales.Stage) sales.Deal {
	return sales.Deal{
		ID:            id,
		CustomerName:  "Wipro",
		Title:         "Hardware Upgrade",
		Value:         1.2 * sales.Crore,
		Stage:         stage,
		Category:      sales.CategoryHardware,
		BusinessType:  sales.BusinessTypeExisting,
		AssignedRepID: "george",
		CloseDate:     time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		Probability:   60,
	}
}

func (suite *StoreTestSuite) TestLoadFallsBackToSeedsOnFetchFailure() {
	suite.collab.EXPECT().FetchReps(gomock.Any()).Return(nil, errRemote)
	suite.collab.EXPECT().FetchDeals(gomock.Any()).Return(nil, errRemote)

	suite.Require().NoError(suite.store.Load(suite.ctx))

	suite.Len(suite.store.Reps(), 5)
	suite.Len(suite.store.Deals(), 7)

	notices := suite.store.Notices()
	suite.Require().Len(notices, 1)
	suite.Equal("load", notices[0].Op)
}

func (suite *StoreTestSuite) TestCreateDealVisibleBeforeConfirmation() {
	suite.loadFixture(nil, nil)

	release := make(chan struct{})
	confirmed := fixtureDeal("server-1", sales.StageLead)
	confirmed.LastUpdated = suite.now.Add(time.Second)
	suite.collab.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d sales.Deal) (sales.Deal, error) {
			<-release
			return confirmed, nil
		})

	created, err := suite.store.CreateDeal(suite.ctx, fixtureDeal("", sales.StageLead), time.Time{})
	suite.Require().NoError(err)
	suite.True(IsLocalID(created.ID))

	// Visible immediately under the temporary id
	deals := suite.store.Deals()
	suite.Require().Len(deals, 1)
	suite.Equal(created.ID, deals[0].ID)
	suite.Equal(suite.now, deals[0].LastUpdated)
	suite.Equal(suite.now, deals[0].StageHistory[sales.StageLead])

	// After confirmation only the id and timestamp change
	close(release)
	suite.store.Wait()

	deals = suite.store.Deals()
	suite.Require().Len(deals, 1)
	suite.Equal("server-1", deals[0].ID)
	suite.Equal(confirmed.LastUpdated, deals[0].LastUpdated)
	suite.Equal("Hardware Upgrade", deals[0].Title)
	suite.Empty(suite.store.Notices())
}

func (suite *StoreTestSuite) TestCreateDealHonorsStageDateOverride() {
	suite.loadFixture(nil, nil)

	stageAt := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	suite.collab.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, d sales.Deal) (sales.Deal, error) {
			return d, nil
		})

	created, err := suite.store.CreateDeal(suite.ctx, fixtureDeal("", sales.StageProposal), stageAt)
	suite.Require().NoError(err)
	suite.Equal(stageAt, created.StageHistory[sales.StageProposal])
	suite.Equal(suite.now, created.LastUpdated)

	suite.store.Wait()
}

func (suite *StoreTestSuite) TestCreateDealRollsBackOnFailure() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	suite.collab.EXPECT().CreateDeal(gomock.Any(), gomock.Any()).
		Return(sales.Deal{}, apperrors.NewRemoteError("create deal", errRemote))

	_, err := suite.store.CreateDeal(suite.ctx, fixtureDeal("", sales.StageLead), time.Time{})
	suite.Require().NoError(err)
	suite.store.Wait()

	// The optimistic entry is gone and only the original deal remains
	deals := suite.store.Deals()
	suite.Require().Len(deals, 1)
	suite.Equal("d-1", deals[0].ID)

	notices := suite.store.Notices()
	suite.Require().Len(notices, 1)
	suite.Equal("create deal", notices[0].Op)
}

func (suite *StoreTestSuite) TestUpdateDealRollsBackToSnapshot() {
	original := fixtureDeal("d-1", sales.StageProposal)
	original.Notes = "original notes"
	suite.loadFixture([]sales.Deal{original}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).
		Return(apperrors.NewRemoteError("update deal", errRemote))

	edit := original
	edit.Notes = "edited notes"
	edit.Value = 2 * sales.Crore

	updated, err := suite.store.UpdateDeal(suite.ctx, edit, time.Time{})
	suite.Require().NoError(err)
	suite.Equal("edited notes", updated.Notes)

	suite.store.Wait()

	// Rolled back wholesale
	got, err := suite.store.Deal("d-1")
	suite.Require().NoError(err)
	suite.Equal("original notes", got.Notes)
	suite.Equal(1.2*sales.Crore, got.Value)
	suite.Len(suite.store.Notices(), 1)
}

func (suite *StoreTestSuite) TestUpdateDealStampsStageChange() {
	original := fixtureDeal("d-1", sales.StageProposal)
	suite.loadFixture([]sales.Deal{original}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).Return(nil)

	edit := original
	edit.Stage = sales.StageNegotiation

	updated, err := suite.store.UpdateDeal(suite.ctx, edit, time.Time{})
	suite.Require().NoError(err)
	suite.Equal(sales.StageNegotiation, updated.Stage)
	suite.Equal(suite.now, updated.StageHistory[sales.StageNegotiation])

	suite.store.Wait()
}

func (suite *StoreTestSuite) TestUpdateDealUnknownID() {
	suite.loadFixture(nil, nil)

	_, err := suite.store.UpdateDeal(suite.ctx, fixtureDeal("ghost", sales.StageLead), time.Time{})
	suite.True(apperrors.IsNotFound(err))
}

func (suite *StoreTestSuite) TestMoveStageTripleNext() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	times := make([]time.Time, 0, 3)
	for i := 0; i < 3; i++ {
		suite.now = suite.now.Add(time.Minute)
		times = append(times, suite.now)
		_, err := suite.store.MoveStage(suite.ctx, "d-1", DirectionNext)
		suite.Require().NoError(err)
	}
	suite.store.Wait()

	got, err := suite.store.Deal("d-1")
	suite.Require().NoError(err)
	suite.Equal(sales.StageNegotiation, got.Stage)
	suite.Equal(times[0], got.StageHistory[sales.StageQualified])
	suite.Equal(times[1], got.StageHistory[sales.StageProposal])
	suite.Equal(times[2], got.StageHistory[sales.StageNegotiation])
	suite.Equal(times[2], got.LastUpdated)
}

func (suite *StoreTestSuite) TestMoveStageNextClampsAtTerminal() {
	deal := fixtureDeal("d-1", sales.StageClosedLost)
	deal.StageHistory = map[sales.Stage]time.Time{
		sales.StageClosedLost: suite.now.Add(-time.Hour),
	}
	suite.loadFixture([]sales.Deal{deal}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).Return(nil)

	suite.now = suite.now.Add(time.Minute)
	got, err := suite.store.MoveStage(suite.ctx, "d-1", DirectionNext)
	suite.Require().NoError(err)

	// Stage unchanged but the history entry and timestamp are restamped
	suite.Equal(sales.StageClosedLost, got.Stage)
	suite.Equal(suite.now, got.StageHistory[sales.StageClosedLost])
	suite.Equal(suite.now, got.LastUpdated)

	suite.store.Wait()
}

func (suite *StoreTestSuite) TestMoveStagePrevClampsAtLead() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).Return(nil)

	got, err := suite.store.MoveStage(suite.ctx, "d-1", DirectionPrev)
	suite.Require().NoError(err)
	suite.Equal(sales.StageLead, got.Stage)

	suite.store.Wait()
}

func (suite *StoreTestSuite) TestMoveStageInvalidDirection() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	_, err := suite.store.MoveStage(suite.ctx, "d-1", "sideways")
	suite.ErrorIs(err, apperrors.ErrInvalidDirection)

	// Nothing changed and no remote call was issued
	got, _ := suite.store.Deal("d-1")
	suite.Equal(sales.StageLead, got.Stage)
}

func (suite *StoreTestSuite) TestUpdateNotesRollsBack() {
	original := fixtureDeal("d-1", sales.StageLead)
	original.Notes = "keep me"
	suite.loadFixture([]sales.Deal{original}, nil)

	suite.collab.EXPECT().UpdateDeal(gomock.Any(), gomock.Any()).
		Return(apperrors.NewRemoteError("update deal", errRemote))

	_, err := suite.store.UpdateNotes(suite.ctx, "d-1", "scratch that")
	suite.Require().NoError(err)
	suite.store.Wait()

	got, _ := suite.store.Deal("d-1")
	suite.Equal("keep me", got.Notes)
}

func (suite *StoreTestSuite) TestDeleteDealRollsBackOnFailure() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	suite.collab.EXPECT().DeleteDeal(gomock.Any(), "d-1").
		Return(apperrors.NewRemoteError("delete deal", errRemote))

	suite.Require().NoError(suite.store.DeleteDeal(suite.ctx, "d-1"))

	// Gone optimistically
	_, err := suite.store.Deal("d-1")
	suite.True(apperrors.IsNotFound(err))

	suite.store.Wait()

	// Back after the rollback, with a notice
	got, err := suite.store.Deal("d-1")
	suite.Require().NoError(err)
	suite.Equal("d-1", got.ID)
	suite.Len(suite.store.Notices(), 1)
}

func (suite *StoreTestSuite) TestDeleteDealConfirmed() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)

	suite.collab.EXPECT().DeleteDeal(gomock.Any(), "d-1").Return(nil)

	suite.Require().NoError(suite.store.DeleteDeal(suite.ctx, "d-1"))
	suite.store.Wait()

	suite.Empty(suite.store.Deals())
	suite.Empty(suite.store.Notices())
}

func (suite *StoreTestSuite) TestUpdateRepQuotaValidation() {
	suite.loadFixture(nil, []sales.SalesRep{{ID: "george", Name: "George", Quota: 4 * sales.Crore}})

	_, err := suite.store.UpdateRepQuota(suite.ctx, "george", 0)
	suite.ErrorIs(err, apperrors.ErrQuotaNotPositive)

	_, err = suite.store.UpdateRepQuota(suite.ctx, "nobody", sales.Crore)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *StoreTestSuite) TestUpdateRepQuotaOptimisticAndConfirmed() {
	suite.loadFixture(nil, []sales.SalesRep{{ID: "george", Name: "George", Quota: 4 * sales.Crore}})

	suite.collab.EXPECT().UpdateRepQuota(gomock.Any(), "george", 5.0*sales.Crore).Return(nil)

	rep, err := suite.store.UpdateRepQuota(suite.ctx, "george", 5*sales.Crore)
	suite.Require().NoError(err)
	suite.Equal(5.0*sales.Crore, rep.Quota)

	suite.store.Wait()

	got, _ := suite.store.Rep("george")
	suite.Equal(5.0*sales.Crore, got.Quota)
}

func (suite *StoreTestSuite) TestUpdateRepQuotaFailureRefetchesReps() {
	suite.loadFixture(nil, []sales.SalesRep{{ID: "george", Name: "George", Quota: 4 * sales.Crore}})

	authoritative := []sales.SalesRep{{ID: "george", Name: "George", Quota: 7 * sales.Crore}}
	suite.collab.EXPECT().UpdateRepQuota(gomock.Any(), "george", 5.0*sales.Crore).
		Return(apperrors.NewRemoteError("update quota", errRemote))
	suite.collab.EXPECT().FetchReps(gomock.Any()).Return(authoritative, nil)

	_, err := suite.store.UpdateRepQuota(suite.ctx, "george", 5*sales.Crore)
	suite.Require().NoError(err)
	suite.store.Wait()

	// The collaborator's view wins over the local snapshot
	got, _ := suite.store.Rep("george")
	suite.Equal(7.0*sales.Crore, got.Quota)
	suite.Len(suite.store.Notices(), 1)
}

func (suite *StoreTestSuite) TestRefreshDiscardsStaleResults() {
	suite.loadFixture(nil, nil)

	stale := []sales.Deal{fixtureDeal("stale", sales.StageLead)}
	fresh := []sales.Deal{fixtureDeal("fresh", sales.StageLead)}

	staleStarted := make(chan struct{})
	release := make(chan struct{})
	suite.collab.EXPECT().FetchDeals(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]sales.Deal, error) {
			close(staleStarted)
			<-release
			return stale, nil
		})
	suite.collab.EXPECT().FetchDeals(gomock.Any()).Return(fresh, nil)

	done := make(chan error, 1)
	go func() { done <- suite.store.Refresh(suite.ctx) }()
	<-staleStarted

	// A newer refresh completes while the first is still in flight
	suite.Require().NoError(suite.store.Refresh(suite.ctx))

	close(release)
	suite.Require().NoError(<-done)

	deals := suite.store.Deals()
	suite.Require().Len(deals, 1)
	suite.Equal("fresh", deals[0].ID)
}

func (suite *StoreTestSuite) TestMutationsRejectedAfterClose() {
	suite.loadFixture([]sales.Deal{fixtureDeal("d-1", sales.StageLead)}, nil)
	suite.store.Close()

	_, err := suite.store.CreateDeal(suite.ctx, fixtureDeal("", sales.StageLead), time.Time{})
	suite.ErrorIs(err, apperrors.ErrStoreClosed)

	_, err = suite.store.MoveStage(suite.ctx, "d-1", DirectionNext)
	suite.ErrorIs(err, apperrors.ErrStoreClosed)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
