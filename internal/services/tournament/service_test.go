package tournament

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/stbguild/guildhall/internal/common/clock/mocks"
	uuidMocks "github.com/stbguild/guildhall/internal/common/uuid/mocks"
	"github.com/stbguild/guildhall/internal/models"
	activityMocks "github.com/stbguild/guildhall/internal/repositories/activity/mocks"
	tournamentRepo "github.com/stbguild/guildhall/internal/repositories/tournament"
	tournamentMocks "github.com/stbguild/guildhall/internal/repositories/tournament/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type TournamentServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockTournamentRepo *tournamentMocks.MockRepository
	mockActivityRepo   *activityMocks.MockRepository
	mockClock          *clockMocks.MockClock
	mockUUID           *uuidMocks.MockUUID
	tournamentService  Service
	ctx                context.Context

	testTime time.Time
	member   *auth.Actor
	verifier *auth.Actor
}

func (s *TournamentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTournamentRepo = tournamentMocks.NewMockRepository(s.mockCtrl)
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("generated-id").AnyTimes()
	s.mockActivityRepo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.member = &auth.Actor{
		UserID: "member-1",
		Role:   models.RoleMember,
		Profile: &models.Profile{
			ID:       "member-1",
			FullName: "Test Player",
		},
	}
	s.verifier = &auth.Actor{
		UserID:      "sub-1",
		Role:        models.RoleSubAdmin,
		Permissions: &models.Permissions{CanManageSlots: true},
	}

	svc, err := New(&Config{
		TournamentRepo: s.mockTournamentRepo,
		ActivityRepo:   s.mockActivityRepo,
		Clock:          s.mockClock,
		UUID:           s.mockUUID,
		SlotCapacity:   25,
	})
	s.Require().NoError(err)
	s.tournamentService = svc
}

func (s *TournamentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTournamentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentServiceTestSuite))
}

func (s *TournamentServiceTestSuite) TestBookSlotAssignsNextNumber() {
	s.mockTournamentRepo.EXPECT().
		CountSlots(s.ctx, &tournamentRepo.CountSlotsInput{}).
		Return(&tournamentRepo.CountSlotsOutput{Count: 3}, nil)
	s.mockTournamentRepo.EXPECT().
		SaveSlot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tournamentRepo.SaveSlotInput) error {
			s.Equal(4, input.Slot.SlotNumber)
			s.Equal(models.PaymentStatusPending, input.Slot.PaymentStatus)
			s.Equal("member-1", input.Slot.BookedBy)
			s.Equal("Test Player", input.Slot.BookedByName)
			return nil
		})

	out, err := s.tournamentService.BookSlot(s.ctx, &BookSlotInput{
		Actor:          s.member,
		TournamentName: "Spring Cup",
	})
	s.Require().NoError(err)
	s.Equal(4, out.Slot.SlotNumber)
}

func (s *TournamentServiceTestSuite) TestBookSlotRejectsWhenFull() {
	s.mockTournamentRepo.EXPECT().
		CountSlots(s.ctx, gomock.Any()).
		Return(&tournamentRepo.CountSlotsOutput{Count: 25}, nil)

	_, err := s.tournamentService.BookSlot(s.ctx, &BookSlotInput{
		Actor:          s.member,
		TournamentName: "Spring Cup",
	})
	s.Equal(ErrNoSlotsAvailable, err)
}

func (s *TournamentServiceTestSuite) TestBookSlotRequiresSignIn() {
	_, err := s.tournamentService.BookSlot(s.ctx, &BookSlotInput{
		TournamentName: "Spring Cup",
	})
	s.Equal(auth.ErrNotAuthenticated, err)
}

func (s *TournamentServiceTestSuite) TestSetPaymentStatusRequiresCapability() {
	_, err := s.tournamentService.SetPaymentStatus(s.ctx, &SetPaymentStatusInput{
		Actor:  s.member,
		SlotID: "slot-1",
		Status: models.PaymentStatusVerified,
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *TournamentServiceTestSuite) TestSetPaymentStatus() {
	slot := &models.TournamentSlot{
		ID:            "slot-1",
		SlotNumber:    1,
		PaymentStatus: models.PaymentStatusPending,
	}

	s.mockTournamentRepo.EXPECT().
		GetSlot(s.ctx, &tournamentRepo.GetSlotInput{SlotID: "slot-1"}).
		Return(slot, nil)
	s.mockTournamentRepo.EXPECT().
		SaveSlot(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tournamentRepo.SaveSlotInput) error {
			s.Equal(models.PaymentStatusVerified, input.Slot.PaymentStatus)
			return nil
		})

	out, err := s.tournamentService.SetPaymentStatus(s.ctx, &SetPaymentStatusInput{
		Actor:  s.verifier,
		SlotID: "slot-1",
		Status: models.PaymentStatusVerified,
	})
	s.Require().NoError(err)
	s.Equal(models.PaymentStatusVerified, out.Slot.PaymentStatus)
}

func (s *TournamentServiceTestSuite) TestSetPaymentStatusRejectsUnknownStatus() {
	_, err := s.tournamentService.SetPaymentStatus(s.ctx, &SetPaymentStatusInput{
		Actor:  s.verifier,
		SlotID: "slot-1",
		Status: "refunded",
	})
	s.Equal(ErrInvalidPaymentStatus, err)
}

func (s *TournamentServiceTestSuite) TestRecordMatchResultRequiresAdmin() {
	_, err := s.tournamentService.RecordMatchResult(s.ctx, &RecordMatchResultInput{
		Actor:          s.member,
		TournamentName: "Spring Cup",
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *TournamentServiceTestSuite) TestRecordMatchResult() {
	s.mockTournamentRepo.EXPECT().
		SaveMatchResult(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *tournamentRepo.SaveMatchResultInput) error {
			s.Equal("Spring Cup", input.Match.TournamentName)
			s.Equal("Alpha", input.Match.Winner)
			s.Equal(s.testTime, input.Match.MatchDate)
			return nil
		})

	out, err := s.tournamentService.RecordMatchResult(s.ctx, &RecordMatchResultInput{
		Actor:          s.verifier,
		TournamentName: "Spring Cup",
		MatchType:      "final",
		TeamA:          "Alpha",
		TeamB:          "Bravo",
		ScoreA:         13,
		ScoreB:         9,
		Winner:         "Alpha",
	})
	s.Require().NoError(err)
	s.Equal("generated-id", out.Match.ID)
}

func (s *TournamentServiceTestSuite) TestListSlotsReportsCapacity() {
	s.mockTournamentRepo.EXPECT().
		ListSlots(s.ctx, gomock.Any()).
		Return(&tournamentRepo.ListSlotsOutput{
			Slots: []*models.TournamentSlot{{ID: "slot-1"}, {ID: "slot-2"}},
		}, nil)

	out, err := s.tournamentService.ListSlots(s.ctx, &ListSlotsInput{Actor: s.member})
	s.Require().NoError(err)
	s.Equal(2, out.Booked)
	s.Equal(25, out.Capacity)
}
