package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/stbguild/guildhall/internal/models"
	activityRepo "github.com/stbguild/guildhall/internal/repositories/activity"
	activityMocks "github.com/stbguild/guildhall/internal/repositories/activity/mocks"
	boardRepo "github.com/stbguild/guildhall/internal/repositories/board"
	boardMocks "github.com/stbguild/guildhall/internal/repositories/board/mocks"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	profileMocks "github.com/stbguild/guildhall/internal/repositories/profile/mocks"
	squadRepo "github.com/stbguild/guildhall/internal/repositories/squad"
	squadMocks "github.com/stbguild/guildhall/internal/repositories/squad/mocks"
	tournamentRepo "github.com/stbguild/guildhall/internal/repositories/tournament"
	tournamentMocks "github.com/stbguild/guildhall/internal/repositories/tournament/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockProfileRepo    *profileMocks.MockRepository
	mockSquadRepo      *squadMocks.MockRepository
	mockTournamentRepo *tournamentMocks.MockRepository
	mockBoardRepo      *boardMocks.MockRepository
	mockActivityRepo   *activityMocks.MockRepository
	dashboardService   Service
	ctx                context.Context

	admin  *auth.Actor
	member *auth.Actor
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockSquadRepo = squadMocks.NewMockRepository(s.mockCtrl)
	s.mockTournamentRepo = tournamentMocks.NewMockRepository(s.mockCtrl)
	s.mockBoardRepo = boardMocks.NewMockRepository(s.mockCtrl)
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.admin = &auth.Actor{UserID: "admin-1", Role: models.RoleSubAdmin}
	s.member = &auth.Actor{UserID: "member-1", Role: models.RoleMember}

	svc, err := New(&Config{
		ProfileRepo:    s.mockProfileRepo,
		SquadRepo:      s.mockSquadRepo,
		TournamentRepo: s.mockTournamentRepo,
		BoardRepo:      s.mockBoardRepo,
		ActivityRepo:   s.mockActivityRepo,
	})
	s.Require().NoError(err)
	s.dashboardService = svc
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) TestGetOverview() {
	s.mockProfileRepo.EXPECT().
		ListProfiles(s.ctx, gomock.Any()).
		Return(&profileRepo.ListProfilesOutput{
			Profiles: []*models.Profile{{ID: "p-1"}, {ID: "p-2"}, {ID: "p-3"}},
		}, nil)
	s.mockSquadRepo.EXPECT().
		ListSquads(s.ctx, gomock.Any()).
		Return(&squadRepo.ListSquadsOutput{
			Squads: []*models.Squad{{ID: "s-1"}},
		}, nil)
	s.mockTournamentRepo.EXPECT().
		CountSlots(s.ctx, gomock.Any()).
		Return(&tournamentRepo.CountSlotsOutput{Count: 7}, nil)
	s.mockBoardRepo.EXPECT().
		GetGuildConfig(s.ctx).
		Return(&models.GuildConfig{Level: 9}, nil)
	s.mockBoardRepo.EXPECT().
		ListNotices(s.ctx, &boardRepo.ListNoticesInput{Limit: 5}).
		Return(&boardRepo.ListNoticesOutput{
			Notices: []*models.Notice{{ID: "n-1"}},
		}, nil)

	out, err := s.dashboardService.GetOverview(s.ctx, &GetOverviewInput{Actor: s.member})
	s.Require().NoError(err)
	s.Equal(3, out.MemberCount)
	s.Equal(1, out.SquadCount)
	s.Equal(7, out.SlotsBooked)
	s.Equal(9, out.GuildConfig.Level)
	s.Len(out.RecentNotices, 1)
}

func (s *DashboardServiceTestSuite) TestGetOverviewDefaultsMissingConfig() {
	s.mockProfileRepo.EXPECT().
		ListProfiles(s.ctx, gomock.Any()).
		Return(&profileRepo.ListProfilesOutput{}, nil)
	s.mockSquadRepo.EXPECT().
		ListSquads(s.ctx, gomock.Any()).
		Return(&squadRepo.ListSquadsOutput{}, nil)
	s.mockTournamentRepo.EXPECT().
		CountSlots(s.ctx, gomock.Any()).
		Return(&tournamentRepo.CountSlotsOutput{}, nil)
	s.mockBoardRepo.EXPECT().
		GetGuildConfig(s.ctx).
		Return(nil, boardRepo.ErrConfigNotFound)
	s.mockBoardRepo.EXPECT().
		ListNotices(s.ctx, gomock.Any()).
		Return(&boardRepo.ListNoticesOutput{}, nil)

	out, err := s.dashboardService.GetOverview(s.ctx, &GetOverviewInput{Actor: s.member})
	s.Require().NoError(err)
	s.Equal(0, out.GuildConfig.Level)
}

func (s *DashboardServiceTestSuite) TestListActivityRequiresAdmin() {
	_, err := s.dashboardService.ListActivity(s.ctx, &ListActivityInput{
		Actor: s.member,
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *DashboardServiceTestSuite) TestListActivity() {
	s.mockActivityRepo.EXPECT().
		ListEntries(s.ctx, &activityRepo.ListEntriesInput{Limit: 10}).
		Return(&activityRepo.ListEntriesOutput{
			Entries: []*models.ActivityEntry{{ID: "a-1"}, {ID: "a-2"}},
		}, nil)

	out, err := s.dashboardService.ListActivity(s.ctx, &ListActivityInput{
		Actor: s.admin,
		Limit: 10,
	})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)
}
