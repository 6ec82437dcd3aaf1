package roster

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
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	profileMocks "github.com/stbguild/guildhall/internal/repositories/profile/mocks"
	squadRepo "github.com/stbguild/guildhall/internal/repositories/squad"
	squadMocks "github.com/stbguild/guildhall/internal/repositories/squad/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockProfileRepo  *profileMocks.MockRepository
	mockSquadRepo    *squadMocks.MockRepository
	mockActivityRepo *activityMocks.MockRepository
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	rosterService    Service
	ctx              context.Context

	testTime   time.Time
	superAdmin *auth.Actor
	subAdmin   *auth.Actor
	manager    *auth.Actor
	member     *auth.Actor

	testMember *models.Profile
	testSquad  *models.Squad
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockSquadRepo = squadMocks.NewMockRepository(s.mockCtrl)
	s.mockActivityRepo = activityMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("generated-id").AnyTimes()
	s.mockActivityRepo.EXPECT().AppendEntry(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.superAdmin = &auth.Actor{UserID: "super-1", Role: models.RoleSuperAdmin}
	s.subAdmin = &auth.Actor{UserID: "sub-1", Role: models.RoleSubAdmin}
	s.manager = &auth.Actor{
		UserID: "manager-1",
		Role:   models.RoleSubAdmin,
		Permissions: &models.Permissions{
			CanManageMembers: true,
			CanBuildSquads:   true,
		},
	}
	s.member = &auth.Actor{UserID: "member-1", Role: models.RoleMember}

	s.testMember = &models.Profile{
		ID:       "member-2",
		FullName: "Target Player",
		Role:     models.RoleMember,
		Status:   models.ProfileStatusActive,
	}

	s.testSquad = &models.Squad{
		ID:           "squad-1",
		SquadName:    "Alpha",
		MembersCount: 2,
		CreatedAt:    s.testTime,
	}

	svc, err := New(&Config{
		ProfileRepo:  s.mockProfileRepo,
		SquadRepo:    s.mockSquadRepo,
		ActivityRepo: s.mockActivityRepo,
		Clock:        s.mockClock,
		UUID:         s.mockUUID,
	})
	s.Require().NoError(err)
	s.rosterService = svc
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func (s *RosterServiceTestSuite) TestListMembersRequiresSignIn() {
	_, err := s.rosterService.ListMembers(s.ctx, &ListMembersInput{})
	s.Equal(auth.ErrNotAuthenticated, err)
}

func (s *RosterServiceTestSuite) TestListMembers() {
	s.mockProfileRepo.EXPECT().
		ListProfiles(s.ctx, &profileRepo.ListProfilesInput{}).
		Return(&profileRepo.ListProfilesOutput{
			Profiles: []*models.Profile{s.testMember},
		}, nil)

	out, err := s.rosterService.ListMembers(s.ctx, &ListMembersInput{Actor: s.member})
	s.Require().NoError(err)
	s.Len(out.Members, 1)
}

func (s *RosterServiceTestSuite) TestUpdateRoleRequiresSuperAdmin() {
	_, err := s.rosterService.UpdateRole(s.ctx, &UpdateRoleInput{
		Actor:    s.subAdmin,
		MemberID: "member-2",
		Role:     models.RoleLeader,
	})
	s.Equal(auth.ErrForbidden, err)

	// A capability bag never substitutes for the super admin role here
	_, err = s.rosterService.UpdateRole(s.ctx, &UpdateRoleInput{
		Actor:    s.manager,
		MemberID: "member-2",
		Role:     models.RoleLeader,
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *RosterServiceTestSuite) TestUpdateRole() {
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, &profileRepo.GetProfileInput{ProfileID: "member-2"}).
		Return(s.testMember, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			s.Equal(models.RoleSubAdmin, input.Profile.Role)
			s.True(input.Profile.Permissions.CanManageSlots)
			s.Equal(s.testTime, input.Profile.UpdatedAt)
			return nil
		})

	out, err := s.rosterService.UpdateRole(s.ctx, &UpdateRoleInput{
		Actor:       s.superAdmin,
		MemberID:    "member-2",
		Role:        models.RoleSubAdmin,
		Permissions: &models.Permissions{CanManageSlots: true},
	})
	s.Require().NoError(err)
	s.Equal(models.RoleSubAdmin, out.Member.Role)
}

func (s *RosterServiceTestSuite) TestUpdateRoleRejectsUnknownRole() {
	_, err := s.rosterService.UpdateRole(s.ctx, &UpdateRoleInput{
		Actor:    s.superAdmin,
		MemberID: "member-2",
		Role:     "owner",
	})
	s.Equal(ErrInvalidRole, err)
}

func (s *RosterServiceTestSuite) TestUpdateMemberRequiresCapability() {
	_, err := s.rosterService.UpdateMember(s.ctx, &UpdateMemberInput{
		Actor:    s.member,
		MemberID: "member-2",
		FullName: "Renamed",
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *RosterServiceTestSuite) TestUpdateMember() {
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(s.testMember, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.rosterService.UpdateMember(s.ctx, &UpdateMemberInput{
		Actor:    s.manager,
		MemberID: "member-2",
		FullName: "Renamed Player",
		Stats:    &models.PlayerStats{KD: 1.4},
	})
	s.Require().NoError(err)
	s.Equal("Renamed Player", out.Member.FullName)
	s.Equal(1.4, out.Member.Stats.KD)
}

func (s *RosterServiceTestSuite) TestBanMember() {
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(s.testMember, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			s.Equal(models.ProfileStatusBanned, input.Profile.Status)
			return nil
		})

	out, err := s.rosterService.SetBanned(s.ctx, &SetBannedInput{
		Actor:    s.manager,
		MemberID: "member-2",
		Banned:   true,
	})
	s.Require().NoError(err)
	s.Equal(models.ProfileStatusBanned, out.Member.Status)
}

func (s *RosterServiceTestSuite) TestSuperAdminBypassesCapabilityGate() {
	// No capability bag at all, but super admins pass every gate
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(s.testMember, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(s.ctx, gomock.Any()).
		Return(nil)

	_, err := s.rosterService.SetBanned(s.ctx, &SetBannedInput{
		Actor:    s.superAdmin,
		MemberID: "member-2",
		Banned:   true,
	})
	s.NoError(err)
}

func (s *RosterServiceTestSuite) TestCreateSquad() {
	s.mockSquadRepo.EXPECT().
		SaveSquad(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *squadRepo.SaveSquadInput) error {
			s.Equal("generated-id", input.Squad.ID)
			s.Equal("Bravo", input.Squad.SquadName)
			s.Equal(0, input.Squad.MembersCount)
			return nil
		})

	out, err := s.rosterService.CreateSquad(s.ctx, &CreateSquadInput{
		Actor:     s.manager,
		SquadName: "Bravo",
	})
	s.Require().NoError(err)
	s.Equal("Bravo", out.Squad.SquadName)
}

func (s *RosterServiceTestSuite) TestCreateSquadRejectsEmptyName() {
	_, err := s.rosterService.CreateSquad(s.ctx, &CreateSquadInput{
		Actor: s.manager,
	})
	s.Equal(ErrEmptySquadName, err)
}

func (s *RosterServiceTestSuite) TestAssignToSquadUpdatesCounts() {
	memberInAlpha := &models.Profile{
		ID:      "member-2",
		SquadID: "squad-1",
	}
	bravo := &models.Squad{ID: "squad-2", SquadName: "Bravo", MembersCount: 0}

	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(memberInAlpha, nil)
	s.mockSquadRepo.EXPECT().
		GetSquad(s.ctx, &squadRepo.GetSquadInput{SquadID: "squad-2"}).
		Return(bravo, nil)
	s.mockProfileRepo.EXPECT().
		UpdateProfileSquad(s.ctx, &profileRepo.UpdateProfileSquadInput{
			ProfileID: "member-2",
			SquadID:   "squad-2",
		}).
		Return(nil)
	s.mockSquadRepo.EXPECT().
		GetSquad(s.ctx, &squadRepo.GetSquadInput{SquadID: "squad-1"}).
		Return(s.testSquad, nil)
	s.mockSquadRepo.EXPECT().
		SaveSquad(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *squadRepo.SaveSquadInput) error {
			s.Equal("squad-1", input.Squad.ID)
			s.Equal(1, input.Squad.MembersCount)
			return nil
		})
	s.mockSquadRepo.EXPECT().
		SaveSquad(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *squadRepo.SaveSquadInput) error {
			s.Equal("squad-2", input.Squad.ID)
			s.Equal(1, input.Squad.MembersCount)
			return nil
		})

	out, err := s.rosterService.AssignToSquad(s.ctx, &AssignToSquadInput{
		Actor:    s.manager,
		MemberID: "member-2",
		SquadID:  "squad-2",
	})
	s.Require().NoError(err)
	s.Equal("squad-2", out.Member.SquadID)
}

func (s *RosterServiceTestSuite) TestAssignToSquadRejectsUnknownSquad() {
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(s.testMember, nil)
	s.mockSquadRepo.EXPECT().
		GetSquad(s.ctx, gomock.Any()).
		Return(nil, squadRepo.ErrSquadNotFound)

	_, err := s.rosterService.AssignToSquad(s.ctx, &AssignToSquadInput{
		Actor:    s.manager,
		MemberID: "member-2",
		SquadID:  "missing",
	})
	s.Equal(ErrSquadNotFound, err)
}

func (s *RosterServiceTestSuite) TestAssignToSquadNoopWhenUnchanged() {
	memberInAlpha := &models.Profile{ID: "member-2", SquadID: "squad-1"}

	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(memberInAlpha, nil)

	out, err := s.rosterService.AssignToSquad(s.ctx, &AssignToSquadInput{
		Actor:    s.manager,
		MemberID: "member-2",
		SquadID:  "squad-1",
	})
	s.Require().NoError(err)
	s.Equal("squad-1", out.Member.SquadID)
}

func (s *RosterServiceTestSuite) TestAddMember() {
	s.mockProfileRepo.EXPECT().
		SaveProfile(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			s.Equal("generated-id", input.Profile.ID)
			s.Equal("Walk-in Player", input.Profile.FullName)
			s.Equal(models.RoleMember, input.Profile.Role)
			s.Equal(models.ProfileStatusActive, input.Profile.Status)
			return nil
		})

	out, err := s.rosterService.AddMember(s.ctx, &AddMemberInput{
		Actor:    s.manager,
		FullName: "Walk-in Player",
		GameID:   "WALKIN#1",
	})
	s.Require().NoError(err)
	s.Equal("generated-id", out.Member.ID)
}

func (s *RosterServiceTestSuite) TestAddMemberRejectsUnknownRole() {
	_, err := s.rosterService.AddMember(s.ctx, &AddMemberInput{
		Actor:    s.manager,
		FullName: "Walk-in Player",
		Role:     models.Role("overlord"),
	})
	s.Equal(ErrInvalidRole, err)
}

func (s *RosterServiceTestSuite) TestAddMemberRequiresCapability() {
	_, err := s.rosterService.AddMember(s.ctx, &AddMemberInput{
		Actor:    s.member,
		FullName: "Walk-in Player",
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *RosterServiceTestSuite) TestSetSquadLeader() {
	s.mockSquadRepo.EXPECT().
		GetSquad(s.ctx, &squadRepo.GetSquadInput{SquadID: "squad-1"}).
		Return(s.testSquad, nil)
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, &profileRepo.GetProfileInput{ProfileID: "member-2"}).
		Return(s.testMember, nil)
	s.mockSquadRepo.EXPECT().
		SaveSquad(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *squadRepo.SaveSquadInput) error {
			s.Equal("member-2", input.Squad.LeaderID)
			return nil
		})

	out, err := s.rosterService.SetSquadLeader(s.ctx, &SetSquadLeaderInput{
		Actor:    s.manager,
		SquadID:  "squad-1",
		LeaderID: "member-2",
	})
	s.Require().NoError(err)
	s.Equal("member-2", out.Squad.LeaderID)
}

func (s *RosterServiceTestSuite) TestSetSquadLeaderUnknownLeader() {
	s.mockSquadRepo.EXPECT().
		GetSquad(s.ctx, gomock.Any()).
		Return(s.testSquad, nil)
	s.mockProfileRepo.EXPECT().
		GetProfile(s.ctx, gomock.Any()).
		Return(nil, profileRepo.ErrProfileNotFound)

	_, err := s.rosterService.SetSquadLeader(s.ctx, &SetSquadLeaderInput{
		Actor:    s.manager,
		SquadID:  "squad-1",
		LeaderID: "ghost",
	})
	s.Equal(ErrMemberNotFound, err)
}
