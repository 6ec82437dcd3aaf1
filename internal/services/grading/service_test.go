package grading

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/stbguild/guildhall/internal/common/clock/mocks"
	"github.com/stbguild/guildhall/internal/models"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	profileMocks "github.com/stbguild/guildhall/internal/repositories/profile/mocks"
	"github.com/stbguild/guildhall/internal/services/auth"
)

type GradingServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockProfileRepo *profileMocks.MockRepository
	mockClock       *clockMocks.MockClock
	ctx             context.Context

	testTime time.Time
	manager  *auth.Actor
	member   *models.Profile
}

func (s *GradingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.manager = &auth.Actor{
		UserID:      "manager-1",
		Role:        models.RoleSubAdmin,
		Permissions: &models.Permissions{CanManageMembers: true},
	}
	s.member = &models.Profile{
		ID:    "member-1",
		Stats: &models.PlayerStats{KD: 2.1, WinRate: 64, HSRate: 38},
	}
}

func (s *GradingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGradingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GradingServiceTestSuite))
}

// newService builds a grading service pointed at a stub Gemini endpoint
func (s *GradingServiceTestSuite) newService(baseURL, apiKey string) Service {
	svc, err := New(&Config{
		ProfileRepo: s.mockProfileRepo,
		Clock:       s.mockClock,
		APIKey:      apiKey,
		BaseURL:     baseURL,
		HTTPClient:  http.DefaultClient,
	})
	s.Require().NoError(err)
	return svc
}

func (s *GradingServiceTestSuite) TestGradeMember() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Contains(r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"S\nDominant fragger with consistent aim."}]}}]}`))
	}))
	defer server.Close()

	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), &profileRepo.GetProfileInput{ProfileID: "member-1"}).
		Return(s.member, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *profileRepo.SaveProfileInput) error {
			s.Equal("S", input.Profile.Stats.Grade)
			return nil
		})

	out, err := s.newService(server.URL, "test-key").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    s.manager,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal("S", out.Grade)
	s.Equal("Dominant fragger with consistent aim.", out.Summary)
}

func (s *GradingServiceTestSuite) TestGradeMemberFallsBackWhenModelFails() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(s.member, nil)
	s.mockProfileRepo.EXPECT().
		SaveProfile(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := s.newService(server.URL, "test-key").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    s.manager,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal("C", out.Grade)
	s.Equal(fallbackSummary, out.Summary)
}

func (s *GradingServiceTestSuite) TestGradeMemberFallsBackOnNonsenseAnswer() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"excellent player!"}]}}]}`))
	}))
	defer server.Close()

	s.mockProfileRepo.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(s.member, nil)
	s.mockProfileRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.newService(server.URL, "test-key").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    s.manager,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal("C", out.Grade)
}

func (s *GradingServiceTestSuite) TestGradeMemberWithoutAPIKey() {
	s.mockProfileRepo.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Return(s.member, nil)
	s.mockProfileRepo.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.newService("http://unused", "").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    s.manager,
		MemberID: "member-1",
	})
	s.Require().NoError(err)
	s.Equal("C", out.Grade)
}

func (s *GradingServiceTestSuite) TestGradeMemberRequiresCapability() {
	plain := &auth.Actor{UserID: "member-2", Role: models.RoleMember}

	_, err := s.newService("http://unused", "test-key").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    plain,
		MemberID: "member-1",
	})
	s.Equal(auth.ErrForbidden, err)
}

func (s *GradingServiceTestSuite) TestGradeMemberRequiresStats() {
	s.mockProfileRepo.EXPECT().
		GetProfile(gomock.Any(), gomock.Any()).
		Return(&models.Profile{ID: "member-1"}, nil)

	_, err := s.newService("http://unused", "test-key").GradeMember(s.ctx, &GradeMemberInput{
		Actor:    s.manager,
		MemberID: "member-1",
	})
	s.Equal(ErrNoStats, err)
}
