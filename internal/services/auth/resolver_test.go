package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/stbguild/guildhall/internal/models"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
	profileMocks "github.com/stbguild/guildhall/internal/repositories/profile/mocks"
)

// fakeProvider is a minimal session backend for resolver tests. It
// lets a test fire session changes by hand and records sign-outs.
type fakeProvider struct {
	mu        sync.Mutex
	current   *models.Session
	callbacks []func(session *models.Session)

	signOutErr    error
	signOutTokens []string
}

func (f *fakeProvider) GetCurrentSession(_ context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, nil
}

func (f *fakeProvider) OnSessionChange(fn func(session *models.Session)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks = append(f.callbacks, fn)
	return func() {}
}

func (f *fakeProvider) SignOut(_ context.Context, input *SignOutInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signOutTokens = append(f.signOutTokens, input.Token)
	return f.signOutErr
}

func (f *fakeProvider) fire(session *models.Session) {
	f.mu.Lock()
	fns := append([]func(session *models.Session){}, f.callbacks...)
	f.mu.Unlock()
	for _, fn := range fns {
		fn(session)
	}
}

type ResolverTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockProfileRepo *profileMocks.MockRepository
	provider        *fakeProvider
	resolver        *Resolver
	snapshots       chan Snapshot
	ctx             context.Context

	testSession *models.Session
}

func (s *ResolverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.provider = &fakeProvider{}
	s.ctx = context.Background()
	s.snapshots = make(chan Snapshot, 32)

	resolver, err := NewResolver(&ResolverConfig{
		Provider:    s.provider,
		ProfileRepo: s.mockProfileRepo,
	})
	s.Require().NoError(err)
	s.resolver = resolver
	s.resolver.Subscribe(func(snapshot Snapshot) {
		s.snapshots <- snapshot
	})

	s.testSession = &models.Session{
		Token:  "token-1",
		UserID: "user-1",
	}
}

func (s *ResolverTestSuite) TearDownTest() {
	s.resolver.Stop()
	s.mockCtrl.Finish()
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

// waitForState drains snapshots until one matches the wanted state
func (s *ResolverTestSuite) waitForState(want State) Snapshot {
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snapshot := <-s.snapshots:
			if snapshot.State == want {
				return snapshot
			}
		case <-deadline:
			s.Require().FailNowf("timeout", "never reached state %q", want)
			return Snapshot{}
		}
	}
}

func (s *ResolverTestSuite) expectRole(userID string, role models.Role, perms *models.Permissions) {
	s.mockProfileRepo.EXPECT().
		GetProfileRole(gomock.Any(), &profileRepo.GetProfileRoleInput{ProfileID: userID}).
		Return(&profileRepo.GetProfileRoleOutput{Role: role, Permissions: perms}, nil)
}

func (s *ResolverTestSuite) signInAs(role models.Role, perms *models.Permissions) {
	s.expectRole(s.testSession.UserID, role, perms)
	s.Require().NoError(s.resolver.Start(s.ctx))
	s.provider.fire(s.testSession)
	s.waitForState(StateAuthenticated)
}

func (s *ResolverTestSuite) TestStartsAnonymous() {
	s.Require().NoError(s.resolver.Start(s.ctx))

	snapshot := s.resolver.Snapshot()
	s.Equal(StateAnonymous, snapshot.State)
	s.Equal(models.Role(""), s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
	s.False(s.resolver.CanAccess(models.CapabilityPostNotices))
	s.Equal(ErrNotAuthenticated, s.resolver.RequireRole(models.RoleMember))
}

func (s *ResolverTestSuite) TestNilProviderStaysAnonymous() {
	resolver, err := NewResolver(&ResolverConfig{})
	s.Require().NoError(err)
	s.Require().NoError(resolver.Start(s.ctx))

	s.Equal(StateAnonymous, resolver.Snapshot().State)
	s.False(resolver.CanAccess(models.CapabilityEditSite))
	s.NoError(resolver.SignOut(s.ctx))
	s.Equal(StateAnonymous, resolver.Snapshot().State)
}

func (s *ResolverTestSuite) TestRestoresSessionOnStart() {
	s.provider.current = s.testSession
	s.expectRole("user-1", models.RoleLeader, &models.Permissions{CanPostNotices: true})

	s.Require().NoError(s.resolver.Start(s.ctx))
	s.waitForState(StateAuthenticated)

	s.Equal(models.RoleLeader, s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
	s.True(s.resolver.CanAccess(models.CapabilityPostNotices))
	s.False(s.resolver.CanAccess(models.CapabilityEditSite))
}

func (s *ResolverTestSuite) TestResolvesRoleOnSignIn() {
	s.signInAs(models.RoleMember, &models.Permissions{})

	s.Equal(models.RoleMember, s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
	s.NoError(s.resolver.RequireRole(models.RoleMember))
	s.Equal(ErrForbidden, s.resolver.RequireRole(models.RoleLeader))
}

func (s *ResolverTestSuite) TestResolvingStateDeniesEverything() {
	s.Require().NoError(s.resolver.Start(s.ctx))

	block := make(chan struct{})
	s.mockProfileRepo.EXPECT().
		GetProfileRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *profileRepo.GetProfileRoleInput) (*profileRepo.GetProfileRoleOutput, error) {
			<-block
			return &profileRepo.GetProfileRoleOutput{Role: models.RoleSuperAdmin}, nil
		})

	s.provider.fire(s.testSession)
	s.waitForState(StateResolving)

	s.Equal(models.Role(""), s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
	s.False(s.resolver.CanAccess(models.CapabilityManageMembers))
	s.Equal(ErrNotAuthenticated, s.resolver.RequireRole(models.RoleMember))

	close(block)
	s.waitForState(StateAuthenticated)
	s.True(s.resolver.IsAdmin())
}

func (s *ResolverTestSuite) TestSuperAdminBypassesCapabilities() {
	// An empty bag grants nothing, yet super admins pass every gate
	s.signInAs(models.RoleSuperAdmin, &models.Permissions{})

	s.True(s.resolver.IsAdmin())
	s.True(s.resolver.CanAccess(models.CapabilityEditSite))
	s.True(s.resolver.CanAccess(models.CapabilityViewAccounts))
	s.NoError(s.resolver.RequireRole(models.RoleMember))
	s.NoError(s.resolver.RequireRole(models.RoleSuperAdmin))
}

func (s *ResolverTestSuite) TestSubAdminDeniedSuperAdminGate() {
	s.signInAs(models.RoleSubAdmin, &models.Permissions{CanManageMembers: true})

	s.True(s.resolver.IsAdmin())
	s.True(s.resolver.CanAccess(models.CapabilityManageMembers))
	s.Equal(ErrForbidden, s.resolver.RequireRole(models.RoleSuperAdmin))
}

func (s *ResolverTestSuite) TestNilPermissionsDenyAllCapabilities() {
	s.signInAs(models.RoleLeader, nil)

	s.Equal(models.RoleLeader, s.resolver.CurrentRole())
	s.False(s.resolver.CanAccess(models.CapabilityPostNotices))
	s.False(s.resolver.CanAccess(models.CapabilityBuildSquads))
}

func (s *ResolverTestSuite) TestLookupFailureClosesGates() {
	s.Require().NoError(s.resolver.Start(s.ctx))

	s.mockProfileRepo.EXPECT().
		GetProfileRole(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	s.provider.fire(s.testSession)
	snapshot := s.waitForState(StateError)

	s.Error(snapshot.Err)
	s.Equal(models.Role(""), s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
	s.False(s.resolver.CanAccess(models.CapabilityViewAccounts))
	s.Equal(ErrNotAuthenticated, s.resolver.RequireRole(models.RoleMember))
}

func (s *ResolverTestSuite) TestLatestSessionChangeWins() {
	s.Require().NoError(s.resolver.Start(s.ctx))

	sessionA := &models.Session{Token: "token-a", UserID: "user-a"}
	sessionB := &models.Session{Token: "token-b", UserID: "user-b"}

	releaseA := make(chan struct{})
	doneA := make(chan struct{})
	s.mockProfileRepo.EXPECT().
		GetProfileRole(gomock.Any(), &profileRepo.GetProfileRoleInput{ProfileID: "user-a"}).
		DoAndReturn(func(context.Context, *profileRepo.GetProfileRoleInput) (*profileRepo.GetProfileRoleOutput, error) {
			defer close(doneA)
			<-releaseA
			return &profileRepo.GetProfileRoleOutput{Role: models.RoleSuperAdmin}, nil
		})
	s.expectRole("user-b", models.RoleMember, &models.Permissions{})

	// A's lookup starts first but finishes last
	s.provider.fire(sessionA)
	s.provider.fire(sessionB)
	s.waitForState(StateAuthenticated)
	s.Equal(models.RoleMember, s.resolver.CurrentRole())

	// Let A's stale lookup complete; it must not overwrite B
	close(releaseA)
	<-doneA
	time.Sleep(20 * time.Millisecond)

	s.Equal(StateAuthenticated, s.resolver.Snapshot().State)
	s.Equal(models.RoleMember, s.resolver.CurrentRole())
	s.False(s.resolver.IsAdmin())
}

func (s *ResolverTestSuite) TestSignOutResetsSynchronously() {
	s.signInAs(models.RoleSubAdmin, &models.Permissions{CanManageSlots: true})
	s.provider.signOutErr = errors.New("backend unreachable")

	err := s.resolver.SignOut(s.ctx)

	// The provider failure is reported, but the local state is already
	// anonymous
	s.Error(err)
	s.Equal(StateAnonymous, s.resolver.Snapshot().State)
	s.Equal(models.Role(""), s.resolver.CurrentRole())
	s.False(s.resolver.CanAccess(models.CapabilityManageSlots))
	s.Equal([]string{"token-1"}, s.provider.signOutTokens)
}

func (s *ResolverTestSuite) TestSignOutNotificationResets() {
	s.signInAs(models.RoleLeader, &models.Permissions{CanBuildSquads: true})

	s.provider.fire(nil)
	s.waitForState(StateAnonymous)

	s.False(s.resolver.CanAccess(models.CapabilityBuildSquads))
	s.Equal(ErrNotAuthenticated, s.resolver.RequireRole(models.RoleLeader))
}

func (s *ResolverTestSuite) TestSignOutCancelsPendingLookup() {
	s.Require().NoError(s.resolver.Start(s.ctx))

	release := make(chan struct{})
	done := make(chan struct{})
	s.mockProfileRepo.EXPECT().
		GetProfileRole(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *profileRepo.GetProfileRoleInput) (*profileRepo.GetProfileRoleOutput, error) {
			defer close(done)
			<-release
			return &profileRepo.GetProfileRoleOutput{Role: models.RoleSuperAdmin}, nil
		})

	s.provider.fire(s.testSession)
	s.waitForState(StateResolving)

	s.Require().NoError(s.resolver.SignOut(s.ctx))
	s.Equal(StateAnonymous, s.resolver.Snapshot().State)

	// The lookup that was in flight when we signed out must be dropped
	close(release)
	<-done
	time.Sleep(20 * time.Millisecond)

	s.Equal(StateAnonymous, s.resolver.Snapshot().State)
	s.False(s.resolver.IsAdmin())
}
