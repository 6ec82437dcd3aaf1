package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stbguild/guildhall/internal/common/clock"
	"github.com/stbguild/guildhall/internal/common/uuid"
	"github.com/stbguild/guildhall/internal/models"
	accountRepo "github.com/stbguild/guildhall/internal/repositories/account"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
)

const (
	defaultSessionTTL        = 24 * time.Hour
	defaultMinPasswordLength = 6
)

// Config holds configuration for the auth service
type Config struct {
	AccountRepo accountRepo.Repository
	ProfileRepo profileRepo.Repository
	Clock       clock.Clock
	UUID        uuid.UUID

	// SessionTTL is how long issued sessions stay valid
	SessionTTL time.Duration

	// MinPasswordLength is the shortest password SignUp accepts
	MinPasswordLength int
}

// service implements the Service interface
type service struct {
	config      *Config
	accountRepo accountRepo.Repository
	profileRepo profileRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID

	mu        sync.Mutex
	current   *models.Session
	callbacks map[int]func(session *models.Session)
	nextSubID int
}

// New creates a new auth service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.MinPasswordLength <= 0 {
		cfg.MinPasswordLength = defaultMinPasswordLength
	}

	return &service{
		config:      cfg,
		accountRepo: cfg.AccountRepo,
		profileRepo: cfg.ProfileRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		callbacks:   make(map[int]func(session *models.Session)),
	}, nil
}

// SignUp registers a new account, creates a member profile, and signs
// the new account in
func (s *service) SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error) {
	if input == nil || input.Email == "" {
		return nil, ErrInvalidCredentials
	}

	if len(input.Password) < s.config.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Reject duplicate registrations
	_, err := s.accountRepo.GetCredentials(ctx, &accountRepo.GetCredentialsInput{
		Email: input.Email,
	})
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, accountRepo.ErrCredentialsNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	userID := s.uuid.NewUUID()

	err = s.accountRepo.SaveCredentials(ctx, &accountRepo.SaveCredentialsInput{
		Credentials: &accountRepo.Credentials{
			UserID:       userID,
			Email:        input.Email,
			PasswordHash: string(hash),
			CreatedAt:    now,
		},
	})
	if err != nil {
		return nil, err
	}

	// New members start with the lowest role and an empty capability bag
	profile := &models.Profile{
		ID:          userID,
		FullName:    input.FullName,
		GameID:      input.GameID,
		Role:        models.RoleMember,
		Permissions: &models.Permissions{},
		Status:      models.ProfileStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.profileRepo.SaveProfile(ctx, &profileRepo.SaveProfileInput{
		Profile: profile,
	})
	if err != nil {
		return nil, err
	}

	session, err := s.issueSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &SignUpOutput{
		Session: session,
		Profile: profile,
	}, nil
}

// SignIn verifies credentials and issues a session
func (s *service) SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	creds, err := s.accountRepo.GetCredentials(ctx, &accountRepo.GetCredentialsInput{
		Email: input.Email,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrCredentialsNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		ProfileID: creds.UserID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	// Banned members keep any session they already hold until it
	// expires, but cannot start a new one
	if profile.Status == models.ProfileStatusBanned {
		return nil, ErrAccountBanned
	}

	session, err := s.issueSession(ctx, creds.UserID)
	if err != nil {
		return nil, err
	}

	return &SignInOutput{
		Session: session,
		Profile: profile,
	}, nil
}

// SignOut revokes a session and clears the current one if it matches
func (s *service) SignOut(ctx context.Context, input *SignOutInput) error {
	token := ""
	if input != nil {
		token = input.Token
	}

	s.mu.Lock()
	if token == "" && s.current != nil {
		token = s.current.Token
	}
	cleared := false
	if s.current != nil && s.current.Token == token {
		s.current = nil
		cleared = true
	}
	s.mu.Unlock()

	if token != "" {
		err := s.accountRepo.DeleteSession(ctx, &accountRepo.DeleteSessionInput{
			Token: token,
		})
		if err != nil {
			return err
		}
	}

	if cleared {
		s.notify(nil)
	}

	return nil
}

// GetCurrentSession returns the session most recently issued in this
// process, dropping it if it has expired
func (s *service) GetCurrentSession(ctx context.Context) (*models.Session, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil {
		return nil, nil
	}

	if !s.clock.Now().Before(current.ExpiresAt) {
		s.mu.Lock()
		if s.current == current {
			s.current = nil
		}
		s.mu.Unlock()
		return nil, nil
	}

	return current, nil
}

// OnSessionChange registers a session-change callback
func (s *service) OnSessionChange(fn func(session *models.Session)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.callbacks[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.callbacks, id)
		s.mu.Unlock()
	}
}

// Authenticate resolves a request token to an actor
func (s *service) Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrNotAuthenticated
	}

	session, err := s.accountRepo.GetSession(ctx, &accountRepo.GetSessionInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}

	if !s.clock.Now().Before(session.ExpiresAt) {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.profileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		ProfileID: session.UserID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &AuthenticateOutput{
		Actor: &Actor{
			UserID:      profile.ID,
			Role:        profile.Role,
			Permissions: profile.Permissions,
			Profile:     profile,
		},
	}, nil
}

// issueSession creates, persists, and publishes a new session
func (s *service) issueSession(ctx context.Context, userID string) (*models.Session, error) {
	now := s.clock.Now()
	session := &models.Session{
		Token:     s.uuid.NewUUID(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}

	err := s.accountRepo.SaveSession(ctx, &accountRepo.SaveSessionInput{
		Session: session,
		TTL:     s.config.SessionTTL,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.notify(session)

	return session, nil
}

// notify fires every registered callback outside the lock
func (s *service) notify(session *models.Session) {
	s.mu.Lock()
	fns := make([]func(session *models.Session), 0, len(s.callbacks))
	for _, fn := range s.callbacks {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(session)
	}
}
