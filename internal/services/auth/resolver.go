package auth

import (
	"context"
	"sync"

	"github.com/stbguild/guildhall/internal/models"
	profileRepo "github.com/stbguild/guildhall/internal/repositories/profile"
)

// ResolverConfig holds configuration for the session resolver
type ResolverConfig struct {
	// Provider is the session backend. A nil provider puts the
	// resolver in a permanent anonymous mode where every gate stays
	// closed and SignOut is a no-op.
	Provider Provider

	// ProfileRepo supplies role lookups. Required unless Provider is nil.
	ProfileRepo profileRepo.Repository
}

// Resolver tracks one principal's session and resolved role. It moves
// through anonymous, resolving, authenticated, and error states as the
// provider fires session changes, and answers every permission check
// from the resolved state. While no role is resolved, every check
// denies.
type Resolver struct {
	provider    Provider
	profileRepo profileRepo.Repository

	mu          sync.Mutex
	state       State
	session     *models.Session
	role        models.Role
	permissions *models.Permissions
	lastErr     error

	// generation invalidates in-flight role lookups. Each session
	// change bumps it; a lookup only applies if the generation has not
	// moved since the lookup started, so the latest change always wins.
	generation uint64

	subscribers map[int]func(snapshot Snapshot)
	nextSubID   int

	baseCtx     context.Context
	unsubscribe func()
}

// NewResolver creates a new session resolver
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Provider != nil && cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	return &Resolver{
		provider:    cfg.Provider,
		profileRepo: cfg.ProfileRepo,
		state:       StateAnonymous,
		subscribers: make(map[int]func(snapshot Snapshot)),
	}, nil
}

// Start restores the provider's current session and begins observing
// session changes. Without a provider it returns immediately and the
// resolver stays anonymous.
func (r *Resolver) Start(ctx context.Context) error {
	if r.provider == nil {
		return nil
	}

	r.mu.Lock()
	r.baseCtx = ctx
	r.mu.Unlock()

	r.unsubscribe = r.provider.OnSessionChange(func(session *models.Session) {
		r.handleSessionChange(session)
	})

	session, err := r.provider.GetCurrentSession(ctx)
	if err != nil {
		r.mu.Lock()
		r.generation++
		r.state = StateError
		r.session = nil
		r.role = ""
		r.permissions = nil
		r.lastErr = err
		snapshot := r.snapshotLocked()
		r.mu.Unlock()
		r.publish(snapshot)
		return err
	}

	r.handleSessionChange(session)
	return nil
}

// Stop detaches the resolver from the provider
func (r *Resolver) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// Snapshot returns the resolver's current state
func (r *Resolver) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// CurrentRole returns the resolved role, or empty outside the
// authenticated state
func (r *Resolver) CurrentRole() models.Role {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateAuthenticated {
		return ""
	}
	return r.role
}

// IsAdmin reports whether the resolved role is an admin tier
func (r *Resolver) IsAdmin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state == StateAuthenticated && r.role.IsAdmin()
}

// CanAccess reports whether the resolved principal may use a
// capability. Super admins pass every gate; anyone else needs the
// capability granted in their bag. Outside the authenticated state the
// answer is always no.
func (r *Resolver) CanAccess(c models.Capability) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateAuthenticated {
		return false
	}
	if r.role == models.RoleSuperAdmin {
		return true
	}
	return r.permissions.Allows(c)
}

// RequireRole returns nil only if the resolved principal holds the
// required role. Super admins satisfy any requirement; no other role
// satisfies a super admin requirement.
func (r *Resolver) RequireRole(required models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateAuthenticated {
		return ErrNotAuthenticated
	}
	if r.role == models.RoleSuperAdmin {
		return nil
	}
	if !required.Valid() || r.role != required {
		return ErrForbidden
	}
	return nil
}

// SignOut resets the resolver to anonymous before asking the provider
// to revoke the session. The local reset happens even if the provider
// call fails, so a broken backend can never leave a stale role behind.
func (r *Resolver) SignOut(ctx context.Context) error {
	r.mu.Lock()
	r.generation++
	token := ""
	if r.session != nil {
		token = r.session.Token
	}
	r.resetLocked()
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.publish(snapshot)

	if r.provider == nil {
		return nil
	}

	return r.provider.SignOut(ctx, &SignOutInput{Token: token})
}

// Subscribe registers a callback for state changes. The callback fires
// immediately with the current snapshot, then on every transition. The
// returned func unsubscribes.
func (r *Resolver) Subscribe(fn func(snapshot Snapshot)) func() {
	r.mu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	fn(snapshot)

	return func() {
		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}
}

// handleSessionChange applies a session-change event from the provider
func (r *Resolver) handleSessionChange(session *models.Session) {
	r.mu.Lock()
	r.generation++
	generation := r.generation

	if session == nil {
		if r.state == StateAnonymous && r.session == nil {
			// Already anonymous; the bump above still cancels any
			// in-flight lookup
			r.mu.Unlock()
			return
		}
		r.resetLocked()
		snapshot := r.snapshotLocked()
		r.mu.Unlock()
		r.publish(snapshot)
		return
	}

	r.state = StateResolving
	r.session = session
	r.role = ""
	r.permissions = nil
	r.lastErr = nil
	ctx := r.baseCtx
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.publish(snapshot)

	if ctx == nil {
		ctx = context.Background()
	}

	go r.resolveRole(ctx, generation, session)
}

// resolveRole fetches the role for a session and applies it unless a
// newer session change has superseded this lookup
func (r *Resolver) resolveRole(ctx context.Context, generation uint64, session *models.Session) {
	out, err := r.profileRepo.GetProfileRole(ctx, &profileRepo.GetProfileRoleInput{
		ProfileID: session.UserID,
	})

	r.mu.Lock()
	if generation != r.generation {
		// A newer change won the race; drop this result
		r.mu.Unlock()
		return
	}

	if err != nil {
		r.state = StateError
		r.role = ""
		r.permissions = nil
		r.lastErr = err
	} else {
		r.state = StateAuthenticated
		r.role = out.Role
		r.permissions = out.Permissions
		r.lastErr = nil
	}
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.publish(snapshot)
}

// resetLocked returns the resolver to the anonymous state. Callers
// must hold the lock.
func (r *Resolver) resetLocked() {
	r.state = StateAnonymous
	r.session = nil
	r.role = ""
	r.permissions = nil
	r.lastErr = nil
}

// snapshotLocked builds a snapshot. Callers must hold the lock.
func (r *Resolver) snapshotLocked() Snapshot {
	return Snapshot{
		State:       r.state,
		Session:     r.session,
		Role:        r.role,
		Permissions: r.permissions,
		Err:         r.lastErr,
	}
}

// publish fires every subscriber outside the lock
func (r *Resolver) publish(snapshot Snapshot) {
	r.mu.Lock()
	fns := make([]func(snapshot Snapshot), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
