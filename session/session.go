// session/session.go
// ============================================================================
// SESSION STORE - Single source of truth for the signed-in user
// ============================================================================
// Screens read the profile and onboarding progress from here and mutate it
// through the narrow API below. The store performs no I/O and never fails;
// every operation is a total function over in-memory state.
// ============================================================================

package session

import "sync"

// ProfileStep names one of the three onboarding completion flags.
type ProfileStep string

const (
	StepPersonalInformation  ProfileStep = "personalInformation"
	StepAddressInformation   ProfileStep = "addressInformation"
	StepIdentityVerification ProfileStep = "identityVerification"
)

// CompletionStatus tracks how far onboarding has progressed. Flags only move
// false→true; the whole profile is discarded on logout.
type CompletionStatus struct {
	PersonalInformation  bool `json:"personalInformation"`
	AddressInformation   bool `json:"addressInformation"`
	IdentityVerification bool `json:"identityVerification"`
}

// User is the client-side profile of the signed-in user.
type User struct {
	FullName                string           `json:"fullName"`
	Email                   string           `json:"email"`
	Phone                   string           `json:"phone"`
	IsAuthenticated         bool             `json:"isAuthenticated"`
	ProfileCompletionStatus CompletionStatus `json:"profileCompletionStatus"`
}

// UserUpdate is a partial profile; nil fields are left untouched.
type UserUpdate struct {
	FullName        *string
	Email           *string
	Phone           *string
	IsAuthenticated *bool
}

// Store holds the session profile and the card collection. It is safe for
// concurrent use and is injected into every screen-level component rather
// than living as ambient global state.
type Store struct {
	mu        sync.RWMutex
	user      *User
	cards     []Card
	nextSub   int
	listeners map[int]func()
}

// NewStore creates a store with no user and the placeholder card deck.
func NewStore() *Store {
	return &Store{
		cards:     seedCards(),
		listeners: make(map[int]func()),
	}
}

// SetUser replaces the entire session. Passing nil signs the user out without
// touching the cards (cards are not owned by the session).
func (s *Store) SetUser(user *User) {
	s.mu.Lock()
	if user == nil {
		s.user = nil
	} else {
		u := *user
		s.user = &u
	}
	s.mu.Unlock()
	s.notify()
}

// User returns a copy of the current profile, or false when signed out.
func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// UpdateUser shallow-merges the given fields into the profile. Silently does
// nothing when no user is set.
func (s *Store) UpdateUser(updates UserUpdate) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if updates.FullName != nil {
		s.user.FullName = *updates.FullName
	}
	if updates.Email != nil {
		s.user.Email = *updates.Email
	}
	if updates.Phone != nil {
		s.user.Phone = *updates.Phone
	}
	if updates.IsAuthenticated != nil {
		s.user.IsAuthenticated = *updates.IsAuthenticated
	}
	s.mu.Unlock()
	s.notify()
}

// UpdateProfileStatus marks an onboarding step complete. Completion flags are
// monotonic: attempts to clear a step are ignored, only logout resets them.
// Silently does nothing when no user is set.
func (s *Store) UpdateProfileStatus(step ProfileStep, completed bool) {
	if !completed {
		return
	}

	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	switch step {
	case StepPersonalInformation:
		s.user.ProfileCompletionStatus.PersonalInformation = true
	case StepAddressInformation:
		s.user.ProfileCompletionStatus.AddressInformation = true
	case StepIdentityVerification:
		s.user.ProfileCompletionStatus.IdentityVerification = true
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.notify()
}

// IsProfileComplete reports whether all three onboarding steps are done.
// False when no user is signed in.
func (s *Store) IsProfileComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	st := s.user.ProfileCompletionStatus
	return st.PersonalInformation && st.AddressInformation && st.IdentityVerification
}

// Logout discards the profile. The persisted token is not cleared here;
// callers own that (see flow.Authenticator).
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a callback invoked after every mutation, so view
// layers can re-render. The returned function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
