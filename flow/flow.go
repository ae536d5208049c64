// flow/flow.go
// ============================================================================
// VERIFICATION SEQUENCER
// ============================================================================
// The signup pipeline used to live implicitly in navigation parameters; each
// screen trusted whatever the previous one passed along. Here it is a real
// state machine: the Sequencer owns a tagged-union State, screens render the
// current state and dispatch transitions, and reaching SetPassword without a
// verified code is simply not constructible.
// ============================================================================

package flow

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"

	"github.com/PaynestHQ/paynest-mobile/apiclient"
	"github.com/PaynestHQ/paynest-mobile/models"
	"github.com/PaynestHQ/paynest-mobile/session"
	"github.com/PaynestHQ/paynest-mobile/utils"
)

// SignupMode selects the contact channel used for verification.
type SignupMode string

const (
	ModeEmail SignupMode = "email"
	ModePhone SignupMode = "phone"
)

// TempUser carries the signup details collected before a backend account
// exists. Once the register call succeeds it is discarded in favor of the
// issued user ID.
type TempUser struct {
	FullName    string
	Email       string
	PhoneNumber string
	Password    string
}

// ============================================================================
// STATES
// ============================================================================

// State is the sealed union of sequencer positions. Only this package can
// construct transitions between them.
type State interface {
	isState()
}

// ContactEntry collects an email address or phone number.
type ContactEntry struct {
	Mode SignupMode
}

// Confirm shows the entered contact back to the user before any code is sent.
type Confirm struct {
	Contact string
	Mode    SignupMode
	Temp    *TempUser
}

// CodeConfirmation waits for the 6-digit code. Exactly one of UserID and Temp
// is meaningful: Temp means no backend account exists yet and the register
// call happens on submit; UserID means the account exists unverified.
type CodeConfirmation struct {
	Contact   string
	Mode      SignupMode
	UserID    string
	Temp      *TempUser
	countdown *Countdown
}

// SetPassword is reached only after the backend accepted the code.
type SetPassword struct {
	Contact string
	Mode    SignupMode
	UserID  string
}

// Completed is terminal: the session is authenticated and there is no path
// back into onboarding.
type Completed struct {
	UserID string
}

func (ContactEntry) isState()     {}
func (Confirm) isState()          {}
func (CodeConfirmation) isState() {}
func (SetPassword) isState()      {}
func (Completed) isState()        {}

// ============================================================================
// SEQUENCER
// ============================================================================

var (
	ErrInvalidTransition = errors.New("operation not valid in the current step")
	ErrIncompleteCode    = errors.New("please enter the complete 6-digit code")
	ErrRequestInFlight   = errors.New("a request is already in progress")
	ErrPasswordRules     = errors.New("please meet all password requirements")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordEmpty     = errors.New("please enter and confirm your password")
)

// Sequencer drives the signup/verification pipeline strictly forward.
type Sequencer struct {
	mu      sync.Mutex
	api     *apiclient.Client
	session *session.Store
	state   State
	busy    bool
}

// NewSequencer starts a sequencer at ContactEntry in phone mode, matching the
// signup screen's default toggle.
func NewSequencer(api *apiclient.Client, sess *session.Store) *Sequencer {
	return &Sequencer{
		api:     api,
		session: sess,
		state:   ContactEntry{Mode: ModePhone},
	}
}

// State returns the current position in the pipeline.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetMode switches between phone and email signup. Only legal before a
// contact is submitted.
func (s *Sequencer) SetMode(mode SignupMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.(ContactEntry); !ok {
		return ErrInvalidTransition
	}
	s.state = ContactEntry{Mode: mode}
	return nil
}

// SubmitContact validates the entered contact and advances to Confirm. A
// non-nil temp marks a pre-account signup: the register call is deferred to
// the code-confirmation step.
func (s *Sequencer) SubmitContact(contact string, temp *TempUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.state.(ContactEntry)
	if !ok {
		return ErrInvalidTransition
	}

	contact = strings.TrimSpace(contact)
	switch entry.Mode {
	case ModeEmail:
		if err := ValidateEmail(contact); err != nil {
			return err
		}
	default:
		if err := ValidatePhone(contact); err != nil {
			return err
		}
	}

	s.state = Confirm{Contact: contact, Mode: entry.Mode, Temp: temp}
	return nil
}

// ConfirmContact acknowledges the restated contact info and enters the
// code-confirmation step, arming the resend countdown.
func (s *Sequencer) ConfirmContact() error {
	return s.confirmWithUserID("")
}

// ConfirmContactForUser enters code confirmation for an account that already
// exists unverified (e.g. a login that bounced with not_verified).
func (s *Sequencer) ConfirmContactForUser(userID string) error {
	return s.confirmWithUserID(userID)
}

func (s *Sequencer) confirmWithUserID(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	confirm, ok := s.state.(Confirm)
	if !ok {
		return ErrInvalidTransition
	}

	s.state = CodeConfirmation{
		Contact:   confirm.Contact,
		Mode:      confirm.Mode,
		UserID:    userID,
		Temp:      confirm.Temp,
		countdown: startCountdown(),
	}
	return nil
}

// Back re-enters the previous step unchanged. Leaving code confirmation
// releases its countdown. Not available once the password step is reached.
func (s *Sequencer) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.state.(type) {
	case Confirm:
		s.state = ContactEntry{Mode: st.Mode}
		return nil
	case CodeConfirmation:
		st.countdown.Stop()
		s.state = Confirm{Contact: st.Contact, Mode: st.Mode, Temp: st.Temp}
		return nil
	default:
		return ErrInvalidTransition
	}
}

// Abort releases the sequencer when the user leaves onboarding mid-flow
// (screen unmount without Back). Any armed countdown is stopped and the
// pipeline returns to contact entry; a completed pipeline is left alone.
// View teardown must call this, otherwise an abandoned code-confirmation
// step keeps its ticker goroutine alive.
func (s *Sequencer) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch st := s.state.(type) {
	case Confirm:
		s.state = ContactEntry{Mode: st.Mode}
	case CodeConfirmation:
		st.countdown.Stop()
		s.state = ContactEntry{Mode: st.Mode}
	case SetPassword:
		s.state = ContactEntry{Mode: st.Mode}
	}
}

// ResendRemaining returns the seconds until resend unlocks, or 0 outside the
// code-confirmation step.
func (s *Sequencer) ResendRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.state.(CodeConfirmation); ok {
		return st.countdown.Remaining()
	}
	return 0
}

// SubmitCode sends the 6-digit code to the backend. For pre-account signups
// this is the moment the account is created; otherwise the code verifies the
// existing account. On success the sequencer moves to SetPassword; on failure
// it stays put and the user may resubmit.
func (s *Sequencer) SubmitCode(ctx context.Context, code string) error {
	s.mu.Lock()
	st, ok := s.state.(CodeConfirmation)
	if !ok {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	if s.busy {
		s.mu.Unlock()
		return ErrRequestInFlight
	}
	if !digitsOnly.MatchString(code) {
		s.mu.Unlock()
		return ErrIncompleteCode
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	userID := st.UserID

	if st.Temp != nil {
		// Pre-account signup: the code unlocked account creation.
		resp, err := s.api.Register(ctx, models.RegisterRequest{
			FullName:    st.Temp.FullName,
			Email:       st.Temp.Email,
			PhoneNumber: st.Temp.PhoneNumber,
			Password:    st.Temp.Password,
		})
		if err != nil {
			return err
		}
		userID = resp.Data.UserID
	} else {
		if userID == "" {
			return &apiclient.APIError{
				Code:    models.CodeNotFound,
				Message: "Missing user information. Please try again.",
			}
		}

		var err error
		if st.Mode == ModeEmail {
			err = s.api.VerifyEmail(ctx, userID, code)
		} else {
			err = s.api.VerifyPhone(ctx, userID, code)
		}
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	if !s.stillAt(st) {
		// The user backed out while the request was in flight; the stale
		// response must not force them forward.
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	st.countdown.Stop()
	s.state = SetPassword{Contact: st.Contact, Mode: st.Mode, UserID: userID}
	s.mu.Unlock()
	return nil
}

// stillAt reports whether the sequencer is still in the given
// code-confirmation entry. Each entry arms its own countdown, so the pointer
// identifies it. Caller holds the lock.
func (s *Sequencer) stillAt(st CodeConfirmation) bool {
	cur, ok := s.state.(CodeConfirmation)
	return ok && cur.countdown == st.countdown
}

// ResendCode requests a fresh code. Before the countdown expires this is a
// silent no-op with no network call. On success the countdown re-arms and the
// returned notice carries the masked contact info for display.
func (s *Sequencer) ResendCode(ctx context.Context) (string, error) {
	s.mu.Lock()
	st, ok := s.state.(CodeConfirmation)
	if !ok {
		s.mu.Unlock()
		return "", ErrInvalidTransition
	}
	if !st.countdown.Expired() {
		s.mu.Unlock()
		return "", nil
	}
	if s.busy {
		s.mu.Unlock()
		return "", ErrRequestInFlight
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	// Existing accounts go through the backend; pre-account signups have
	// nothing to resend against yet, the notice alone re-arms the timer.
	if st.Temp == nil {
		if st.UserID == "" {
			return "", &apiclient.APIError{
				Code:    models.CodeNotFound,
				Message: "Missing user information. Please try again.",
			}
		}
		if err := s.api.ResendVerification(ctx, st.UserID, string(st.Mode)); err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	if !s.stillAt(st) {
		s.mu.Unlock()
		return "", ErrInvalidTransition
	}
	st.countdown.reset()
	s.mu.Unlock()
	return "New verification code sent to " + utils.MaskContact(st.Contact), nil
}

// SubmitPassword applies the password rules and, on success, signs the user
// into the session with a generated placeholder display name. The pipeline
// ends here; there is no transition out of Completed.
func (s *Sequencer) SubmitPassword(ctx context.Context, password, confirm string) error {
	s.mu.Lock()
	st, ok := s.state.(SetPassword)
	if !ok {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	s.mu.Unlock()

	if password == "" || confirm == "" {
		return ErrPasswordEmpty
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	if !PasswordMeetsRequirements(password) {
		return ErrPasswordRules
	}

	user := session.User{
		FullName:        generateDisplayName(),
		IsAuthenticated: true,
	}
	if st.Mode == ModeEmail {
		user.Email = st.Contact
	} else {
		user.Phone = st.Contact
	}

	s.mu.Lock()
	if cur, ok := s.state.(SetPassword); !ok || cur != st {
		s.mu.Unlock()
		return ErrInvalidTransition
	}
	s.session.SetUser(&user)
	s.state = Completed{UserID: st.UserID}
	s.mu.Unlock()
	return nil
}

// generateDisplayName builds a placeholder like "User-21gh6" until the user
// fills in their real name during profile completion.
func generateDisplayName() string {
	const chars = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := strings.Builder{}
	b.WriteString("User-")
	for i := 0; i < 5; i++ {
		b.WriteByte(chars[rand.Intn(len(chars))])
	}
	return b.String()
}
