package flow

import (
	"context"
	"errors"
	"strings"

	"github.com/PaynestHQ/paynest-mobile/apiclient"
	"github.com/PaynestHQ/paynest-mobile/keystore"
	"github.com/PaynestHQ/paynest-mobile/models"
	"github.com/PaynestHQ/paynest-mobile/session"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPhoneLogin       = errors.New("phone login is not yet implemented")
)

// Authenticator owns the login/logout lifecycle: backend call, token
// persistence, and session initialization.
type Authenticator struct {
	api     *apiclient.Client
	session *session.Store
	keys    keystore.Keystore
}

func NewAuthenticator(api *apiclient.Client, sess *session.Store, keys keystore.Keystore) *Authenticator {
	return &Authenticator{api: api, session: sess, keys: keys}
}

// Login authenticates with email and password, persists the token under the
// jwtToken key, and seeds the session with a fresh completion status.
func (a *Authenticator) Login(ctx context.Context, email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ErrPasswordRequired
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.keys.Set(keystore.TokenKey, resp.Token); err != nil {
		return err
	}

	fullName := resp.User.FullName
	if fullName == "" {
		// No name on record yet, fall back to the email local part.
		fullName = strings.SplitN(email, "@", 2)[0]
	}

	a.session.SetUser(&session.User{
		FullName:        fullName,
		Email:           email,
		Phone:           resp.User.PhoneNumber,
		IsAuthenticated: true,
	})
	return nil
}

// LoginWithPhone is intentionally unsupported; the backend only issues
// sessions against verified emails today.
func (a *Authenticator) LoginWithPhone(ctx context.Context, phone, password string) error {
	return ErrPhoneLogin
}

// Logout clears the persisted token and then discards the session profile.
func (a *Authenticator) Logout() error {
	err := a.keys.Delete(keystore.TokenKey)
	a.session.Logout()
	return err
}

// ForgotPassword requests a reset code. The returned message is shown as-is.
func (a *Authenticator) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := ValidateEmail(email); err != nil {
		return "", err
	}
	return a.api.ForgotPassword(ctx, email)
}

// FetchProfile loads the authenticated profile with the stored token and
// merges it into the session.
func (a *Authenticator) FetchProfile(ctx context.Context) (models.User, error) {
	token, err := a.keys.Get(keystore.TokenKey)
	if err != nil {
		return models.User{}, &apiclient.APIError{
			Code:    models.CodeUnauthorized,
			Message: "Your session has expired. Please log in again.",
		}
	}

	user, err := a.api.GetProfile(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	a.session.UpdateUser(session.UserUpdate{
		FullName: &user.FullName,
		Email:    &user.Email,
		Phone:    &user.PhoneNumber,
	})
	return user, nil
}
