package flow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PaynestHQ/paynest-mobile/apiclient"
	"github.com/PaynestHQ/paynest-mobile/keystore"
	"github.com/PaynestHQ/paynest-mobile/models"
	"github.com/PaynestHQ/paynest-mobile/session"
)

func newAuthBackend() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.Password != "Sup3r!Secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Envelope{
				Success: false,
				Message: "Invalid email or password",
				Code:    models.CodeInvalidCredentials,
			})
			return
		}
		json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Token:   "tok-123",
			User:    models.User{ID: "u1", Email: req.Email, PhoneNumber: "12345678"},
		})
	})

	mux.HandleFunc("/auth/forgot-password", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Envelope{
			Success: true,
			Message: "If that account exists, a reset code is on its way",
		})
	})

	mux.HandleFunc("/user/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.Envelope{
				Success: false, Message: "Unauthorized", Code: models.CodeUnauthorized,
			})
			return
		}
		json.NewEncoder(w).Encode(models.ProfileResponse{
			Success: true,
			User: models.User{
				ID:          "u1",
				FullName:    "Jane Doe",
				Email:       "jane@x.com",
				PhoneNumber: "12345678",
			},
		})
	})

	return mux
}

func newTestAuthenticator(t *testing.T) (*Authenticator, *session.Store, *keystore.Memory) {
	t.Helper()
	srv := httptest.NewServer(newAuthBackend())
	t.Cleanup(srv.Close)

	sess := session.NewStore()
	keys := keystore.NewMemory()
	return NewAuthenticator(apiclient.NewClient(srv.URL), sess, keys), sess, keys
}

func TestLoginValidatesInput(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)
	ctx := context.Background()

	if err := a.Login(ctx, "", "Sup3r!Secret"); err != ErrEmailRequired {
		t.Errorf("empty email: %v, want ErrEmailRequired", err)
	}
	if err := a.Login(ctx, "nope", "Sup3r!Secret"); err != ErrEmailInvalid {
		t.Errorf("bad email: %v, want ErrEmailInvalid", err)
	}
	if err := a.Login(ctx, "jane@x.com", ""); err != ErrPasswordRequired {
		t.Errorf("empty password: %v, want ErrPasswordRequired", err)
	}
}

func TestLoginStoresTokenAndSeedsSession(t *testing.T) {
	a, sess, keys := newTestAuthenticator(t)

	if err := a.Login(context.Background(), "jane@x.com", "Sup3r!Secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	token, err := keys.Get(keystore.TokenKey)
	if err != nil {
		t.Fatalf("token not persisted: %v", err)
	}
	if token != "tok-123" {
		t.Errorf("token = %q, want %q", token, "tok-123")
	}

	user, ok := sess.User()
	if !ok {
		t.Fatal("no session user after login")
	}
	if !user.IsAuthenticated {
		t.Error("session user should be authenticated")
	}
	// The backend sent no fullName, so the email local part stands in.
	if user.FullName != "jane" {
		t.Errorf("fallback name = %q, want %q", user.FullName, "jane")
	}
	if user.ProfileCompletionStatus != (session.CompletionStatus{}) {
		t.Errorf("completion status = %+v, want all false", user.ProfileCompletionStatus)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	a, sess, keys := newTestAuthenticator(t)

	err := a.Login(context.Background(), "jane@x.com", "wrong-password")
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != models.CodeInvalidCredentials {
		t.Fatalf("err = %v, want invalid_credentials", err)
	}
	if _, ok := sess.User(); ok {
		t.Error("failed login must not seed the session")
	}
	if _, err := keys.Get(keystore.TokenKey); err != keystore.ErrNotFound {
		t.Error("failed login must not persist a token")
	}
}

func TestLoginWithPhoneUnsupported(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)

	if err := a.LoginWithPhone(context.Background(), "12345678", "Sup3r!Secret"); err != ErrPhoneLogin {
		t.Errorf("LoginWithPhone = %v, want ErrPhoneLogin", err)
	}
}

func TestLogoutClearsTokenAndSession(t *testing.T) {
	a, sess, keys := newTestAuthenticator(t)

	if err := a.Login(context.Background(), "jane@x.com", "Sup3r!Secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := a.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := keys.Get(keystore.TokenKey); err != keystore.ErrNotFound {
		t.Error("token survived logout")
	}
	if _, ok := sess.User(); ok {
		t.Error("session user survived logout")
	}
}

func TestForgotPasswordReturnsBackendMessage(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)

	msg, err := a.ForgotPassword(context.Background(), "jane@x.com")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if !strings.Contains(msg, "reset code") {
		t.Errorf("message = %q, want the backend notice", msg)
	}

	if _, err := a.ForgotPassword(context.Background(), "not-an-email"); err != ErrEmailInvalid {
		t.Errorf("bad email = %v, want ErrEmailInvalid", err)
	}
}

func TestFetchProfileWithoutTokenIsUnauthorized(t *testing.T) {
	a, _, _ := newTestAuthenticator(t)

	_, err := a.FetchProfile(context.Background())
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != models.CodeUnauthorized {
		t.Fatalf("err = %v, want unauthorized", err)
	}
}

func TestFetchProfileMergesIntoSession(t *testing.T) {
	a, sess, _ := newTestAuthenticator(t)

	if err := a.Login(context.Background(), "jane@x.com", "Sup3r!Secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	user, err := a.FetchProfile(context.Background())
	if err != nil {
		t.Fatalf("FetchProfile: %v", err)
	}
	if user.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, want %q", user.FullName, "Jane Doe")
	}

	got, _ := sess.User()
	if got.FullName != "Jane Doe" {
		t.Errorf("session name = %q, want the fetched profile merged in", got.FullName)
	}
	if !got.IsAuthenticated {
		t.Error("merge must not clear the authenticated flag")
	}
}
