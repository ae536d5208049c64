package session

import "testing"

func authedUser() *User {
	return &User{
		FullName:        "Jane Doe",
		Email:           "jane@x.com",
		Phone:           "+21612345678",
		IsAuthenticated: true,
	}
}

func TestIsProfileComplete(t *testing.T) {
	tests := []struct {
		name   string
		status *CompletionStatus // nil means no user at all
		want   bool
	}{
		{"no user", nil, false},
		{"none complete", &CompletionStatus{}, false},
		{"personal only", &CompletionStatus{PersonalInformation: true}, false},
		{"two of three", &CompletionStatus{PersonalInformation: true, AddressInformation: true}, false},
		{"all complete", &CompletionStatus{PersonalInformation: true, AddressInformation: true, IdentityVerification: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			if tt.status != nil {
				u := authedUser()
				u.ProfileCompletionStatus = *tt.status
				store.SetUser(u)
			}
			if got := store.IsProfileComplete(); got != tt.want {
				t.Errorf("IsProfileComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateProfileStatusFlipsExactlyOneFlag(t *testing.T) {
	store := NewStore()
	store.SetUser(authedUser())

	store.UpdateProfileStatus(StepAddressInformation, true)

	user, ok := store.User()
	if !ok {
		t.Fatal("expected a user")
	}
	st := user.ProfileCompletionStatus
	if !st.AddressInformation {
		t.Error("addressInformation should be set")
	}
	if st.PersonalInformation || st.IdentityVerification {
		t.Errorf("other flags must stay false, got %+v", st)
	}
	if user.FullName != "Jane Doe" || user.Email != "jane@x.com" {
		t.Errorf("non-status fields changed: %+v", user)
	}
}

func TestUpdateProfileStatusIsMonotonic(t *testing.T) {
	store := NewStore()
	store.SetUser(authedUser())

	store.UpdateProfileStatus(StepPersonalInformation, true)
	store.UpdateProfileStatus(StepPersonalInformation, false)

	user, _ := store.User()
	if !user.ProfileCompletionStatus.PersonalInformation {
		t.Error("completed step must not be cleared except via logout")
	}
}

func TestUpdateProfileStatusWithoutUserIsNoop(t *testing.T) {
	store := NewStore()
	store.UpdateProfileStatus(StepPersonalInformation, true)

	if _, ok := store.User(); ok {
		t.Fatal("no user should have been created")
	}
	if store.IsProfileComplete() {
		t.Error("IsProfileComplete must stay false without a user")
	}
}

func TestUpdateUserShallowMerge(t *testing.T) {
	store := NewStore()
	store.SetUser(authedUser())

	email := "a@b.com"
	store.UpdateUser(UserUpdate{Email: &email})

	user, _ := store.User()
	if user.Email != "a@b.com" {
		t.Errorf("email = %q, want a@b.com", user.Email)
	}
	if user.FullName != "Jane Doe" {
		t.Errorf("fullName changed to %q", user.FullName)
	}
	if user.Phone != "+21612345678" {
		t.Errorf("phone changed to %q", user.Phone)
	}
}

func TestUpdateUserWithoutUserIsNoop(t *testing.T) {
	store := NewStore()
	email := "a@b.com"
	store.UpdateUser(UserUpdate{Email: &email})

	if _, ok := store.User(); ok {
		t.Fatal("UpdateUser must not create a user")
	}
}

func TestLogoutDiscardsProfileButKeepsCards(t *testing.T) {
	store := NewStore()
	user := authedUser()
	user.ProfileCompletionStatus = CompletionStatus{
		PersonalInformation:  true,
		AddressInformation:   true,
		IdentityVerification: true,
	}
	store.SetUser(user)
	store.AddCard(Card{Type: "Card", Balance: "0.00"})

	store.Logout()

	if _, ok := store.User(); ok {
		t.Error("profile must be gone after logout")
	}
	if store.IsProfileComplete() {
		t.Error("IsProfileComplete must be false after logout")
	}
	if got := len(store.Cards()); got != 4 {
		t.Errorf("cards must survive logout, got %d", got)
	}
}

func TestSetUserNilSignsOut(t *testing.T) {
	store := NewStore()
	store.SetUser(authedUser())
	store.SetUser(nil)

	if _, ok := store.User(); ok {
		t.Error("SetUser(nil) must sign the user out")
	}
}

func TestSubscribeFiresOnMutation(t *testing.T) {
	store := NewStore()
	fired := 0
	unsubscribe := store.Subscribe(func() { fired++ })

	store.SetUser(authedUser())
	if fired != 1 {
		t.Fatalf("expected 1 notification, got %d", fired)
	}

	unsubscribe()
	store.Logout()
	if fired != 1 {
		t.Errorf("unsubscribed listener still fired, count %d", fired)
	}
}
