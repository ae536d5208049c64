package flow

import (
	"errors"
	"strings"

	"github.com/PaynestHQ/paynest-mobile/session"
)

// ErrMissingFields is returned when a required profile field is blank.
var ErrMissingFields = errors.New("please fill in all required fields")

// PersonalInformation is the first profile-completion form.
type PersonalInformation struct {
	Username    string
	FirstName   string
	LastName    string
	DateOfBirth string
	Email       string
	Nationality string
}

// AddressInformation is the second form. AddressLine2 and StateProvince are
// optional.
type AddressInformation struct {
	Country       string
	StreetAddress string
	AddressLine2  string
	City          string
	PostalCode    string
	StateProvince string
}

// IdentityDocument is the final form. DocumentType is passport, national ID
// or driver's license.
type IdentityDocument struct {
	DocumentType   string
	DocumentNumber string
	IssuingCountry string
	Nationality    string
	ExpiryDate     string
}

// ProfileCompletion walks the three KYC-style steps that unlock financial
// actions. Each submit validates its form, flips the matching completion
// flag, and the caller advances to the next form. The identity step is
// terminal.
type ProfileCompletion struct {
	session *session.Store
}

func NewProfileCompletion(sess *session.Store) *ProfileCompletion {
	return &ProfileCompletion{session: sess}
}

// SubmitPersonalInformation validates the form, merges the real name and
// email into the profile, and marks the step complete.
func (p *ProfileCompletion) SubmitPersonalInformation(info PersonalInformation) error {
	if anyBlank(info.Username, info.FirstName, info.LastName, info.DateOfBirth, info.Email, info.Nationality) {
		return ErrMissingFields
	}

	fullName := info.FirstName + " " + info.LastName
	p.session.UpdateUser(session.UserUpdate{
		FullName: &fullName,
		Email:    &info.Email,
	})
	p.session.UpdateProfileStatus(session.StepPersonalInformation, true)
	return nil
}

func (p *ProfileCompletion) SubmitAddressInformation(info AddressInformation) error {
	if anyBlank(info.Country, info.StreetAddress, info.City, info.PostalCode) {
		return ErrMissingFields
	}

	p.session.UpdateProfileStatus(session.StepAddressInformation, true)
	return nil
}

// SubmitIdentityDocument completes the last step; after this the profile is
// fully verified and the gate below opens.
func (p *ProfileCompletion) SubmitIdentityDocument(doc IdentityDocument) error {
	if anyBlank(doc.DocumentNumber, doc.IssuingCountry, doc.Nationality) {
		return ErrMissingFields
	}

	p.session.UpdateProfileStatus(session.StepIdentityVerification, true)
	return nil
}

// GateAction decides whether a financial action (deposit, send, ...) may
// proceed. An incomplete profile redirects to the verification entry point;
// there is no partial-permission state and nothing is queued.
func (p *ProfileCompletion) GateAction(action string) GateResult {
	if p.session.IsProfileComplete() {
		return GateResult{Action: action, Allowed: true}
	}
	return GateResult{Action: action, RedirectToVerification: true}
}

// GateResult says what to do with an attempted action.
type GateResult struct {
	Action                 string
	Allowed                bool
	RedirectToVerification bool
}

func anyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
