// Package models defines the records shared between the state container,
// the local snapshot mirror, and the remote user document.
package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UserState is the profile slice of the state container. The same record is
// embedded in the remote document as user.primaryInformation; the password
// pair never leaves the process.
type UserState struct {
	FirstName         string `json:"firstName" firestore:"firstName"`
	LastName          string `json:"lastName" firestore:"lastName"`
	Email             string `json:"email" firestore:"email"`
	Password          string `json:"password" firestore:"-"`
	ConfirmPassword   string `json:"confirmPassword" firestore:"-"`
	IsLoggedIn        bool   `json:"isLoggedIn" firestore:"isLoggedIn"`
	Initials          string `json:"initials" firestore:"initials"`
	UniqueID          string `json:"uniqueId" firestore:"uniqueId"`
	AgreedToTerms     bool   `json:"agreedToTerms" firestore:"agreedToTerms"`
	MiddleName        string `json:"middleName" firestore:"middleName"`
	Phone             string `json:"phone" firestore:"phone"`
	Gender            string `json:"gender" firestore:"gender"`
	DateOfBirth       string `json:"dateOfBirth" firestore:"dateOfBirth"`
	Disability        bool   `json:"disability" firestore:"disability"`
	DisabilityType    string `json:"disabilityType" firestore:"disabilityType"`
	PhotoURL          string `json:"photoUrl" firestore:"photoUrl"`
	EducationalLevel  string `json:"educationalLevel" firestore:"educationalLevel"`
	ReferralName      string `json:"referralName" firestore:"referralName"`
	SecondaryEmail    string `json:"secondaryEmail" firestore:"secondaryEmail"`
	SecurityQuestion  string `json:"securityQuestion" firestore:"securityQuestion"`
	SecurityAnswer    string `json:"securityAnswer" firestore:"securityAnswer"`
	VerifiedEmail     bool   `json:"verifiedEmail" firestore:"verifiedEmail"`
	VerifyPhoneNumber bool   `json:"verifyPhoneNumber" firestore:"verifyPhoneNumber"`
	TwoFactorSettings bool   `json:"twoFactorSettings" firestore:"twoFactorSettings"`
	StreetNumber      string `json:"streetNumber" firestore:"streetNumber"`
	StreetName        string `json:"streetName" firestore:"streetName"`
	City              string `json:"city" firestore:"city"`
	State             string `json:"state" firestore:"state"`
	Country           string `json:"country" firestore:"country"`
}

// DefaultUserState returns the all-empty/false record the profile slice is
// reset to on sign-out.
func DefaultUserState() UserState {
	return UserState{}
}

// Initials derives the two-letter initials stored with the profile,
// e.g. ("Jane", "Doe") -> "JD". The first rune of each name is taken, so
// multibyte letters survive intact.
func Initials(firstName, lastName string) string {
	var b strings.Builder
	for _, name := range []string{firstName, lastName} {
		if name == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(name)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// UserPatch is a partial profile update. Nil fields are left untouched by
// Apply, mirroring the shallow merge the profile reducer performs.
type UserPatch struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Password          *string
	ConfirmPassword   *string
	IsLoggedIn        *bool
	Initials          *string
	UniqueID          *string
	AgreedToTerms     *bool
	MiddleName        *string
	Phone             *string
	Gender            *string
	DateOfBirth       *string
	Disability        *bool
	DisabilityType    *string
	PhotoURL          *string
	EducationalLevel  *string
	ReferralName      *string
	SecondaryEmail    *string
	SecurityQuestion  *string
	SecurityAnswer    *string
	VerifiedEmail     *bool
	VerifyPhoneNumber *bool
	TwoFactorSettings *bool
	StreetNumber      *string
	StreetName        *string
	City              *string
	State             *string
	Country           *string
}

// Apply merges the patch into s, field by field.
func (p UserPatch) Apply(s UserState) UserState {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&s.FirstName, p.FirstName)
	setString(&s.LastName, p.LastName)
	setString(&s.Email, p.Email)
	setString(&s.Password, p.Password)
	setString(&s.ConfirmPassword, p.ConfirmPassword)
	setBool(&s.IsLoggedIn, p.IsLoggedIn)
	setString(&s.Initials, p.Initials)
	setString(&s.UniqueID, p.UniqueID)
	setBool(&s.AgreedToTerms, p.AgreedToTerms)
	setString(&s.MiddleName, p.MiddleName)
	setString(&s.Phone, p.Phone)
	setString(&s.Gender, p.Gender)
	setString(&s.DateOfBirth, p.DateOfBirth)
	setBool(&s.Disability, p.Disability)
	setString(&s.DisabilityType, p.DisabilityType)
	setString(&s.PhotoURL, p.PhotoURL)
	setString(&s.EducationalLevel, p.EducationalLevel)
	setString(&s.ReferralName, p.ReferralName)
	setString(&s.SecondaryEmail, p.SecondaryEmail)
	setString(&s.SecurityQuestion, p.SecurityQuestion)
	setString(&s.SecurityAnswer, p.SecurityAnswer)
	setBool(&s.VerifiedEmail, p.VerifiedEmail)
	setBool(&s.VerifyPhoneNumber, p.VerifyPhoneNumber)
	setBool(&s.TwoFactorSettings, p.TwoFactorSettings)
	setString(&s.StreetNumber, p.StreetNumber)
	setString(&s.StreetName, p.StreetName)
	setString(&s.City, p.City)
	setString(&s.State, p.State)
	setString(&s.Country, p.Country)
	return s
}

// Fields returns the remote field paths touched by the patch, relative to
// user.primaryInformation. Keys match the firestore tags on UserState.
// Password fields are local-only and never included.
func (p UserPatch) Fields() map[string]any {
	m := make(map[string]any)
	put := func(key string, v any, set bool) {
		if set {
			m[key] = v
		}
	}
	put("firstName", deref(p.FirstName), p.FirstName != nil)
	put("lastName", deref(p.LastName), p.LastName != nil)
	put("email", deref(p.Email), p.Email != nil)
	put("isLoggedIn", derefBool(p.IsLoggedIn), p.IsLoggedIn != nil)
	put("initials", deref(p.Initials), p.Initials != nil)
	put("uniqueId", deref(p.UniqueID), p.UniqueID != nil)
	put("agreedToTerms", derefBool(p.AgreedToTerms), p.AgreedToTerms != nil)
	put("middleName", deref(p.MiddleName), p.MiddleName != nil)
	put("phone", deref(p.Phone), p.Phone != nil)
	put("gender", deref(p.Gender), p.Gender != nil)
	put("dateOfBirth", deref(p.DateOfBirth), p.DateOfBirth != nil)
	put("disability", derefBool(p.Disability), p.Disability != nil)
	put("disabilityType", deref(p.DisabilityType), p.DisabilityType != nil)
	put("photoUrl", deref(p.PhotoURL), p.PhotoURL != nil)
	put("educationalLevel", deref(p.EducationalLevel), p.EducationalLevel != nil)
	put("referralName", deref(p.ReferralName), p.ReferralName != nil)
	put("secondaryEmail", deref(p.SecondaryEmail), p.SecondaryEmail != nil)
	put("securityQuestion", deref(p.SecurityQuestion), p.SecurityQuestion != nil)
	put("securityAnswer", deref(p.SecurityAnswer), p.SecurityAnswer != nil)
	put("verifiedEmail", derefBool(p.VerifiedEmail), p.VerifiedEmail != nil)
	put("verifyPhoneNumber", derefBool(p.VerifyPhoneNumber), p.VerifyPhoneNumber != nil)
	put("twoFactorSettings", derefBool(p.TwoFactorSettings), p.TwoFactorSettings != nil)
	put("streetNumber", deref(p.StreetNumber), p.StreetNumber != nil)
	put("streetName", deref(p.StreetName), p.StreetName != nil)
	put("city", deref(p.City), p.City != nil)
	put("state", deref(p.State), p.State != nil)
	put("country", deref(p.Country), p.Country != nil)
	return m
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// AsPatch converts a full profile record into a patch setting every remote
// field, the shape dispatched after a confirmed read. The password pair is
// excluded: it never appears in the stored primaryInformation, so a merge
// leaves whatever the slice already holds.
func (s UserState) AsPatch() UserPatch {
	return UserPatch{
		FirstName:         &s.FirstName,
		LastName:          &s.LastName,
		Email:             &s.Email,
		IsLoggedIn:        &s.IsLoggedIn,
		Initials:          &s.Initials,
		UniqueID:          &s.UniqueID,
		AgreedToTerms:     &s.AgreedToTerms,
		MiddleName:        &s.MiddleName,
		Phone:             &s.Phone,
		Gender:            &s.Gender,
		DateOfBirth:       &s.DateOfBirth,
		Disability:        &s.Disability,
		DisabilityType:    &s.DisabilityType,
		PhotoURL:          &s.PhotoURL,
		EducationalLevel:  &s.EducationalLevel,
		ReferralName:      &s.ReferralName,
		SecondaryEmail:    &s.SecondaryEmail,
		SecurityQuestion:  &s.SecurityQuestion,
		SecurityAnswer:    &s.SecurityAnswer,
		VerifiedEmail:     &s.VerifiedEmail,
		VerifyPhoneNumber: &s.VerifyPhoneNumber,
		TwoFactorSettings: &s.TwoFactorSettings,
		StreetNumber:      &s.StreetNumber,
		StreetName:        &s.StreetName,
		City:              &s.City,
		State:             &s.State,
		Country:           &s.Country,
	}
}

// StringPtr and BoolPtr are small helpers for building patches.
func StringPtr(s string) *string { return &s }

func BoolPtr(b bool) *bool { return &b }
