package domain

import (
	"errors"
	"time"
)

// AccountType classifies what a user does on the platform.
type AccountType string

const (
	AccountPerformer       AccountType = "performer"
	AccountCastingDirector AccountType = "casting-director"
	AccountAgent           AccountType = "agent"
	AccountProducer        AccountType = "producer"
)

// Valid reports whether the account type is one of the known values.
func (a AccountType) Valid() bool {
	switch a {
	case AccountPerformer, AccountCastingDirector, AccountAgent, AccountProducer:
		return true
	}
	return false
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrInvalidCredentials covers both "no such account" and "wrong password" so a
// caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrGoogleAccount = errors.New("please login with Google")
var ErrAlreadyVerified = errors.New("user already verified")
var ErrOTPNotIssued = errors.New("no verification code pending, request a new one")
var ErrOTPExpired = errors.New("verification code expired, request a new one")
var ErrOTPMismatch = errors.New("invalid verification code")
var ErrResendCooldown = errors.New("a verification code was sent recently, wait before requesting another")
var ErrMissingFields = errors.New("missing required fields")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrWeakPassword = errors.New("password must be 8-20 characters with at least one uppercase letter, one lowercase letter, one digit and one of !@#$%&*")
var ErrInvalidAccountType = errors.New("invalid account type")
var ErrInvalidAssertion = errors.New("invalid google token")
var ErrIssuerUnreachable = errors.New("google userinfo endpoint unreachable")
var ErrIdentityUnverified = errors.New("google email not verified")

// VerificationRequiredError is returned when credentials check out but the
// account never completed OTP verification. It carries enough identity for the
// client to route straight to the code-entry screen.
type VerificationRequiredError struct {
	UserID string
	Email  string
}

func (e *VerificationRequiredError) Error() string {
	return "please verify your email before logging in"
}

// ProfilePicture is an image stored inline on the user document.
type ProfilePicture struct {
	Data        []byte
	ContentType string
}

// User is the account aggregate. PasswordHash is empty exactly when the account
// was created through Google; OTPHash/OTPExpires are set as a pair while a
// verification code is pending and cleared together on success.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	AccountType  AccountType
	IsGoogleUser bool
	IsVerified   bool
	Newsletter   bool
	OTPHash      string
	OTPExpires   *time.Time

	// Profile extension fields, mutated only through profile updates.
	UserName      string
	Gender        string
	Location      string
	DateOfBirth   *time.Time
	ContactNumber string
	AboutMe       string
	Website       string
	Career        string
	Experience    string
	ProfilePic    *ProfilePicture

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingOTP reports whether a verification code is currently stored.
func (u *User) HasPendingOTP() bool {
	return u.OTPHash != "" && u.OTPExpires != nil
}

// ClearOTP removes the pending code pair.
func (u *User) ClearOTP() {
	u.OTPHash = ""
	u.OTPExpires = nil
}
