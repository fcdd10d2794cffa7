package ports

import "context"

// Profile is the sanitized user view returned to clients: no password, no OTP
// material, picture rendered as a data URL and date of birth as YYYY-MM-DD.
type Profile struct {
	ID            string
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	AccountType   string
	IsVerified    bool
	IsGoogleUser  bool
	Newsletter    bool
	Gender        string
	Location      string
	DateOfBirth   string
	ContactNumber string
	AboutMe       string
	Website       string
	Career        string
	Experience    string
	ProfilePic    string
}

// PictureUpload is an in-memory buffered image from a multipart form.
type PictureUpload struct {
	Data        []byte
	ContentType string
}

// UpdateProfileInput carries the optional profile fields; empty strings mean
// "leave unchanged", matching the partial-update contract of the endpoint.
type UpdateProfileInput struct {
	UserID        string
	FirstName     string
	LastName      string
	UserName      string
	Email         string
	Gender        string
	Location      string
	DateOfBirth   string
	ContactNumber string
	AboutMe       string
	Website       string
	Career        string
	Experience    string
	Picture       *PictureUpload
}

// ProfileService exposes profile reads and partial updates.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*Profile, error)
}
