package ports

import (
	"context"
	"time"
)

// PosterUpload is an in-memory buffered poster image.
type PosterUpload struct {
	Data        []byte
	ContentType string
}

// CreateAuditionInput carries all fields for a new posting.
type CreateAuditionInput struct {
	UserID string

	ProjectTitle      string
	ProductionCompany string
	Category          string
	MediaType         string
	AuditionType      string
	DirectorName      string

	RoleName        string
	Gender          string
	AgeRange        string
	Language        string
	Skills          []string
	ExperienceLevel string
	RoleDescription string

	ShootLocation       string
	AuditionLocation    string
	ShootDates          string
	AuditionDate        time.Time
	AuditionTime        string
	ApplicationDeadline time.Time

	ContactName   string
	ContactNumber string
	ContactEmail  string
	Compensation  string

	Poster *PosterUpload
}

// UpdateAuditionInput carries a partial update; empty fields are unchanged.
type UpdateAuditionInput struct {
	ProjectTitle      string
	ProductionCompany string
	Category          string
	MediaType         string
	AuditionType      string
	DirectorName      string

	RoleName        string
	Gender          string
	AgeRange        string
	Language        string
	Skills          []string
	ExperienceLevel string
	RoleDescription string

	ShootLocation       string
	AuditionLocation    string
	ShootDates          string
	AuditionDate        *time.Time
	AuditionTime        string
	ApplicationDeadline *time.Time

	ContactName   string
	ContactNumber string
	ContactEmail  string
	Compensation  string

	Poster *PosterUpload
}

// AuditionView is the client-facing posting, poster rendered as a data URL.
type AuditionView struct {
	ID     string
	UserID string

	ProjectTitle      string
	ProductionCompany string
	Category          string
	MediaType         string
	AuditionType      string
	DirectorName      string

	RoleName        string
	Gender          string
	AgeRange        string
	Language        string
	Skills          []string
	ExperienceLevel string
	RoleDescription string

	ShootLocation       string
	AuditionLocation    string
	ShootDates          string
	AuditionDate        time.Time
	AuditionTime        string
	ApplicationDeadline time.Time

	ContactName   string
	ContactNumber string
	ContactEmail  string
	Compensation  string

	Status string
	Poster string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AuditionService exposes CRUD over audition postings.
type AuditionService interface {
	Create(ctx context.Context, input CreateAuditionInput) (*AuditionView, error)
	GetAll(ctx context.Context) ([]*AuditionView, error)
	GetByID(ctx context.Context, id string) (*AuditionView, error)
	GetByUserID(ctx context.Context, userID string) ([]*AuditionView, error)
	Update(ctx context.Context, id string, input UpdateAuditionInput) (*AuditionView, error)
	Delete(ctx context.Context, id string) error
}
