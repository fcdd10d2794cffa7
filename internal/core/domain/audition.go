package domain

import (
	"errors"
	"time"
)

// AuditionStatus is the moderation state of a posting. Nothing in the API
// changes it yet; postings are created pending and surfaced as-is.
type AuditionStatus string

const (
	AuditionPending  AuditionStatus = "pending"
	AuditionApproved AuditionStatus = "approved"
	AuditionRejected AuditionStatus = "rejected"
)

var ErrAuditionNotFound = errors.New("audition not found")
var ErrNoAuditionsForUser = errors.New("no auditions found for this user")

// AuditionCategories et al. are the closed vocabularies a posting must use.
var AuditionCategories = []string{"Acting", "Modeling", "Voice Acting", "Music"}
var AuditionMediaTypes = []string{"Movie", "TV Series", "Commercial", "Fashion Show", "Musical Theater", "Web Series"}
var AuditionTypes = []string{"Open", "Selective", "Remote", "Live", "Callback"}
var AuditionGenders = []string{"Male", "Female", "Any"}
var AuditionExperienceLevels = []string{"Beginner", "Intermediate", "Professional"}

// Poster is an optional image stored inline on the audition document.
type Poster struct {
	Data        []byte
	ContentType string
}

// Audition is a casting call posted by a user.
type Audition struct {
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

	Status AuditionStatus
	Poster *Poster

	CreatedAt time.Time
	UpdatedAt time.Time
}
