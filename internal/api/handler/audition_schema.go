package handler

import (
	"strings"
	"time"

	"github.com/castingdesk/casting-api/internal/core/ports"
)

// createAuditionRequest binds the multipart form for a new posting. Multi-word
// enum values are quoted inside the oneof tags so the validator keeps them
// whole.
type createAuditionRequest struct {
	ProjectTitle      string `form:"projectTitle" validate:"required"`
	ProductionCompany string `form:"productionCompany" validate:"required"`
	Category          string `form:"category" validate:"required,oneof=Acting Modeling 'Voice Acting' Music"`
	MediaType         string `form:"mediaType" validate:"required,oneof=Movie 'TV Series' Commercial 'Fashion Show' 'Musical Theater' 'Web Series'"`
	AuditionType      string `form:"auditionType" validate:"required,oneof=Open Selective Remote Live Callback"`
	DirectorName      string `form:"directorName"`

	RoleName        string `form:"roleName" validate:"required"`
	Gender          string `form:"gender" validate:"required,oneof=Male Female Any"`
	AgeRange        string `form:"ageRange" validate:"required"`
	Language        string `form:"language" validate:"required"`
	Skills          string `form:"skills" validate:"required"`
	ExperienceLevel string `form:"experienceLevel" validate:"required,oneof=Beginner Intermediate Professional"`
	RoleDescription string `form:"roleDescription" validate:"required"`

	ShootLocation       string `form:"shootLocation" validate:"required"`
	AuditionLocation    string `form:"auditionLocation" validate:"required"`
	ShootDates          string `form:"shootDates"`
	AuditionDate        string `form:"auditionDate" validate:"required"`
	AuditionTime        string `form:"auditionTime" validate:"required"`
	ApplicationDeadline string `form:"applicationDeadline" validate:"required"`

	ContactName   string `form:"contactName" validate:"required"`
	ContactNumber string `form:"contactNumber" validate:"required"`
	ContactEmail  string `form:"contactEmail" validate:"required,email"`
	Compensation  string `form:"compensation"`
}

// updateAuditionRequest is the same form with every field optional.
type updateAuditionRequest struct {
	ProjectTitle      string `form:"projectTitle"`
	ProductionCompany string `form:"productionCompany"`
	Category          string `form:"category" validate:"omitempty,oneof=Acting Modeling 'Voice Acting' Music"`
	MediaType         string `form:"mediaType" validate:"omitempty,oneof=Movie 'TV Series' Commercial 'Fashion Show' 'Musical Theater' 'Web Series'"`
	AuditionType      string `form:"auditionType" validate:"omitempty,oneof=Open Selective Remote Live Callback"`
	DirectorName      string `form:"directorName"`

	RoleName        string `form:"roleName"`
	Gender          string `form:"gender" validate:"omitempty,oneof=Male Female Any"`
	AgeRange        string `form:"ageRange"`
	Language        string `form:"language"`
	Skills          string `form:"skills"`
	ExperienceLevel string `form:"experienceLevel" validate:"omitempty,oneof=Beginner Intermediate Professional"`
	RoleDescription string `form:"roleDescription"`

	ShootLocation       string `form:"shootLocation"`
	AuditionLocation    string `form:"auditionLocation"`
	ShootDates          string `form:"shootDates"`
	AuditionDate        string `form:"auditionDate"`
	AuditionTime        string `form:"auditionTime"`
	ApplicationDeadline string `form:"applicationDeadline"`

	ContactName   string `form:"contactName"`
	ContactNumber string `form:"contactNumber"`
	ContactEmail  string `form:"contactEmail" validate:"omitempty,email"`
	Compensation  string `form:"compensation"`
}

type auditionResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	ProjectTitle      string `json:"projectTitle"`
	ProductionCompany string `json:"productionCompany"`
	Category          string `json:"category"`
	MediaType         string `json:"mediaType"`
	AuditionType      string `json:"auditionType"`
	DirectorName      string `json:"directorName,omitempty"`

	RoleName        string   `json:"roleName"`
	Gender          string   `json:"gender"`
	AgeRange        string   `json:"ageRange"`
	Language        string   `json:"language"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel"`
	RoleDescription string   `json:"roleDescription"`

	ShootLocation       string    `json:"shootLocation"`
	AuditionLocation    string    `json:"auditionLocation"`
	ShootDates          string    `json:"shootDates,omitempty"`
	AuditionDate        time.Time `json:"auditionDate"`
	AuditionTime        string    `json:"auditionTime"`
	ApplicationDeadline time.Time `json:"applicationDeadline"`

	ContactName   string `json:"contactName"`
	ContactNumber string `json:"contactNumber"`
	ContactEmail  string `json:"contactEmail"`
	Compensation  string `json:"compensation,omitempty"`

	Status string `json:"status"`
	Poster string `json:"poster,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAuditionResponse(v *ports.AuditionView) *auditionResponse {
	return &auditionResponse{
		ID:                  v.ID,
		UserID:              v.UserID,
		ProjectTitle:        v.ProjectTitle,
		ProductionCompany:   v.ProductionCompany,
		Category:            v.Category,
		MediaType:           v.MediaType,
		AuditionType:        v.AuditionType,
		DirectorName:        v.DirectorName,
		RoleName:            v.RoleName,
		Gender:              v.Gender,
		AgeRange:            v.AgeRange,
		Language:            v.Language,
		Skills:              v.Skills,
		ExperienceLevel:     v.ExperienceLevel,
		RoleDescription:     v.RoleDescription,
		ShootLocation:       v.ShootLocation,
		AuditionLocation:    v.AuditionLocation,
		ShootDates:          v.ShootDates,
		AuditionDate:        v.AuditionDate,
		AuditionTime:        v.AuditionTime,
		ApplicationDeadline: v.ApplicationDeadline,
		ContactName:         v.ContactName,
		ContactNumber:       v.ContactNumber,
		ContactEmail:        v.ContactEmail,
		Compensation:        v.Compensation,
		Status:              v.Status,
		Poster:              v.Poster,
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
}

func toAuditionResponses(views []*ports.AuditionView) []*auditionResponse {
	out := make([]*auditionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toAuditionResponse(v))
	}
	return out
}

// splitSkills parses the comma-separated skills form field.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
