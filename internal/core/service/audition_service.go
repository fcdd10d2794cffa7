package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

// AuditionService implements CRUD over audition postings.
type AuditionService struct {
	repo   ports.AuditionRepository
	logger zerolog.Logger
}

func NewAuditionService(repo ports.AuditionRepository, logger zerolog.Logger) *AuditionService {
	return &AuditionService{repo: repo, logger: logger}
}

func (s *AuditionService) Create(ctx context.Context, input ports.CreateAuditionInput) (*ports.AuditionView, error) {
	if input.UserID == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.Skills) == 0 {
		return nil, fmt.Errorf("%w: at least one skill is required", domain.ErrMissingFields)
	}

	now := time.Now().UTC()
	audition := &domain.Audition{
		UserID:              input.UserID,
		ProjectTitle:        input.ProjectTitle,
		ProductionCompany:   input.ProductionCompany,
		Category:            input.Category,
		MediaType:           input.MediaType,
		AuditionType:        input.AuditionType,
		DirectorName:        input.DirectorName,
		RoleName:            input.RoleName,
		Gender:              input.Gender,
		AgeRange:            input.AgeRange,
		Language:            input.Language,
		Skills:              input.Skills,
		ExperienceLevel:     input.ExperienceLevel,
		RoleDescription:     input.RoleDescription,
		ShootLocation:       input.ShootLocation,
		AuditionLocation:    input.AuditionLocation,
		ShootDates:          input.ShootDates,
		AuditionDate:        input.AuditionDate,
		AuditionTime:        input.AuditionTime,
		ApplicationDeadline: input.ApplicationDeadline,
		ContactName:         input.ContactName,
		ContactNumber:       input.ContactNumber,
		ContactEmail:        normalizeEmail(input.ContactEmail),
		Compensation:        input.Compensation,
		Status:              domain.AuditionPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Poster != nil {
		audition.Poster = &domain.Poster{
			Data:        input.Poster.Data,
			ContentType: input.Poster.ContentType,
		}
	}

	created, err := s.repo.Create(ctx, audition)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create audition")
		return nil, err
	}

	s.logger.Info().Str("audition_id", created.ID).Str("user_id", created.UserID).Str("category", created.Category).Msg("audition created")
	return toAuditionView(created), nil
}

func (s *AuditionService) GetAll(ctx context.Context) ([]*ports.AuditionView, error) {
	auditions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAuditionViews(auditions), nil
}

func (s *AuditionService) GetByID(ctx context.Context, id string) (*ports.AuditionView, error) {
	audition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuditionView(audition), nil
}

// GetByUserID returns the postings of one user; an empty result is reported
// as not-found, which is what the listing page expects.
func (s *AuditionService) GetByUserID(ctx context.Context, userID string) ([]*ports.AuditionView, error) {
	auditions, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(auditions) == 0 {
		return nil, domain.ErrNoAuditionsForUser
	}
	return toAuditionViews(auditions), nil
}

// Update applies only the provided fields and replaces the poster when a new
// one is uploaded.
func (s *AuditionService) Update(ctx context.Context, id string, input ports.UpdateAuditionInput) (*ports.AuditionView, error) {
	audition, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProjectTitle != "" {
		audition.ProjectTitle = input.ProjectTitle
	}
	if input.ProductionCompany != "" {
		audition.ProductionCompany = input.ProductionCompany
	}
	if input.Category != "" {
		audition.Category = input.Category
	}
	if input.MediaType != "" {
		audition.MediaType = input.MediaType
	}
	if input.AuditionType != "" {
		audition.AuditionType = input.AuditionType
	}
	if input.DirectorName != "" {
		audition.DirectorName = input.DirectorName
	}
	if input.RoleName != "" {
		audition.RoleName = input.RoleName
	}
	if input.Gender != "" {
		audition.Gender = input.Gender
	}
	if input.AgeRange != "" {
		audition.AgeRange = input.AgeRange
	}
	if input.Language != "" {
		audition.Language = input.Language
	}
	if len(input.Skills) > 0 {
		audition.Skills = input.Skills
	}
	if input.ExperienceLevel != "" {
		audition.ExperienceLevel = input.ExperienceLevel
	}
	if input.RoleDescription != "" {
		audition.RoleDescription = input.RoleDescription
	}
	if input.ShootLocation != "" {
		audition.ShootLocation = input.ShootLocation
	}
	if input.AuditionLocation != "" {
		audition.AuditionLocation = input.AuditionLocation
	}
	if input.ShootDates != "" {
		audition.ShootDates = input.ShootDates
	}
	if input.AuditionDate != nil {
		audition.AuditionDate = *input.AuditionDate
	}
	if input.AuditionTime != "" {
		audition.AuditionTime = input.AuditionTime
	}
	if input.ApplicationDeadline != nil {
		audition.ApplicationDeadline = *input.ApplicationDeadline
	}
	if input.ContactName != "" {
		audition.ContactName = input.ContactName
	}
	if input.ContactNumber != "" {
		audition.ContactNumber = input.ContactNumber
	}
	if input.ContactEmail != "" {
		audition.ContactEmail = normalizeEmail(input.ContactEmail)
	}
	if input.Compensation != "" {
		audition.Compensation = input.Compensation
	}
	if input.Poster != nil {
		audition.Poster = &domain.Poster{
			Data:        input.Poster.Data,
			ContentType: input.Poster.ContentType,
		}
	}

	audition.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, audition); err != nil {
		return nil, err
	}

	s.logger.Info().Str("audition_id", audition.ID).Msg("audition updated")
	return toAuditionView(audition), nil
}

func (s *AuditionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("audition_id", id).Msg("audition deleted")
	return nil
}

func toAuditionView(a *domain.Audition) *ports.AuditionView {
	v := &ports.AuditionView{
		ID:                  a.ID,
		UserID:              a.UserID,
		ProjectTitle:        a.ProjectTitle,
		ProductionCompany:   a.ProductionCompany,
		Category:            a.Category,
		MediaType:           a.MediaType,
		AuditionType:        a.AuditionType,
		DirectorName:        a.DirectorName,
		RoleName:            a.RoleName,
		Gender:              a.Gender,
		AgeRange:            a.AgeRange,
		Language:            a.Language,
		Skills:              a.Skills,
		ExperienceLevel:     a.ExperienceLevel,
		RoleDescription:     a.RoleDescription,
		ShootLocation:       a.ShootLocation,
		AuditionLocation:    a.AuditionLocation,
		ShootDates:          a.ShootDates,
		AuditionDate:        a.AuditionDate,
		AuditionTime:        a.AuditionTime,
		ApplicationDeadline: a.ApplicationDeadline,
		ContactName:         a.ContactName,
		ContactNumber:       a.ContactNumber,
		ContactEmail:        a.ContactEmail,
		Compensation:        a.Compensation,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
	if a.Poster != nil && len(a.Poster.Data) > 0 {
		v.Poster = dataURL(a.Poster.ContentType, a.Poster.Data)
	}
	return v
}

func toAuditionViews(auditions []*domain.Audition) []*ports.AuditionView {
	views := make([]*ports.AuditionView, 0, len(auditions))
	for _, a := range auditions {
		views = append(views, toAuditionView(a))
	}
	return views
}
