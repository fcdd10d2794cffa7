package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/castingdesk/casting-api/internal/core/domain"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

// ProfileService implements profile reads and partial updates.
type ProfileService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(user), nil
}

// UpdateProfile applies only the provided fields, mirroring the endpoint's
// partial-update contract. A new picture replaces the stored one wholesale.
func (s *ProfileService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*ports.Profile, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.UserName != "" {
		user.UserName = input.UserName
	}
	if input.Email != "" {
		user.Email = normalizeEmail(input.Email)
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", domain.ErrMissingFields)
		}
		user.DateOfBirth = &dob
	}
	if input.ContactNumber != "" {
		user.ContactNumber = input.ContactNumber
	}
	if input.AboutMe != "" {
		user.AboutMe = input.AboutMe
	}
	if input.Website != "" {
		user.Website = input.Website
	}
	if input.Career != "" {
		user.Career = input.Career
	}
	if input.Experience != "" {
		user.Experience = input.Experience
	}
	if input.Picture != nil {
		user.ProfilePic = &domain.ProfilePicture{
			Data:        input.Picture.Data,
			ContentType: input.Picture.ContentType,
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("profile updated")
	return toProfile(user), nil
}

// toProfile strips credentials and OTP material and renders the binary and
// date fields the way clients consume them.
func toProfile(user *domain.User) *ports.Profile {
	p := &ports.Profile{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		UserName:      user.UserName,
		Email:         user.Email,
		AccountType:   string(user.AccountType),
		IsVerified:    user.IsVerified,
		IsGoogleUser:  user.IsGoogleUser,
		Newsletter:    user.Newsletter,
		Gender:        user.Gender,
		Location:      user.Location,
		ContactNumber: user.ContactNumber,
		AboutMe:       user.AboutMe,
		Website:       user.Website,
		Career:        user.Career,
		Experience:    user.Experience,
	}
	if user.DateOfBirth != nil {
		p.DateOfBirth = user.DateOfBirth.UTC().Format("2006-01-02")
	}
	if user.ProfilePic != nil && len(user.ProfilePic.Data) > 0 {
		p.ProfilePic = dataURL(user.ProfilePic.ContentType, user.ProfilePic.Data)
	}
	return p
}

func dataURL(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
