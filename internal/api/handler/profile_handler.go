package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/castingdesk/casting-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// updateProfileRequest binds the multipart form fields; the picture itself is
// read separately via FormFile.
type updateProfileRequest struct {
	FirstName     string `form:"firstName"`
	LastName      string `form:"lastName"`
	UserName      string `form:"userName"`
	Email         string `form:"email"`
	Gender        string `form:"gender"`
	Location      string `form:"location"`
	DateOfBirth   string `form:"dateOfBirth"`
	ContactNumber string `form:"contactNumber"`
	AboutMe       string `form:"aboutMe"`
	Website       string `form:"website"`
	Career        string `form:"career"`
	Experience    string `form:"experience"`
}

type profileResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName,omitempty"`
	Email         string `json:"email"`
	AccountType   string `json:"accountType"`
	IsVerified    bool   `json:"isVerified"`
	IsGoogleUser  bool   `json:"isGoogleUser"`
	Newsletter    bool   `json:"newsletter"`
	Gender        string `json:"gender,omitempty"`
	Location      string `json:"location,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	AboutMe       string `json:"aboutMe,omitempty"`
	Website       string `json:"website,omitempty"`
	Career        string `json:"career,omitempty"`
	Experience    string `json:"experience,omitempty"`
	ProfilePic    string `json:"profilePic,omitempty"`
}

func toProfileResponse(p *ports.Profile) *profileResponse {
	return &profileResponse{
		ID:            p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		UserName:      p.UserName,
		Email:         p.Email,
		AccountType:   p.AccountType,
		IsVerified:    p.IsVerified,
		IsGoogleUser:  p.IsGoogleUser,
		Newsletter:    p.Newsletter,
		Gender:        p.Gender,
		Location:      p.Location,
		DateOfBirth:   p.DateOfBirth,
		ContactNumber: p.ContactNumber,
		AboutMe:       p.AboutMe,
		Website:       p.Website,
		Career:        p.Career,
		Experience:    p.Experience,
		ProfilePic:    p.ProfilePic,
	}
}

// GetDetails returns the authenticated user's profile.
//
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/user/get-details [get]
func (h *ProfileHandler) GetDetails(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// UpdateProfile applies a partial profile update from a multipart form.
//
// @Summary      Update the authenticated user's profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/user/update-profile [post]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	input := ports.UpdateProfileInput{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		UserName:      req.UserName,
		Email:         req.Email,
		Gender:        req.Gender,
		Location:      req.Location,
		DateOfBirth:   req.DateOfBirth,
		ContactNumber: req.ContactNumber,
		AboutMe:       req.AboutMe,
		Website:       req.Website,
		Career:        req.Career,
		Experience:    req.Experience,
	}

	if file, err := c.FormFile("profilePic"); err == nil {
		data, contentType, err := readUpload(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded picture")
		}
		input.Picture = &ports.PictureUpload{Data: data, ContentType: contentType}
	}

	profile, err := h.profileService.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// readUpload buffers a multipart file in memory, the same way the profile and
// poster images are stored.
func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}
