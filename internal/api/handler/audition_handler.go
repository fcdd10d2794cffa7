package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/castingdesk/casting-api/internal/api/metrics"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

type AuditionHandler struct {
	auditionService ports.AuditionService
}

func NewAuditionHandler(auditionService ports.AuditionService) *AuditionHandler {
	return &AuditionHandler{auditionService: auditionService}
}

// Create publishes a new audition posting from a multipart form.
//
// @Summary      Create an audition posting
// @Tags         auditions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  auditionResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/create-audition [post]
func (h *AuditionHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createAuditionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	auditionDate, err := time.Parse(dateLayout, req.AuditionDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "auditionDate must be YYYY-MM-DD")
	}
	deadline, err := time.Parse(dateLayout, req.ApplicationDeadline)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "applicationDeadline must be YYYY-MM-DD")
	}

	input := ports.CreateAuditionInput{
		UserID:              userID,
		ProjectTitle:        req.ProjectTitle,
		ProductionCompany:   req.ProductionCompany,
		Category:            req.Category,
		MediaType:           req.MediaType,
		AuditionType:        req.AuditionType,
		DirectorName:        req.DirectorName,
		RoleName:            req.RoleName,
		Gender:              req.Gender,
		AgeRange:            req.AgeRange,
		Language:            req.Language,
		Skills:              splitSkills(req.Skills),
		ExperienceLevel:     req.ExperienceLevel,
		RoleDescription:     req.RoleDescription,
		ShootLocation:       req.ShootLocation,
		AuditionLocation:    req.AuditionLocation,
		ShootDates:          req.ShootDates,
		AuditionDate:        auditionDate,
		AuditionTime:        req.AuditionTime,
		ApplicationDeadline: deadline,
		ContactName:         req.ContactName,
		ContactNumber:       req.ContactNumber,
		ContactEmail:        req.ContactEmail,
		Compensation:        req.Compensation,
	}

	if file, err := c.FormFile("poster"); err == nil {
		data, contentType, err := readUpload(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded poster")
		}
		input.Poster = &ports.PosterUpload{Data: data, ContentType: contentType}
	}

	view, err := h.auditionService.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.AuditionsCreatedTotal.WithLabelValues(view.Category).Inc()
	return c.JSON(http.StatusCreated, toAuditionResponse(view))
}

// GetAll lists every posting.
//
// @Summary      List all audition postings
// @Tags         auditions
// @Produce      json
// @Success      200  {array}  auditionResponse
// @Router       /api/get-all [get]
func (h *AuditionHandler) GetAll(c echo.Context) error {
	views, err := h.auditionService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditionResponses(views))
}

// GetByID fetches one posting.
//
// @Summary      Get an audition posting by id
// @Tags         auditions
// @Produce      json
// @Success      200  {object}  auditionResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/get-all/{id} [get]
func (h *AuditionHandler) GetByID(c echo.Context) error {
	view, err := h.auditionService.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditionResponse(view))
}

// GetByUser lists the postings of one user.
//
// @Summary      List a user's audition postings
// @Tags         auditions
// @Produce      json
// @Success      200  {array}   auditionResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/get-all-user/{userId} [get]
func (h *AuditionHandler) GetByUser(c echo.Context) error {
	views, err := h.auditionService.GetByUserID(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditionResponses(views))
}

// Update applies a partial update to a posting.
//
// @Summary      Update an audition posting
// @Tags         auditions
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auditionResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/update-audi/{id} [put]
func (h *AuditionHandler) Update(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	var req updateAuditionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateAuditionInput{
		ProjectTitle:      req.ProjectTitle,
		ProductionCompany: req.ProductionCompany,
		Category:          req.Category,
		MediaType:         req.MediaType,
		AuditionType:      req.AuditionType,
		DirectorName:      req.DirectorName,
		RoleName:          req.RoleName,
		Gender:            req.Gender,
		AgeRange:          req.AgeRange,
		Language:          req.Language,
		Skills:            splitSkills(req.Skills),
		ExperienceLevel:   req.ExperienceLevel,
		RoleDescription:   req.RoleDescription,
		ShootLocation:     req.ShootLocation,
		AuditionLocation:  req.AuditionLocation,
		ShootDates:        req.ShootDates,
		AuditionTime:      req.AuditionTime,
		ContactName:       req.ContactName,
		ContactNumber:     req.ContactNumber,
		ContactEmail:      req.ContactEmail,
		Compensation:      req.Compensation,
	}

	if req.AuditionDate != "" {
		d, err := time.Parse(dateLayout, req.AuditionDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "auditionDate must be YYYY-MM-DD")
		}
		input.AuditionDate = &d
	}
	if req.ApplicationDeadline != "" {
		d, err := time.Parse(dateLayout, req.ApplicationDeadline)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "applicationDeadline must be YYYY-MM-DD")
		}
		input.ApplicationDeadline = &d
	}

	if file, err := c.FormFile("poster"); err == nil {
		data, contentType, err := readUpload(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded poster")
		}
		input.Poster = &ports.PosterUpload{Data: data, ContentType: contentType}
	}

	view, err := h.auditionService.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditionResponse(view))
}

// Delete removes a posting.
//
// @Summary      Delete an audition posting
// @Tags         auditions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/delete-audi/{id} [delete]
func (h *AuditionHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.auditionService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Audition deleted successfully"})
}
