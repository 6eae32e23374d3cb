package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/app/services"
	"github.com/hymavathi2704/thekatha-server/internal/middleware"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/helpers"
)

// CoachController handles coach directory and profile operations
type CoachController struct {
	coachService *services.CoachService
	logger       zerolog.Logger
}

// NewCoachController creates a new CoachController
func NewCoachController(coachService *services.CoachService, logger zerolog.Logger) *CoachController {
	return &CoachController{
		coachService: coachService,
		logger:       logger,
	}
}

// ListCoaches returns the marketplace coach directory
// @Summary List coaches
// @Description Returns a paginated directory of active coaches with offering counts
// @Tags coaches
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Coach directory page"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches [get]
func (c *CoachController) ListCoaches(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	coaches, pagination, err := c.coachService.ListCoaches(ctx.Request.Context(), page, size)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list coaches")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      coaches,
		Pagination: *pagination,
	}))
}

// GetCoach returns a single coach profile with its offerings
// @Summary Get coach details
// @Description Returns a coach profile including its session offerings
// @Tags coaches
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} dto.APIResponse{data=models.CoachProfile} "Coach profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid coach ID"
// @Failure 404 {object} dto.ErrorResponse "Coach not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches/{id} [get]
func (c *CoachController) GetCoach(ctx *gin.Context) {
	coachID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid coach ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	coach, err := c.coachService.GetCoach(ctx.Request.Context(), coachID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(coach))
}

// GetMyProfile returns the authenticated coach's own profile
// @Summary Get own coach profile
// @Description Returns the authenticated coach's profile including its session offerings
// @Tags coaches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.CoachProfile} "Coach profile"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Coach profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches/me [get]
func (c *CoachController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	coach, err := c.coachService.GetProfileForUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(coach))
}

// UpdateMyProfile updates the authenticated coach's profile
// @Summary Update own coach profile
// @Description Updates headline, bio and website of the authenticated coach's profile
// @Tags coaches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateCoachProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse{data=models.CoachProfile} "Updated coach profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or invalid website"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Coach profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches/me [put]
func (c *CoachController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateCoachProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	coach, err := c.coachService.UpdateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("coachID", coach.ID).Msg("Coach profile updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(coach))
}

// UploadProfilePhoto uploads a new profile photo for the authenticated user
// @Summary Upload profile photo
// @Description Stores a new profile photo and returns its URL. Replaces any previous photo.
// @Tags coaches
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=map[string]string} "Photo URL"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /coaches/me/profile-photo [post]
func (c *CoachController) UploadProfilePhoto(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing photo file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	photoURL, err := c.coachService.UploadProfilePhoto(ctx.Request.Context(), userID, fileHeader)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Profile photo upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(map[string]string{"photoUrl": photoURL}))
}
