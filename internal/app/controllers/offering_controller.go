package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/app/services"
	"github.com/hymavathi2704/thekatha-server/internal/middleware"
)

// OfferingController handles session-offering CRUD for coaches
type OfferingController struct {
	offeringService *services.OfferingService
	logger          zerolog.Logger
}

// NewOfferingController creates a new OfferingController
func NewOfferingController(offeringService *services.OfferingService, logger zerolog.Logger) *OfferingController {
	return &OfferingController{
		offeringService: offeringService,
		logger:          logger,
	}
}

// ListMyOfferings returns the authenticated coach's offerings
// @Summary List own session offerings
// @Description Returns every session offering owned by the authenticated coach
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SessionOffering} "Session offerings"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "User has no coach profile"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [get]
func (c *OfferingController) ListMyOfferings(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	offerings, err := c.offeringService.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(offerings))
}

// CreateOffering creates a new session offering
// @Summary Create session offering
// @Description Validates and creates a new session offering for the authenticated coach
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OfferingRequest true "Session offering"
// @Success 201 {object} dto.APIResponse{data=models.SessionOffering} "Created session offering"
// @Failure 400 {object} dto.ErrorResponse "A session rule failed"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "User has no coach profile"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *OfferingController) CreateOffering(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid offering payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.offeringService.Create(ctx.Request.Context(), userID, req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("offeringID", created.ID).Msg("Session offering created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(created))
}

// UpdateOffering replaces an existing session offering
// @Summary Update session offering
// @Description Validates and replaces a session offering owned by the authenticated coach
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session offering ID"
// @Param request body dto.OfferingRequest true "Session offering"
// @Success 200 {object} dto.APIResponse{data=models.SessionOffering} "Updated session offering"
// @Failure 400 {object} dto.ErrorResponse "A session rule failed or invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Offering belongs to another coach"
// @Failure 404 {object} dto.ErrorResponse "Session offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [put]
func (c *OfferingController) UpdateOffering(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	offeringID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session offering ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.OfferingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid offering payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	updated, err := c.offeringService.Update(ctx.Request.Context(), userID, offeringID, req.ToModel(0))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("offeringID", offeringID).Msg("Session offering updated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(updated))
}

// DeleteOffering removes a session offering
// @Summary Delete session offering
// @Description Deletes a session offering owned by the authenticated coach
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session offering ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Session offering deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid session offering ID"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Offering belongs to another coach"
// @Failure 404 {object} dto.ErrorResponse "Session offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id} [delete]
func (c *OfferingController) DeleteOffering(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	offeringID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session offering ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.offeringService.Delete(ctx.Request.Context(), userID, offeringID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("offeringID", offeringID).Msg("Session offering deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Session offering deleted"}))
}
