package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/app/repositories"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/filestorage"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/helpers"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

const profilePhotoDir = "profile-photos"

// CoachService handles coach directory and profile operations
type CoachService struct {
	coachRepo    *repositories.CoachRepository
	offeringRepo *repositories.OfferingRepository
	userRepo     *repositories.UserRepository
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewCoachService creates a new CoachService
func NewCoachService(
	coachRepo *repositories.CoachRepository,
	offeringRepo *repositories.OfferingRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *CoachService {
	return &CoachService{
		coachRepo:    coachRepo,
		offeringRepo: offeringRepo,
		userRepo:     userRepo,
		storage:      storage,
		logger:       logger,
	}
}

// ListCoaches returns a page of marketplace coach listings
func (s *CoachService) ListCoaches(ctx context.Context, page, pageSize int) ([]*dto.CoachSummary, *dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	coaches, err := s.coachRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.coachRepo.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	summaries := make([]*dto.CoachSummary, 0, len(coaches))
	for _, coach := range coaches {
		count, err := s.offeringRepo.CountByCoachID(ctx, coach.ID)
		if err != nil {
			return nil, nil, err
		}

		summary := &dto.CoachSummary{
			ID:            coach.ID,
			Headline:      coach.Headline,
			OfferingCount: int(count),
		}
		if coach.User != nil {
			summary.FirstName = coach.User.FirstName
			summary.LastName = coach.User.LastName
			summary.ProfilePhotoURL = coach.User.ProfilePhotoURL
		}
		summaries = append(summaries, summary)
	}

	pagination := helpers.NewPaginationInfo(total, page, pageSize)
	return summaries, &pagination, nil
}

// GetCoach retrieves a coach profile by ID with its offerings attached
func (s *CoachService) GetCoach(ctx context.Context, coachID int64) (*models.CoachProfile, error) {
	coach, err := s.coachRepo.GetByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	return s.attachOfferings(ctx, coach)
}

// GetProfileForUser retrieves the coach profile owned by the user, with
// offerings attached
func (s *CoachService) GetProfileForUser(ctx context.Context, userID int64) (*models.CoachProfile, error) {
	coach, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachOfferings(ctx, coach)
}

func (s *CoachService) attachOfferings(ctx context.Context, coach *models.CoachProfile) (*models.CoachProfile, error) {
	offerings, err := s.offeringRepo.ListByCoachID(ctx, coach.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading coach offerings: %w", err)
	}
	coach.Offerings = offerings
	return coach, nil
}

// UpdateProfile updates the editable fields of the user's coach profile
func (s *CoachService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateCoachProfileRequest) (*models.CoachProfile, error) {
	if req.Website != "" && !validation.IsValidWebsite(req.Website) {
		return nil, apperrors.NewValidationError("website must be a valid http(s) URL")
	}

	coach, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	coach.Headline = req.Headline
	coach.Bio = req.Bio
	coach.Website = helpers.StringPtr(req.Website)

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("coachID", coach.ID).Msg("Coach profile updated")
	return s.attachOfferings(ctx, coach)
}

// UploadProfilePhoto stores a new profile photo for the user and records its
// URL. The previous photo file, if any, is removed.
func (s *CoachService) UploadProfilePhoto(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	photoURL, err := s.storage.SaveFileWithPath(fileHeader, profilePhotoDir)
	if err != nil {
		return "", fmt.Errorf("error saving profile photo: %w", err)
	}

	if err := s.userRepo.UpdateProfilePhotoURL(ctx, userID, &photoURL); err != nil {
		return "", err
	}

	if user.ProfilePhotoURL != nil {
		if err := s.storage.DeleteFile(*user.ProfilePhotoURL); err != nil {
			s.logger.Warn().Err(err).Int64("userID", userID).Msg("Could not delete previous profile photo")
		}
	}

	s.logger.Info().Int64("userID", userID).Str("photoURL", photoURL).Msg("Profile photo updated")
	return photoURL, nil
}
