package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/helpers"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

// offeringStore is the slice of the offering repository this service needs
type offeringStore interface {
	Create(ctx context.Context, offering *models.SessionOffering) error
	GetByID(ctx context.Context, id int64) (*models.SessionOffering, error)
	ListByCoachID(ctx context.Context, coachID int64) ([]*models.SessionOffering, error)
	Update(ctx context.Context, offering *models.SessionOffering) error
	Delete(ctx context.Context, id int64) error
}

// coachResolver resolves the coach profile owned by a user
type coachResolver interface {
	GetByUserID(ctx context.Context, userID int64) (*models.CoachProfile, error)
}

// OfferingService handles session-offering operations. Every mutation runs
// the offering rules first, then checks that the acting user owns the
// offering's coach profile.
type OfferingService struct {
	offeringRepo offeringStore
	coachRepo    coachResolver
	logger       zerolog.Logger
	today        func() string
}

// NewOfferingService creates a new offering service instance
func NewOfferingService(offeringRepo offeringStore, coachRepo coachResolver, logger zerolog.Logger) *OfferingService {
	return &OfferingService{
		offeringRepo: offeringRepo,
		coachRepo:    coachRepo,
		logger:       logger,
		today:        helpers.DateStamp,
	}
}

func (s *OfferingService) resolveCoach(ctx context.Context, userID int64) (*models.CoachProfile, error) {
	coach, err := s.coachRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCoachNotFound) {
			return nil, apperrors.ErrNotACoach
		}
		return nil, fmt.Errorf("error resolving coach profile: %w", err)
	}
	return coach, nil
}

// ListForUser retrieves all offerings owned by the user's coach profile
func (s *OfferingService) ListForUser(ctx context.Context, userID int64) ([]*models.SessionOffering, error) {
	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return nil, err
	}

	offerings, err := s.offeringRepo.ListByCoachID(ctx, coach.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing offerings: %w", err)
	}
	return offerings, nil
}

// Create validates and persists a new offering for the user's coach profile
func (s *OfferingService) Create(ctx context.Context, userID int64, offering *models.SessionOffering) (*models.SessionOffering, error) {
	if err := validation.ValidateOffering(offering, s.today()); err != nil {
		return nil, err
	}

	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return nil, err
	}

	offering.CoachID = coach.ID
	if offering.Format == "" {
		offering.Format = models.FormatIndividual
	}

	if err := s.offeringRepo.Create(ctx, offering); err != nil {
		return nil, fmt.Errorf("error creating offering: %w", err)
	}

	s.logger.Info().Int64("offeringID", offering.ID).Int64("coachID", coach.ID).Msg("Session offering created")
	return offering, nil
}

// Update validates and replaces an existing offering. The offering must
// belong to the user's coach profile.
func (s *OfferingService) Update(ctx context.Context, userID, offeringID int64, offering *models.SessionOffering) (*models.SessionOffering, error) {
	if err := validation.ValidateOffering(offering, s.today()); err != nil {
		return nil, err
	}

	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if existing.CoachID != coach.ID {
		return nil, apperrors.ErrNotOfferingOwner
	}

	offering.ID = offeringID
	offering.CoachID = coach.ID
	if offering.Format == "" {
		offering.Format = existing.Format
	}

	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, fmt.Errorf("error updating offering: %w", err)
	}

	s.logger.Info().Int64("offeringID", offeringID).Int64("coachID", coach.ID).Msg("Session offering updated")
	return offering, nil
}

// Delete removes an offering owned by the user's coach profile
func (s *OfferingService) Delete(ctx context.Context, userID, offeringID int64) error {
	coach, err := s.resolveCoach(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := s.offeringRepo.GetByID(ctx, offeringID)
	if err != nil {
		return err
	}
	if existing.CoachID != coach.ID {
		return apperrors.ErrNotOfferingOwner
	}

	if err := s.offeringRepo.Delete(ctx, offeringID); err != nil {
		return fmt.Errorf("error deleting offering: %w", err)
	}

	s.logger.Info().Int64("offeringID", offeringID).Int64("coachID", coach.ID).Msg("Session offering deleted")
	return nil
}
