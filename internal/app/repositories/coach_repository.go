package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/dberrors"
)

// CoachRepository handles database operations for coach profiles
type CoachRepository struct {
	db *pgxpool.Pool
}

// NewCoachRepository creates a new coach repository
func NewCoachRepository(db *pgxpool.Pool) *CoachRepository {
	return &CoachRepository{db: db}
}

// Create creates an empty coach profile for a user
func (r *CoachRepository) Create(ctx context.Context, coach *models.CoachProfile) error {
	query := `
		INSERT INTO coach_profiles (user_id, headline, bio, website, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		coach.UserID, coach.Headline, coach.Bio, coach.Website, now,
	).Scan(&coach.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "coach_profiles_user_id_key") {
			return apperrors.ErrCoachAlreadyExists
		}
		return fmt.Errorf("error creating coach profile: %w", err)
	}

	coach.CreatedAt = now
	coach.UpdatedAt = now
	return nil
}

// GetByID retrieves a coach profile by its ID, with user details attached
func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*models.CoachProfile, error) {
	return r.getByField(ctx, "c.id = $1", id)
}

// GetByUserID retrieves the coach profile owned by a user
func (r *CoachRepository) GetByUserID(ctx context.Context, userID int64) (*models.CoachProfile, error) {
	return r.getByField(ctx, "c.user_id = $1", userID)
}

func (r *CoachRepository) getByField(ctx context.Context, where string, arg interface{}) (*models.CoachProfile, error) {
	query := `
		SELECT c.id, c.user_id, c.headline, c.bio, c.website, c.created_at, c.updated_at,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active,
		       u.created_at, u.updated_at, u.last_login_at, u.profile_photo_url
		FROM coach_profiles c
		JOIN users u ON u.id = c.user_id
		WHERE ` + where

	var coach models.CoachProfile
	var user models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.Headline,
		&coach.Bio,
		&coach.Website,
		&coach.CreatedAt,
		&coach.UpdatedAt,
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.RoleType,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
		&user.ProfilePhotoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCoachNotFound
		}
		return nil, fmt.Errorf("error retrieving coach profile: %w", err)
	}

	coach.User = &user
	return &coach, nil
}

// List retrieves a page of coach profiles with user details and offering counts
func (r *CoachRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.CoachProfile, error) {
	query := `
		SELECT c.id, c.user_id, c.headline, c.bio, c.website, c.created_at, c.updated_at,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active,
		       u.created_at, u.updated_at, u.last_login_at, u.profile_photo_url
		FROM coach_profiles c
		JOIN users u ON u.id = c.user_id
		WHERE u.is_active
		ORDER BY c.id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing coach profiles: %w", err)
	}
	defer rows.Close()

	var coaches []*models.CoachProfile
	for rows.Next() {
		var coach models.CoachProfile
		var user models.User
		if err := rows.Scan(
			&coach.ID,
			&coach.UserID,
			&coach.Headline,
			&coach.Bio,
			&coach.Website,
			&coach.CreatedAt,
			&coach.UpdatedAt,
			&user.ID,
			&user.Email,
			&user.FirstName,
			&user.LastName,
			&user.RoleType,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.LastLoginAt,
			&user.ProfilePhotoURL,
		); err != nil {
			return nil, err
		}
		coach.User = &user
		coaches = append(coaches, &coach)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return coaches, nil
}

// Count returns the total number of active coach profiles
func (r *CoachRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM coach_profiles c
		JOIN users u ON u.id = c.user_id
		WHERE u.is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting coach profiles: %w", err)
	}
	return count, nil
}

// Update updates the editable fields of a coach profile
func (r *CoachRepository) Update(ctx context.Context, coach *models.CoachProfile) error {
	query := `
		UPDATE coach_profiles
		SET headline = $1, bio = $2, website = $3, updated_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		coach.Headline, coach.Bio, coach.Website, time.Now(), coach.ID)
	if err != nil {
		return fmt.Errorf("error updating coach profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCoachNotFound
	}
	return nil
}
