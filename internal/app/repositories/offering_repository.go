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
)

// OfferingRepository handles database operations for session offerings
type OfferingRepository struct {
	db *pgxpool.Pool
}

// NewOfferingRepository creates a new offering repository
func NewOfferingRepository(db *pgxpool.Pool) *OfferingRepository {
	return &OfferingRepository{db: db}
}

const offeringColumns = `id, coach_id, title, description, duration_minutes, price, format,
	default_date, default_time, meeting_link, created_at, updated_at`

func scanOffering(row pgx.Row) (*models.SessionOffering, error) {
	var o models.SessionOffering
	err := row.Scan(
		&o.ID,
		&o.CoachID,
		&o.Title,
		&o.Description,
		&o.DurationMinutes,
		&o.Price,
		&o.Format,
		&o.DefaultDate,
		&o.DefaultTime,
		&o.MeetingLink,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create creates a new session offering and sets its generated ID
func (r *OfferingRepository) Create(ctx context.Context, offering *models.SessionOffering) error {
	query := `
		INSERT INTO session_offerings
			(coach_id, title, description, duration_minutes, price, format,
			 default_date, default_time, meeting_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		offering.CoachID,
		offering.Title,
		offering.Description,
		offering.DurationMinutes,
		offering.Price,
		offering.Format,
		offering.DefaultDate,
		offering.DefaultTime,
		offering.MeetingLink,
		now,
	).Scan(&offering.ID)
	if err != nil {
		return fmt.Errorf("error creating session offering: %w", err)
	}

	offering.CreatedAt = now
	offering.UpdatedAt = now
	return nil
}

// GetByID retrieves a session offering by ID
func (r *OfferingRepository) GetByID(ctx context.Context, id int64) (*models.SessionOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM session_offerings WHERE id = $1`

	offering, err := scanOffering(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error retrieving session offering: %w", err)
	}

	return offering, nil
}

// ListByCoachID retrieves all offerings of a coach, oldest first, so the
// rendered list order is stable across refetches
func (r *OfferingRepository) ListByCoachID(ctx context.Context, coachID int64) ([]*models.SessionOffering, error) {
	query := `SELECT ` + offeringColumns + ` FROM session_offerings WHERE coach_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, coachID)
	if err != nil {
		return nil, fmt.Errorf("error listing session offerings: %w", err)
	}
	defer rows.Close()

	var offerings []*models.SessionOffering
	for rows.Next() {
		offering, err := scanOffering(rows)
		if err != nil {
			return nil, err
		}
		offerings = append(offerings, offering)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offerings, nil
}

// CountByCoachID returns the number of offerings owned by a coach
func (r *OfferingRepository) CountByCoachID(ctx context.Context, coachID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM session_offerings WHERE coach_id = $1`, coachID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting session offerings: %w", err)
	}
	return count, nil
}

// Update replaces the editable fields of an offering
func (r *OfferingRepository) Update(ctx context.Context, offering *models.SessionOffering) error {
	query := `
		UPDATE session_offerings
		SET title = $1, description = $2, duration_minutes = $3, price = $4, format = $5,
		    default_date = $6, default_time = $7, meeting_link = $8, updated_at = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		offering.Title,
		offering.Description,
		offering.DurationMinutes,
		offering.Price,
		offering.Format,
		offering.DefaultDate,
		offering.DefaultTime,
		offering.MeetingLink,
		time.Now(),
		offering.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating session offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}

// Delete removes a session offering by ID
func (r *OfferingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM session_offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting session offering: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}

	return nil
}
