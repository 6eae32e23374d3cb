package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

type fakeOfferingStore struct {
	offerings map[int64]*models.SessionOffering
	nextID    int64
}

func newFakeOfferingStore() *fakeOfferingStore {
	return &fakeOfferingStore{offerings: make(map[int64]*models.SessionOffering), nextID: 1}
}

func (f *fakeOfferingStore) Create(_ context.Context, offering *models.SessionOffering) error {
	offering.ID = f.nextID
	f.nextID++
	copied := *offering
	f.offerings[offering.ID] = &copied
	return nil
}

func (f *fakeOfferingStore) GetByID(_ context.Context, id int64) (*models.SessionOffering, error) {
	offering, ok := f.offerings[id]
	if !ok {
		return nil, apperrors.ErrOfferingNotFound
	}
	copied := *offering
	return &copied, nil
}

func (f *fakeOfferingStore) ListByCoachID(_ context.Context, coachID int64) ([]*models.SessionOffering, error) {
	var result []*models.SessionOffering
	for id := int64(1); id < f.nextID; id++ {
		if offering, ok := f.offerings[id]; ok && offering.CoachID == coachID {
			copied := *offering
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeOfferingStore) Update(_ context.Context, offering *models.SessionOffering) error {
	if _, ok := f.offerings[offering.ID]; !ok {
		return apperrors.ErrOfferingNotFound
	}
	copied := *offering
	f.offerings[offering.ID] = &copied
	return nil
}

func (f *fakeOfferingStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.offerings[id]; !ok {
		return apperrors.ErrOfferingNotFound
	}
	delete(f.offerings, id)
	return nil
}

type fakeCoachResolver struct {
	// userID -> coach profile
	coaches map[int64]*models.CoachProfile
}

func (f *fakeCoachResolver) GetByUserID(_ context.Context, userID int64) (*models.CoachProfile, error) {
	coach, ok := f.coaches[userID]
	if !ok {
		return nil, apperrors.ErrCoachNotFound
	}
	return coach, nil
}

const testToday = "2025-01-15"

func newTestOfferingService(store *fakeOfferingStore) *OfferingService {
	resolver := &fakeCoachResolver{coaches: map[int64]*models.CoachProfile{
		10: {ID: 1, UserID: 10},
		20: {ID: 2, UserID: 20},
	}}
	svc := NewOfferingService(store, resolver, zerolog.Nop())
	svc.today = func() string { return testToday }
	return svc
}

func validOffering() *models.SessionOffering {
	return &models.SessionOffering{
		Title:           "Career Coaching",
		Description:     "One on one career planning",
		DurationMinutes: 60,
		Price:           100,
		Format:          models.FormatIndividual,
	}
}

func TestOfferingServiceCreate(t *testing.T) {
	testCases := []struct {
		name    string
		userID  int64
		mutate  func(*models.SessionOffering)
		wantErr error
		wantMsg string
	}{
		{
			name:   "valid offering is created for the coach",
			userID: 10,
		},
		{
			name:    "missing title fails the required fields rule",
			userID:  10,
			mutate:  func(o *models.SessionOffering) { o.Title = "  " },
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: validation.MsgOfferingRequiredFields,
		},
		{
			name:    "price not a multiple of ten fails",
			userID:  10,
			mutate:  func(o *models.SessionOffering) { o.Price = 95 },
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: validation.MsgOfferingPriceRule,
		},
		{
			name:    "duration not a multiple of thirty fails",
			userID:  10,
			mutate:  func(o *models.SessionOffering) { o.DurationMinutes = 45 },
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: validation.MsgOfferingDurationRule,
		},
		{
			name:   "past default date fails",
			userID: 10,
			mutate: func(o *models.SessionOffering) {
				date := "2025-01-14"
				o.DefaultDate = &date
			},
			wantErr: apperrors.ErrValidationFailed,
			wantMsg: validation.MsgOfferingPastDate,
		},
		{
			name:    "user without a coach profile cannot create",
			userID:  99,
			wantErr: apperrors.ErrNotACoach,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeOfferingStore()
			svc := newTestOfferingService(store)

			offering := validOffering()
			if tc.mutate != nil {
				tc.mutate(offering)
			}

			created, err := svc.Create(context.Background(), tc.userID, offering)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tc.wantErr)
				}
				if tc.wantMsg != "" && err.Error() != tc.wantMsg {
					t.Errorf("Create() message = %q, want %q", err.Error(), tc.wantMsg)
				}
				if len(store.offerings) != 0 {
					t.Errorf("Create() persisted %d offerings on failure, want 0", len(store.offerings))
				}
				return
			}

			if err != nil {
				t.Fatalf("Create() unexpected error: %v", err)
			}
			if created.ID == 0 {
				t.Error("Create() did not assign an ID")
			}
			if created.CoachID != 1 {
				t.Errorf("Create() CoachID = %d, want 1", created.CoachID)
			}
		})
	}
}

func TestOfferingServiceCreateDefaultsFormat(t *testing.T) {
	store := newFakeOfferingStore()
	svc := newTestOfferingService(store)

	offering := validOffering()
	offering.Format = ""

	created, err := svc.Create(context.Background(), 10, offering)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.Format != models.FormatIndividual {
		t.Errorf("Create() Format = %q, want %q", created.Format, models.FormatIndividual)
	}
}

func TestOfferingServiceUpdate(t *testing.T) {
	store := newFakeOfferingStore()
	svc := newTestOfferingService(store)

	seeded, err := svc.Create(context.Background(), 10, validOffering())
	if err != nil {
		t.Fatalf("seed Create() failed: %v", err)
	}

	testCases := []struct {
		name       string
		userID     int64
		offeringID int64
		mutate     func(*models.SessionOffering)
		wantErr    error
	}{
		{
			name:       "owner can update",
			userID:     10,
			offeringID: seeded.ID,
			mutate:     func(o *models.SessionOffering) { o.Title = "Leadership Coaching" },
		},
		{
			name:       "another coach cannot update",
			userID:     20,
			offeringID: seeded.ID,
			wantErr:    apperrors.ErrNotOfferingOwner,
		},
		{
			name:       "unknown offering reports not found",
			userID:     10,
			offeringID: 404,
			wantErr:    apperrors.ErrOfferingNotFound,
		},
		{
			name:       "invalid replacement is rejected before any write",
			userID:     10,
			offeringID: seeded.ID,
			mutate:     func(o *models.SessionOffering) { o.Price = -10 },
			wantErr:    apperrors.ErrValidationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offering := validOffering()
			if tc.mutate != nil {
				tc.mutate(offering)
			}

			updated, err := svc.Update(context.Background(), tc.userID, tc.offeringID, offering)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Update() error = %v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Update() unexpected error: %v", err)
			}
			if updated.ID != tc.offeringID {
				t.Errorf("Update() ID = %d, want %d", updated.ID, tc.offeringID)
			}
			stored, _ := store.GetByID(context.Background(), tc.offeringID)
			if stored.Title != offering.Title {
				t.Errorf("stored Title = %q, want %q", stored.Title, offering.Title)
			}
		})
	}
}

func TestOfferingServiceDelete(t *testing.T) {
	store := newFakeOfferingStore()
	svc := newTestOfferingService(store)

	seeded, err := svc.Create(context.Background(), 10, validOffering())
	if err != nil {
		t.Fatalf("seed Create() failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 20, seeded.ID); !errors.Is(err, apperrors.ErrNotOfferingOwner) {
		t.Fatalf("Delete() by non-owner error = %v, want %v", err, apperrors.ErrNotOfferingOwner)
	}
	if err := svc.Delete(context.Background(), 10, seeded.ID); err != nil {
		t.Fatalf("Delete() by owner failed: %v", err)
	}
	if err := svc.Delete(context.Background(), 10, seeded.ID); !errors.Is(err, apperrors.ErrOfferingNotFound) {
		t.Fatalf("Delete() of removed offering error = %v, want %v", err, apperrors.ErrOfferingNotFound)
	}
}

func TestOfferingServiceListForUser(t *testing.T) {
	store := newFakeOfferingStore()
	svc := newTestOfferingService(store)

	if _, err := svc.Create(context.Background(), 10, validOffering()); err != nil {
		t.Fatalf("seed Create() failed: %v", err)
	}
	second := validOffering()
	second.Title = "Group Workshop"
	if _, err := svc.Create(context.Background(), 20, second); err != nil {
		t.Fatalf("seed Create() failed: %v", err)
	}

	offerings, err := svc.ListForUser(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListForUser() failed: %v", err)
	}
	if len(offerings) != 1 {
		t.Fatalf("ListForUser() returned %d offerings, want 1", len(offerings))
	}
	if offerings[0].Title != "Career Coaching" {
		t.Errorf("ListForUser() Title = %q, want %q", offerings[0].Title, "Career Coaching")
	}

	if _, err := svc.ListForUser(context.Background(), 99); !errors.Is(err, apperrors.ErrNotACoach) {
		t.Fatalf("ListForUser() for non-coach error = %v, want %v", err, apperrors.ErrNotACoach)
	}
}
