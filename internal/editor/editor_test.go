package editor

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

// fakeAPI is an in-memory stand-in for the offering API
type fakeAPI struct {
	offerings map[int64]*models.SessionOffering
	nextID    int64

	failFetch  error
	failUpdate error
	failCreate error
	failDelete error

	// onUpdate runs at the start of UpdateOffering, letting a test observe
	// editor state while a save is in flight
	onUpdate func()

	fetchCalls int
}

func newFakeAPI(seed ...*models.SessionOffering) *fakeAPI {
	api := &fakeAPI{offerings: make(map[int64]*models.SessionOffering), nextID: 1}
	for _, o := range seed {
		copied := *o
		api.offerings[o.ID] = &copied
		if o.ID >= api.nextID {
			api.nextID = o.ID + 1
		}
	}
	return api
}

func (f *fakeAPI) FetchMyProfile(_ context.Context) (*models.CoachProfile, error) {
	f.fetchCalls++
	if f.failFetch != nil {
		return nil, f.failFetch
	}
	profile := &models.CoachProfile{ID: 1}
	for id := int64(1); id < f.nextID; id++ {
		if o, ok := f.offerings[id]; ok {
			copied := *o
			profile.Offerings = append(profile.Offerings, &copied)
		}
	}
	return profile, nil
}

func (f *fakeAPI) CreateOffering(_ context.Context, req *dto.OfferingRequest) (*models.SessionOffering, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	o := req.ToModel(1)
	o.ID = f.nextID
	f.nextID++
	f.offerings[o.ID] = o
	return o, nil
}

func (f *fakeAPI) UpdateOffering(_ context.Context, offeringID int64, req *dto.OfferingRequest) (*models.SessionOffering, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.failUpdate != nil {
		return nil, f.failUpdate
	}
	if _, ok := f.offerings[offeringID]; !ok {
		return nil, &apiNotFound{}
	}
	o := req.ToModel(1)
	o.ID = offeringID
	f.offerings[offeringID] = o
	return o, nil
}

func (f *fakeAPI) DeleteOffering(_ context.Context, offeringID int64) error {
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.offerings[offeringID]; !ok {
		return &apiNotFound{}
	}
	delete(f.offerings, offeringID)
	return nil
}

type apiNotFound struct{}

func (*apiNotFound) Error() string { return "not found" }

const testToday = "2025-01-15"

func seedOffering(id int64, title string) *models.SessionOffering {
	return &models.SessionOffering{
		ID:              id,
		CoachID:         1,
		Title:           title,
		DurationMinutes: 60,
		Price:           100,
		Format:          models.FormatIndividual,
	}
}

func newTestEditor(t *testing.T, api *fakeAPI) *Editor {
	t.Helper()
	e := New(api)
	e.today = func() string { return testToday }
	if err := e.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	return e
}

func TestEditDraftIsPrivateUntilSave(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}

	draft := e.EditDraft()
	draft.Title = "Leadership Coaching"
	draft.Price = "200"

	// The visible list must not change while the draft is being typed into
	if got := e.Offerings()[0].Title; got != "Career Coaching" {
		t.Errorf("list Title = %q while editing, want %q", got, "Career Coaching")
	}

	if err := e.SaveEdit(context.Background()); err != nil {
		t.Fatalf("SaveEdit() failed: %v", err)
	}
	if got := e.Offerings()[0].Title; got != "Leadership Coaching" {
		t.Errorf("list Title = %q after save, want %q", got, "Leadership Coaching")
	}
	if e.State() != StateIdle {
		t.Errorf("State = %v after save, want StateIdle", e.State())
	}
}

func TestSingleEditExclusivity(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "First"), seedOffering(2, "Second"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit(1) failed: %v", err)
	}
	if err := e.BeginEdit(2); !errors.Is(err, ErrEditInProgress) {
		t.Errorf("BeginEdit(2) error = %v, want %v", err, ErrEditInProgress)
	}
	if e.EditingID() != 1 {
		t.Errorf("EditingID = %d, want 1", e.EditingID())
	}

	// After cancelling, the second edit may start
	e.CancelEdit()
	if err := e.BeginEdit(2); err != nil {
		t.Errorf("BeginEdit(2) after cancel failed: %v", err)
	}
}

func TestCancelEditIsIdempotent(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}
	e.EditDraft().Title = "Changed"

	e.CancelEdit()
	e.CancelEdit() // second cancel must be a harmless no-op

	if e.State() != StateIdle {
		t.Errorf("State = %v, want StateIdle", e.State())
	}
	if got := e.Offerings()[0].Title; got != "Career Coaching" {
		t.Errorf("list Title = %q after cancel, want unchanged", got)
	}

	// A fresh edit starts from the record, not the abandoned draft
	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() after cancel failed: %v", err)
	}
	if got := e.EditDraft().Title; got != "Career Coaching" {
		t.Errorf("fresh draft Title = %q, want %q", got, "Career Coaching")
	}
}

func TestSaveEditValidationKeepsEditOpen(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*validation.OfferingDraft)
		wantMsg string
	}{
		{
			name:    "required fields",
			mutate:  func(d *validation.OfferingDraft) { d.Title = "" },
			wantMsg: validation.MsgOfferingRequiredFields,
		},
		{
			name:    "price rule",
			mutate:  func(d *validation.OfferingDraft) { d.Price = "95" },
			wantMsg: validation.MsgOfferingPriceRule,
		},
		{
			name:    "duration rule",
			mutate:  func(d *validation.OfferingDraft) { d.Duration = "45" },
			wantMsg: validation.MsgOfferingDurationRule,
		},
		{
			name:    "past date",
			mutate:  func(d *validation.OfferingDraft) { d.DefaultDate = "2025-01-14" },
			wantMsg: validation.MsgOfferingPastDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI(seedOffering(1, "Career Coaching"))
			e := newTestEditor(t, api)

			if err := e.BeginEdit(1); err != nil {
				t.Fatalf("BeginEdit() failed: %v", err)
			}
			tc.mutate(e.EditDraft())

			err := e.SaveEdit(context.Background())
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("SaveEdit() error = %v, want validation failure", err)
			}
			if err.Error() != tc.wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), tc.wantMsg)
			}
			if e.State() != StateEditing {
				t.Errorf("State = %v after failed validation, want StateEditing", e.State())
			}
		})
	}
}

func TestSaveEditRollsBackOnAPIFailure(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}
	e.EditDraft().Title = "Leadership Coaching"

	api.failUpdate = errors.New("server unavailable")
	err := e.SaveEdit(context.Background())
	if err == nil {
		t.Fatal("SaveEdit() expected error, got nil")
	}

	// The list shows the pre-edit record again
	if got := e.Offerings()[0].Title; got != "Career Coaching" {
		t.Errorf("list Title = %q after rollback, want %q", got, "Career Coaching")
	}
	// The edit reopens with the typed draft intact
	if e.State() != StateEditing {
		t.Errorf("State = %v after rollback, want StateEditing", e.State())
	}
	if got := e.EditDraft().Title; got != "Leadership Coaching" {
		t.Errorf("draft Title = %q after rollback, want %q", got, "Leadership Coaching")
	}

	// Retrying after the API recovers succeeds
	api.failUpdate = nil
	if err := e.SaveEdit(context.Background()); err != nil {
		t.Fatalf("retried SaveEdit() failed: %v", err)
	}
	if got := e.Offerings()[0].Title; got != "Leadership Coaching" {
		t.Errorf("list Title = %q after retry, want %q", got, "Leadership Coaching")
	}
}

func TestEditingIDReportedWhileSaving(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}
	e.EditDraft().Title = "Leadership Coaching"

	var stateDuringSave State
	var idDuringSave int64
	api.onUpdate = func() {
		stateDuringSave = e.State()
		idDuringSave = e.EditingID()
	}

	if err := e.SaveEdit(context.Background()); err != nil {
		t.Fatalf("SaveEdit() failed: %v", err)
	}
	if stateDuringSave != StateSaving {
		t.Errorf("State = %v while save in flight, want StateSaving", stateDuringSave)
	}
	// The mid-save record must stay identifiable so it can be rendered as a
	// saving placeholder
	if idDuringSave != 1 {
		t.Errorf("EditingID = %d while save in flight, want 1", idDuringSave)
	}
	if e.EditingID() != 0 {
		t.Errorf("EditingID = %d after save resolved, want 0", e.EditingID())
	}
}

func TestCreateBlockedWhileEditing(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}

	draft := e.CreateDraft()
	draft.Title = "Group Workshop"
	draft.Duration = "90"
	draft.Price = "150"

	if err := e.Create(context.Background()); !errors.Is(err, ErrEditInProgress) {
		t.Fatalf("Create() during edit error = %v, want %v", err, ErrEditInProgress)
	}
	// The refused create must not reach the server or drop the typed draft
	if len(api.offerings) != 1 {
		t.Errorf("server has %d offerings after refused create, want 1", len(api.offerings))
	}
	if got := e.CreateDraft().Title; got != "Group Workshop" {
		t.Errorf("draft Title = %q after refused create, want retained", got)
	}

	// Once the edit is out of the way the same draft goes through
	e.CancelEdit()
	if err := e.Create(context.Background()); err != nil {
		t.Fatalf("Create() after cancel failed: %v", err)
	}
	if len(e.Offerings()) != 2 {
		t.Errorf("Offerings() len = %d after create, want 2", len(e.Offerings()))
	}
}

func TestCreateDraftSurvivesFailures(t *testing.T) {
	api := newFakeAPI()
	e := newTestEditor(t, api)

	draft := e.CreateDraft()
	draft.Title = "Group Workshop"
	draft.Duration = "90"
	draft.Price = "155"

	err := e.Create(context.Background())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("Create() error = %v, want validation failure", err)
	}
	// Draft keeps what the user typed
	if got := e.CreateDraft().Title; got != "Group Workshop" {
		t.Errorf("draft Title = %q after failed create, want retained", got)
	}

	e.CreateDraft().Price = "150"
	api.failCreate = errors.New("server unavailable")
	if err := e.Create(context.Background()); err == nil {
		t.Fatal("Create() expected API error, got nil")
	}
	if got := e.CreateDraft().Title; got != "Group Workshop" {
		t.Errorf("draft Title = %q after API failure, want retained", got)
	}

	api.failCreate = nil
	if err := e.Create(context.Background()); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	// Only a successful create clears the draft
	if got := *e.CreateDraft(); got != (validation.OfferingDraft{}) {
		t.Errorf("draft = %+v after successful create, want empty", got)
	}
	if len(e.Offerings()) != 1 {
		t.Fatalf("Offerings() len = %d, want 1", len(e.Offerings()))
	}
}

func TestRefreshReplacesListWholesale(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "First"), seedOffering(2, "Second"))
	e := newTestEditor(t, api)

	if len(e.Offerings()) != 2 {
		t.Fatalf("Offerings() len = %d, want 2", len(e.Offerings()))
	}

	// Another session deletes an offering behind our back
	delete(api.offerings, 1)

	if err := e.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	offerings := e.Offerings()
	if len(offerings) != 1 || offerings[0].ID != 2 {
		t.Errorf("Offerings() = %+v, want only ID 2", offerings)
	}
}

func TestRefreshKeepsStaleListOnFailure(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "First"), seedOffering(2, "Second"))
	e := newTestEditor(t, api)

	// The server state changes, then becomes unreachable
	delete(api.offerings, 1)
	api.failFetch = errors.New("server unavailable")

	if err := e.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh() expected error, got nil")
	}
	// The stale list stays renderable rather than being cleared
	if len(e.Offerings()) != 2 {
		t.Fatalf("Offerings() len = %d after failed refresh, want 2", len(e.Offerings()))
	}

	api.failFetch = nil
	if err := e.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() after recovery failed: %v", err)
	}
	offerings := e.Offerings()
	if len(offerings) != 1 || offerings[0].ID != 2 {
		t.Errorf("Offerings() = %+v after recovery, want only ID 2", offerings)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.Delete(context.Background(), 1, false); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("Delete() unconfirmed error = %v, want %v", err, ErrDeleteNotConfirmed)
	}
	if len(e.Offerings()) != 1 {
		t.Errorf("Offerings() len = %d after refused delete, want 1", len(e.Offerings()))
	}

	if err := e.Delete(context.Background(), 1, true); err != nil {
		t.Fatalf("Delete() confirmed failed: %v", err)
	}
	if len(e.Offerings()) != 0 {
		t.Errorf("Offerings() len = %d after delete, want 0", len(e.Offerings()))
	}
}

func TestMutationsRefetchFromServer(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)
	baseline := api.fetchCalls

	draft := e.CreateDraft()
	draft.Title = "Group Workshop"
	draft.Duration = "90"
	draft.Price = "150"
	if err := e.Create(context.Background()); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if api.fetchCalls != baseline+1 {
		t.Errorf("fetchCalls = %d after create, want %d", api.fetchCalls, baseline+1)
	}

	if err := e.Delete(context.Background(), 1, true); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if api.fetchCalls != baseline+2 {
		t.Errorf("fetchCalls = %d after delete, want %d", api.fetchCalls, baseline+2)
	}
}

func TestBeginEditUnknownOffering(t *testing.T) {
	api := newFakeAPI(seedOffering(1, "Career Coaching"))
	e := newTestEditor(t, api)

	if err := e.BeginEdit(99); !errors.Is(err, apperrors.ErrOfferingNotFound) {
		t.Errorf("BeginEdit(99) error = %v, want %v", err, apperrors.ErrOfferingNotFound)
	}
}

func TestDraftStagingRoundTrip(t *testing.T) {
	date := "2025-02-01"
	offering := seedOffering(1, "Career Coaching")
	offering.DefaultDate = &date

	api := newFakeAPI(offering)
	e := newTestEditor(t, api)

	if err := e.BeginEdit(1); err != nil {
		t.Fatalf("BeginEdit() failed: %v", err)
	}

	draft := e.EditDraft()
	if draft.Duration != strconv.Itoa(offering.DurationMinutes) {
		t.Errorf("draft Duration = %q, want %q", draft.Duration, "60")
	}
	if draft.DefaultDate != date {
		t.Errorf("draft DefaultDate = %q, want %q", draft.DefaultDate, date)
	}
}
