// Package editor implements the coach-facing session-offering editor. It
// keeps a local mirror of the coach's offerings and stages all edits in
// private drafts, so nothing the user types is visible in the list until a
// save round-trips through the API.
package editor

import (
	"context"
	"errors"
	"strconv"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/app/models/dto"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/helpers"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/validation"
)

// State is the editor's lifecycle state
type State int

const (
	// StateIdle means no edit is in progress
	StateIdle State = iota
	// StateEditing means one offering is staged in the edit draft
	StateEditing
	// StateSaving means a save is in flight
	StateSaving
)

// Editor errors
var (
	ErrEditInProgress     = errors.New("another offering is already being edited")
	ErrNotEditing         = errors.New("no offering is being edited")
	ErrSaveInProgress     = errors.New("a save is already in flight")
	ErrDeleteNotConfirmed = errors.New("delete was not confirmed")
)

// OfferingAPI is the slice of the API client the editor needs
type OfferingAPI interface {
	FetchMyProfile(ctx context.Context) (*models.CoachProfile, error)
	CreateOffering(ctx context.Context, req *dto.OfferingRequest) (*models.SessionOffering, error)
	UpdateOffering(ctx context.Context, offeringID int64, req *dto.OfferingRequest) (*models.SessionOffering, error)
	DeleteOffering(ctx context.Context, offeringID int64) error
}

// Editor orchestrates session-offering CRUD against the API. It is not safe
// for concurrent use; it models a single user's editing session.
type Editor struct {
	api OfferingAPI

	state     State
	offerings []*models.SessionOffering

	editingID int64
	editDraft validation.OfferingDraft

	// The create draft deliberately survives cancels and reopenings. It is
	// cleared only by a successful create.
	createDraft validation.OfferingDraft

	today func() string
}

// New creates an editor backed by api
func New(api OfferingAPI) *Editor {
	return &Editor{
		api:   api,
		state: StateIdle,
		today: helpers.DateStamp,
	}
}

// State returns the current lifecycle state
func (e *Editor) State() State {
	return e.state
}

// Offerings returns the local mirror of the coach's offerings
func (e *Editor) Offerings() []*models.SessionOffering {
	return e.offerings
}

// EditingID returns the ID of the offering staged for editing or mid-save,
// or zero when the editor is idle. During StateSaving it identifies the
// record a renderer should show as a saving placeholder.
func (e *Editor) EditingID() int64 {
	if e.state == StateIdle {
		return 0
	}
	return e.editingID
}

// Refresh replaces the local offering list with the server's state. The list
// is swapped wholesale, never merged.
func (e *Editor) Refresh(ctx context.Context) error {
	profile, err := e.api.FetchMyProfile(ctx)
	if err != nil {
		return err
	}
	e.offerings = profile.Offerings
	return nil
}

// BeginEdit stages a private copy of the offering for editing. Only one
// offering can be edited at a time; starting a second edit is refused until
// the first is saved or cancelled.
func (e *Editor) BeginEdit(offeringID int64) error {
	if e.state != StateIdle {
		return ErrEditInProgress
	}

	offering := e.find(offeringID)
	if offering == nil {
		return apperrors.ErrOfferingNotFound
	}

	e.editDraft = draftFromOffering(offering)
	e.editingID = offeringID
	e.state = StateEditing
	return nil
}

// EditDraft returns the staged edit draft for mutation. Changes to it never
// touch the offering list until SaveEdit succeeds.
func (e *Editor) EditDraft() *validation.OfferingDraft {
	return &e.editDraft
}

// CancelEdit discards the staged draft and returns to idle. Cancelling when
// nothing is being edited is a no-op, so double-cancel is safe.
func (e *Editor) CancelEdit() {
	if e.state != StateEditing {
		return
	}
	e.editDraft = validation.OfferingDraft{}
	e.editingID = 0
	e.state = StateIdle
}

// SaveEdit validates the draft and persists it. The edit closes
// optimistically: the draft is applied to the local list before the API
// call, and rolled back, with the edit reopened and the draft intact, if the
// call fails.
func (e *Editor) SaveEdit(ctx context.Context) error {
	switch e.state {
	case StateIdle:
		return ErrNotEditing
	case StateSaving:
		return ErrSaveInProgress
	}

	result := validation.ValidateOfferingDraft(e.editDraft, e.today())
	if !result.Valid {
		// Stay in the edit so the user can correct the field
		return apperrors.NewValidationError(result.FirstError)
	}

	savedID := e.editingID
	savedDraft := e.editDraft
	previous := e.find(savedID)

	// Optimistic close: show the result immediately. editingID stays set so
	// the in-flight record remains identifiable until the save resolves.
	e.apply(savedID, offeringFromDraft(savedID, savedDraft))
	e.editDraft = validation.OfferingDraft{}
	e.state = StateSaving

	_, err := e.api.UpdateOffering(ctx, savedID, requestFromDraft(savedDraft))
	if err != nil {
		// Roll back and reopen the edit with the draft intact
		if previous != nil {
			e.apply(savedID, previous)
		}
		e.editDraft = savedDraft
		e.state = StateEditing
		return err
	}

	e.editingID = 0
	e.state = StateIdle
	return e.Refresh(ctx)
}

// CreateDraft returns the persistent create draft for mutation
func (e *Editor) CreateDraft() *validation.OfferingDraft {
	return &e.createDraft
}

// Create validates the create draft and persists a new offering. The draft
// is cleared only when the server accepts it.
func (e *Editor) Create(ctx context.Context) error {
	if e.state != StateIdle {
		return ErrEditInProgress
	}

	result := validation.ValidateOfferingDraft(e.createDraft, e.today())
	if !result.Valid {
		return apperrors.NewValidationError(result.FirstError)
	}

	if _, err := e.api.CreateOffering(ctx, requestFromDraft(e.createDraft)); err != nil {
		return err
	}

	e.createDraft = validation.OfferingDraft{}
	return e.Refresh(ctx)
}

// Delete removes an offering after an explicit confirmation
func (e *Editor) Delete(ctx context.Context, offeringID int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if e.state != StateIdle && e.editingID == offeringID {
		return ErrEditInProgress
	}

	if err := e.api.DeleteOffering(ctx, offeringID); err != nil {
		return err
	}

	return e.Refresh(ctx)
}

func (e *Editor) find(offeringID int64) *models.SessionOffering {
	for _, offering := range e.offerings {
		if offering.ID == offeringID {
			return offering
		}
	}
	return nil
}

func (e *Editor) apply(offeringID int64, replacement *models.SessionOffering) {
	for i, offering := range e.offerings {
		if offering.ID == offeringID {
			e.offerings[i] = replacement
			return
		}
	}
}

// draftFromOffering stages an offering as an all-string form draft
func draftFromOffering(o *models.SessionOffering) validation.OfferingDraft {
	return validation.OfferingDraft{
		Title:       o.Title,
		Description: o.Description,
		Duration:    strconv.Itoa(o.DurationMinutes),
		Price:       strconv.Itoa(o.Price),
		Format:      string(o.Format),
		DefaultDate: helpers.StringValue(o.DefaultDate),
		DefaultTime: helpers.StringValue(o.DefaultTime),
		MeetingLink: helpers.StringValue(o.MeetingLink),
	}
}

// offeringFromDraft builds the optimistic local record from a validated
// draft. Numeric fields have already passed validation.
func offeringFromDraft(id int64, d validation.OfferingDraft) *models.SessionOffering {
	duration, _ := strconv.Atoi(d.Duration)
	price, _ := strconv.Atoi(d.Price)

	o := &models.SessionOffering{
		ID:              id,
		Title:           d.Title,
		Description:     d.Description,
		DurationMinutes: duration,
		Price:           price,
		Format:          models.OfferingFormat(d.Format),
	}
	o.DefaultDate = helpers.StringPtr(d.DefaultDate)
	o.DefaultTime = helpers.StringPtr(d.DefaultTime)
	o.MeetingLink = helpers.StringPtr(d.MeetingLink)
	return o
}

// requestFromDraft converts a validated draft into the API request body
func requestFromDraft(d validation.OfferingDraft) *dto.OfferingRequest {
	duration, _ := strconv.Atoi(d.Duration)
	price, _ := strconv.Atoi(d.Price)

	return &dto.OfferingRequest{
		Title:       d.Title,
		Description: d.Description,
		Duration:    duration,
		Price:       price,
		Format:      d.Format,
		DefaultDate: d.DefaultDate,
		DefaultTime: d.DefaultTime,
		MeetingLink: d.MeetingLink,
	}
}
