package validation

import (
	"strconv"
	"strings"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
	"github.com/hymavathi2704/thekatha-server/internal/pkg/apperrors"
)

// Messages surfaced to users when an offering rule fails. The first failing
// rule wins; rules never accumulate.
const (
	MsgOfferingRequiredFields = "Session Name, Duration, and Price are required."
	MsgOfferingPriceRule      = "Price must be a positive whole number and a multiple of 10."
	MsgOfferingDurationRule   = "Duration must be a positive number of minutes and a multiple of 30."
	MsgOfferingPastDate       = "Session date cannot be in the past."
)

// OfferingDraft is a form-staged candidate offering. Numeric fields are kept
// as strings so a form can bind keystrokes directly; they are only coerced to
// numbers once validation passes.
type OfferingDraft struct {
	Title       string
	Description string
	Duration    string
	Price       string
	Format      string
	DefaultDate string
	DefaultTime string
	MeetingLink string
}

// OfferingResult is the outcome of validating a draft. FirstError is empty
// when Valid is true.
type OfferingResult struct {
	Valid      bool
	FirstError string
}

// ValidateOfferingDraft checks a staged draft against the offering business
// rules. today must be a YYYY-MM-DD snapshot; the past-date rule compares
// date strings lexically against it.
//
// Checks run in a fixed order and stop at the first failure:
//  1. title, duration and price are present
//  2. price is a positive integer multiple of 10
//  3. duration is a positive integer multiple of 30
//  4. defaultDate, when set, is not before today
//
// defaultTime and meetingLink are intentionally not checked here; see the
// product notes on the pairing and URL-format gaps.
func ValidateOfferingDraft(d OfferingDraft, today string) OfferingResult {
	if strings.TrimSpace(d.Title) == "" ||
		strings.TrimSpace(d.Duration) == "" ||
		strings.TrimSpace(d.Price) == "" {
		return OfferingResult{FirstError: MsgOfferingRequiredFields}
	}

	price, err := strconv.Atoi(strings.TrimSpace(d.Price))
	if err != nil || !priceOK(price) {
		return OfferingResult{FirstError: MsgOfferingPriceRule}
	}

	duration, err := strconv.Atoi(strings.TrimSpace(d.Duration))
	if err != nil || !durationOK(duration) {
		return OfferingResult{FirstError: MsgOfferingDurationRule}
	}

	if d.DefaultDate != "" && d.DefaultDate < today {
		return OfferingResult{FirstError: MsgOfferingPastDate}
	}

	return OfferingResult{Valid: true}
}

// ValidateOffering applies the same rules to an already-typed offering. The
// server runs this before any write so the API holds the same invariants the
// editor enforces client-side.
func ValidateOffering(o *models.SessionOffering, today string) error {
	if o == nil {
		return apperrors.NewValidationError(MsgOfferingRequiredFields)
	}
	if strings.TrimSpace(o.Title) == "" || o.DurationMinutes == 0 || o.Price == 0 {
		return apperrors.NewValidationError(MsgOfferingRequiredFields)
	}
	if !priceOK(o.Price) {
		return apperrors.NewValidationError(MsgOfferingPriceRule)
	}
	if !durationOK(o.DurationMinutes) {
		return apperrors.NewValidationError(MsgOfferingDurationRule)
	}
	if o.DefaultDate != nil && *o.DefaultDate != "" && *o.DefaultDate < today {
		return apperrors.NewValidationError(MsgOfferingPastDate)
	}
	if o.Format != "" && !o.Format.IsValid() {
		return apperrors.NewValidationError("Session format is not recognized.")
	}
	return nil
}

func priceOK(price int) bool {
	return price > 0 && price%10 == 0
}

func durationOK(minutes int) bool {
	return minutes > 0 && minutes%30 == 0
}
