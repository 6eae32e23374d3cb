package validation

import (
	"testing"

	"github.com/hymavathi2704/thekatha-server/internal/app/models"
)

const today = "2025-01-15"

func validDraft() OfferingDraft {
	return OfferingDraft{
		Title:    "Career Clarity Call",
		Duration: "60",
		Price:    "100",
		Format:   "online",
	}
}

func TestValidateOfferingDraftPriceRule(t *testing.T) {
	testCases := []struct {
		price     string
		wantValid bool
	}{
		{"100", true},
		{"10", true},
		{"1000", true},
		{"105", false},
		{"0", false},
		{"-10", false},
		{"99.5", false},
		{"abc", false},
	}

	for _, tc := range testCases {
		d := validDraft()
		d.Price = tc.price
		got := ValidateOfferingDraft(d, today)
		if got.Valid != tc.wantValid {
			t.Errorf("price %q: got valid=%v, want %v (firstError=%q)", tc.price, got.Valid, tc.wantValid, got.FirstError)
		}
		if !tc.wantValid && got.FirstError != MsgOfferingPriceRule {
			t.Errorf("price %q: got error %q, want %q", tc.price, got.FirstError, MsgOfferingPriceRule)
		}
	}
}

func TestValidateOfferingDraftDurationRule(t *testing.T) {
	testCases := []struct {
		duration  string
		wantValid bool
	}{
		{"30", true},
		{"60", true},
		{"90", true},
		{"45", false},
		{"0", false},
		{"-30", false},
		{"sixty", false},
	}

	for _, tc := range testCases {
		d := validDraft()
		d.Duration = tc.duration
		got := ValidateOfferingDraft(d, today)
		if got.Valid != tc.wantValid {
			t.Errorf("duration %q: got valid=%v, want %v (firstError=%q)", tc.duration, got.Valid, tc.wantValid, got.FirstError)
		}
		if !tc.wantValid && got.FirstError != MsgOfferingDurationRule {
			t.Errorf("duration %q: got error %q, want %q", tc.duration, got.FirstError, MsgOfferingDurationRule)
		}
	}
}

func TestValidateOfferingDraftPastDateRule(t *testing.T) {
	testCases := []struct {
		date      string
		wantValid bool
	}{
		{"2025-01-14", false},
		{"2024-12-31", false},
		{"2025-01-15", true},
		{"2025-01-16", true},
		{"", true},
	}

	for _, tc := range testCases {
		d := validDraft()
		d.DefaultDate = tc.date
		got := ValidateOfferingDraft(d, today)
		if got.Valid != tc.wantValid {
			t.Errorf("date %q: got valid=%v, want %v (firstError=%q)", tc.date, got.Valid, tc.wantValid, got.FirstError)
		}
		if !tc.wantValid && got.FirstError != MsgOfferingPastDate {
			t.Errorf("date %q: got error %q, want %q", tc.date, got.FirstError, MsgOfferingPastDate)
		}
	}
}

func TestValidateOfferingDraftRequiredFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*OfferingDraft)
	}{
		{"missing title", func(d *OfferingDraft) { d.Title = "" }},
		{"whitespace title", func(d *OfferingDraft) { d.Title = "   " }},
		{"missing duration", func(d *OfferingDraft) { d.Duration = "" }},
		{"missing price", func(d *OfferingDraft) { d.Price = "" }},
		{"all missing", func(d *OfferingDraft) { d.Title = ""; d.Duration = ""; d.Price = "" }},
	}

	for _, tc := range testCases {
		d := validDraft()
		tc.mutate(&d)
		got := ValidateOfferingDraft(d, today)
		if got.Valid {
			t.Errorf("%s: draft unexpectedly valid", tc.name)
		}
		if got.FirstError != MsgOfferingRequiredFields {
			t.Errorf("%s: got error %q, want %q", tc.name, got.FirstError, MsgOfferingRequiredFields)
		}
	}
}

// A draft with both a missing title and an invalid price must report the
// missing-fields message: rule order is observable.
func TestValidateOfferingDraftFirstErrorWins(t *testing.T) {
	d := validDraft()
	d.Title = ""
	d.Price = "105"
	got := ValidateOfferingDraft(d, today)
	if got.FirstError != MsgOfferingRequiredFields {
		t.Errorf("got error %q, want %q", got.FirstError, MsgOfferingRequiredFields)
	}

	d = validDraft()
	d.Price = "105"
	d.Duration = "45"
	got = ValidateOfferingDraft(d, today)
	if got.FirstError != MsgOfferingPriceRule {
		t.Errorf("got error %q, want %q", got.FirstError, MsgOfferingPriceRule)
	}
}

func TestValidateOfferingTyped(t *testing.T) {
	date := "2025-01-14"
	testCases := []struct {
		name     string
		offering models.SessionOffering
		wantMsg  string
	}{
		{
			name:     "valid",
			offering: models.SessionOffering{Title: "Intro Call", DurationMinutes: 30, Price: 50, Format: models.FormatOnline},
			wantMsg:  "",
		},
		{
			name:     "missing title",
			offering: models.SessionOffering{DurationMinutes: 30, Price: 50},
			wantMsg:  MsgOfferingRequiredFields,
		},
		{
			name:     "bad price",
			offering: models.SessionOffering{Title: "Intro Call", DurationMinutes: 30, Price: 55},
			wantMsg:  MsgOfferingPriceRule,
		},
		{
			name:     "bad duration",
			offering: models.SessionOffering{Title: "Intro Call", DurationMinutes: 40, Price: 50},
			wantMsg:  MsgOfferingDurationRule,
		},
		{
			name:     "past date",
			offering: models.SessionOffering{Title: "Intro Call", DurationMinutes: 30, Price: 50, DefaultDate: &date},
			wantMsg:  MsgOfferingPastDate,
		},
		{
			name:     "unknown format",
			offering: models.SessionOffering{Title: "Intro Call", DurationMinutes: 30, Price: 50, Format: "webinar"},
			wantMsg:  "Session format is not recognized.",
		},
	}

	for _, tc := range testCases {
		o := tc.offering
		err := ValidateOffering(&o, today)
		if tc.wantMsg == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected error %q, got nil", tc.name, tc.wantMsg)
			continue
		}
		if err.Error() != tc.wantMsg {
			t.Errorf("%s: got error %q, want %q", tc.name, err.Error(), tc.wantMsg)
		}
	}
}
