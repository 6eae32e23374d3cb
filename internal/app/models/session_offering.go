package models

import "time"

// OfferingFormat defines the delivery format of a session offering
type OfferingFormat string

const (
	FormatIndividual OfferingFormat = "individual"
	FormatGroup      OfferingFormat = "group"
	FormatWorkshop   OfferingFormat = "workshop"
	FormatOnline     OfferingFormat = "online"
	FormatInPerson   OfferingFormat = "in-person"
)

// IsValid reports whether the format is part of the closed enumeration.
func (f OfferingFormat) IsValid() bool {
	switch f {
	case FormatIndividual, FormatGroup, FormatWorkshop, FormatOnline, FormatInPerson:
		return true
	}
	return false
}

// SessionOffering defines a coach's bookable service template based on the
// 'session_offerings' table. An offering is distinct from a scheduled booking:
// it is the template (title, price, duration, format) a client books against.
//
// DefaultDate is kept as a YYYY-MM-DD string and DefaultTime as HH:MM; the
// past-date rule compares date strings lexically against a snapshot of today.
type SessionOffering struct {
	ID              int64          `json:"id" db:"id" example:"42"`
	CoachID         int64          `json:"coachId" db:"coach_id" example:"7"`
	Title           string         `json:"title" db:"title" example:"Career Clarity Call"`
	Description     string         `json:"description" db:"description"`
	DurationMinutes int            `json:"duration" db:"duration_minutes" example:"60"`
	Price           int            `json:"price" db:"price" example:"100"`
	Format          OfferingFormat `json:"type" db:"format" example:"online"`
	DefaultDate     *string        `json:"defaultDate,omitempty" db:"default_date" example:"2025-06-01"`
	DefaultTime     *string        `json:"defaultTime,omitempty" db:"default_time" example:"14:30"`
	MeetingLink     *string        `json:"meetingLink,omitempty" db:"meeting_link"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time      `json:"updatedAt" db:"updated_at"`
}
