package dto

import "github.com/hymavathi2704/thekatha-server/internal/app/models"

// OfferingRequest is the body for creating or updating a session offering.
// It carries no binding tags on purpose: the offering service enforces the
// required-fields, multiple-of and past-date rules, so a missing title or an
// explicit zero duration or price surfaces the exact rule message instead of
// a generic binding error.
type OfferingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Price       int    `json:"price"`
	Format      string `json:"type"`
	DefaultDate string `json:"defaultDate"`
	DefaultTime string `json:"defaultTime"`
	MeetingLink string `json:"meetingLink"`
}

// ToModel converts the request to a SessionOffering owned by coachID.
func (r *OfferingRequest) ToModel(coachID int64) *models.SessionOffering {
	o := &models.SessionOffering{
		CoachID:         coachID,
		Title:           r.Title,
		Description:     r.Description,
		DurationMinutes: r.Duration,
		Price:           r.Price,
		Format:          models.OfferingFormat(r.Format),
	}
	if r.DefaultDate != "" {
		d := r.DefaultDate
		o.DefaultDate = &d
	}
	if r.DefaultTime != "" {
		t := r.DefaultTime
		o.DefaultTime = &t
	}
	if r.MeetingLink != "" {
		l := r.MeetingLink
		o.MeetingLink = &l
	}
	return o
}
