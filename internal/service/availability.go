package service

import (
	"time"

	"cleaning-ops-backend/internal/config"
	"cleaning-ops-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Window is the inclusive range of civil dates a job may be claimed in.
// A zero Start means there is no lower bound.
type Window struct {
	Today time.Time
	Start time.Time
	End   time.Time
}

// WindowResponse is the JSON form of a Window
type WindowResponse struct {
	Today string `json:"today"`
	Start string `json:"start,omitempty"`
	End   string `json:"end"`
}

// Contains reports whether date falls inside the window
func (w Window) Contains(date time.Time) bool {
	d := DateOnly(date)
	if !w.Start.IsZero() && d.Before(w.Start) {
		return false
	}
	return !d.After(w.End)
}

// IsLost reports whether an open job on date can no longer be claimed because its date passed
func (w Window) IsLost(date time.Time) bool {
	return !w.Start.IsZero() && DateOnly(date).Before(w.Start)
}

// IsFuture reports whether date is after today
func (w Window) IsFuture(date time.Time) bool {
	return DateOnly(date).After(w.Today)
}

// Range converts the window into a repository date range
func (w Window) Range() repository.DateRange {
	return repository.DateRange{From: w.Start, To: w.End}
}

// Response renders the window for API clients
func (w Window) Response() WindowResponse {
	resp := WindowResponse{
		Today: w.Today.Format(dateLayout),
		End:   w.End.Format(dateLayout),
	}
	if !w.Start.IsZero() {
		resp.Start = w.Start.Format(dateLayout)
	}
	return resp
}

// AvailabilityPolicy decides how far back and ahead jobs may be claimed
type AvailabilityPolicy struct {
	lookbackDays   int
	horizonDays    int
	allowPastDates bool
	location       *time.Location
}

// NewAvailabilityPolicy creates a policy from explicit settings
func NewAvailabilityPolicy(lookbackDays, horizonDays int, allowPastDates bool, location *time.Location) *AvailabilityPolicy {
	if location == nil {
		location = time.UTC
	}
	return &AvailabilityPolicy{
		lookbackDays:   lookbackDays,
		horizonDays:    horizonDays,
		allowPastDates: allowPastDates,
		location:       location,
	}
}

// NewAvailabilityPolicyFromConfig creates a policy from the CLAIM_* settings
func NewAvailabilityPolicyFromConfig(cfg *config.Config) *AvailabilityPolicy {
	return NewAvailabilityPolicy(cfg.ClaimLookbackDays, cfg.ClaimHorizonDays, cfg.ClaimAllowPastDates, cfg.Location())
}

// WindowFor computes the claim window around the civil date of now in the
// policy's timezone. It has no side effects.
func (p *AvailabilityPolicy) WindowFor(now time.Time) Window {
	today := CivilDate(now, p.location)
	w := Window{
		Today: today,
		Start: today.AddDate(0, 0, -p.lookbackDays),
		End:   today.AddDate(0, 0, p.horizonDays),
	}
	if p.allowPastDates {
		w.Start = time.Time{}
	}
	return w
}

// CivilDate returns the calendar date of t as seen in loc, as UTC midnight
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOnly drops the clock part of a stored date, keeping its calendar fields
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD query value; empty input yields the zero time
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, value, time.UTC)
}
