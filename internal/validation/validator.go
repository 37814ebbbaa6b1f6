// Package validation decides whether a round-trip booking request satisfies
// the passenger, seating, date and airport rules. Rules run in a fixed order
// and the first violation is reported.
package validation

import (
	"time"

	"github.com/Domenick1991/bookingcheck/internal/domain"
)

// Clock returns the current instant.
type Clock func() time.Time

type Validator struct {
	now      Clock
	location *time.Location
	rules    []Rule
}

type Option func(*Validator)

func WithClock(c Clock) Option {
	return func(v *Validator) {
		if c != nil {
			v.now = c
		}
	}
}

// WithLocation sets the zone in which "today" is determined.
func WithLocation(loc *time.Location) Option {
	return func(v *Validator) {
		if loc != nil {
			v.location = loc
		}
	}
}

// WithReferenceDate pins "today" to d.
func WithReferenceDate(d Date) Option {
	return func(v *Validator) {
		v.now = func() time.Time { return d.Time() }
		v.location = time.UTC
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		now:      time.Now,
		location: time.Local,
		rules:    defaultRules,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Today reads the clock once and returns the current calendar day.
func (v *Validator) Today() Date {
	return DateOf(v.now().In(v.location))
}

func (v *Validator) Validate(req domain.BookingRequest) domain.Decision {
	return v.ValidateOn(req, v.Today())
}

// ValidateOn validates req with today as the reference date for the
// departure-in-the-past check.
func (v *Validator) ValidateOn(req domain.BookingRequest, today Date) domain.Decision {
	e := &evaluation{req: req, today: today}
	for _, r := range v.rules {
		if rejection := r.Apply(e); rejection != nil {
			return domain.Rejected(rejection.Code, rejection.Reason)
		}
	}
	return domain.Accepted()
}
