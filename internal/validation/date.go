package validation

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the only accepted date format (DD/MM/YYYY).
const DateLayout = "02/01/2006"

var datePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Date is a calendar day without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

// DateError reports text that is not a real calendar date in DD/MM/YYYY form.
type DateError struct {
	Text string
	Err  error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("Invalid date: %s. Ensure format is DD/MM/YYYY and the date is valid.", e.Text)
}

func (e *DateError) Unwrap() error {
	return e.Err
}

// ParseDate parses s strictly: exactly two-digit day, two-digit month and
// four-digit year separated by '/', and the day must exist in that month.
// Nothing is rolled over, so 31/04/2025 is an error rather than 01/05/2025.
func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, &DateError{Text: s}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &DateError{Text: s, Err: err}
	}
	return DateOf(t), nil
}
