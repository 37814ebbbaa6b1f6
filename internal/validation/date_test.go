package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Valid(t *testing.T) {
	testCases := []struct {
		input    string
		expected Date
	}{
		{"20/10/2025", Date{Year: 2025, Month: time.October, Day: 20}},
		{"29/02/2024", Date{Year: 2024, Month: time.February, Day: 29}},
		{"31/12/2025", Date{Year: 2025, Month: time.December, Day: 31}},
		{"01/01/2026", Date{Year: 2026, Month: time.January, Day: 1}},
		{"30/04/2025", Date{Year: 2025, Month: time.April, Day: 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, d)
			assert.Equal(t, tc.input, d.String())
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"April has 30 days", "31/04/2025"},
		{"not a leap year", "29/02/2025"},
		{"February 30", "30/02/2024"},
		{"day zero", "00/10/2025"},
		{"month zero", "10/00/2025"},
		{"month 13", "10/13/2025"},
		{"day 32", "32/01/2025"},
		{"single digit day", "1/10/2025"},
		{"single digit month", "10/1/2025"},
		{"two digit year", "10/10/25"},
		{"ISO format", "2025-10-20"},
		{"dash separator", "20-10-2025"},
		{"trailing space", "20/10/2025 "},
		{"leading space", " 20/10/2025"},
		{"letters", "aa/bb/cccc"},
		{"empty", ""},
		{"five digit year", "20/10/20255"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDate(tc.input)
			require.Error(t, err)

			var dateErr *DateError
			require.True(t, errors.As(err, &dateErr))
			assert.Equal(t, tc.input, dateErr.Text)
			assert.Equal(t,
				"Invalid date: "+tc.input+". Ensure format is DD/MM/YYYY and the date is valid.",
				err.Error())
		})
	}
}

func TestDate_Before(t *testing.T) {
	a := Date{Year: 2025, Month: time.October, Day: 20}

	assert.True(t, a.Before(Date{Year: 2025, Month: time.October, Day: 21}))
	assert.True(t, a.Before(Date{Year: 2025, Month: time.November, Day: 1}))
	assert.True(t, a.Before(Date{Year: 2026, Month: time.January, Day: 1}))
	assert.False(t, a.Before(a))
	assert.False(t, a.Before(Date{Year: 2025, Month: time.October, Day: 19}))
	assert.False(t, a.Before(Date{Year: 2024, Month: time.December, Day: 31}))
}

func TestDateOf_UsesLocation(t *testing.T) {
	// 23:30 UTC on 19 Oct is already 20 Oct in Sydney.
	instant := time.Date(2025, time.October, 19, 23, 30, 0, 0, time.UTC)
	sydney := time.FixedZone("AEDT", 11*60*60)

	assert.Equal(t, Date{Year: 2025, Month: time.October, Day: 19}, DateOf(instant))
	assert.Equal(t, Date{Year: 2025, Month: time.October, Day: 20}, DateOf(instant.In(sydney)))
}
