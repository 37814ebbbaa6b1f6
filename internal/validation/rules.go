package validation

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/bookingcheck/internal/domain"
)

// evaluation is the per-call state shared by rules. Dates parsed by an
// earlier rule are stored here for later rules.
type evaluation struct {
	req       domain.BookingRequest
	today     Date
	departure Date
}

// Rule is one named check. Apply returns nil when the request satisfies it.
type Rule struct {
	ID    string
	Apply func(*evaluation) *domain.RejectionError
}

func reject(code domain.ReasonCode, reason string) *domain.RejectionError {
	return &domain.RejectionError{Code: code, Reason: reason}
}

func rejectf(code domain.ReasonCode, format string, args ...any) *domain.RejectionError {
	return reject(code, fmt.Sprintf(format, args...))
}

// parseRuleDate converts a parse failure into an INVALID_DATE rejection.
func parseRuleDate(text string) (Date, *domain.RejectionError) {
	d, err := ParseDate(text)
	if err != nil {
		return Date{}, reject(domain.ReasonInvalidDate, err.Error())
	}
	return d, nil
}

// Evaluation order matters: later rules rely on dates parsed by earlier ones,
// and callers depend on which reason wins for requests that break several rules.
var defaultRules = []Rule{
	{ID: "passenger-counts-non-negative", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.AdultCount < 0 || e.req.ChildCount < 0 || e.req.InfantCount < 0 {
			return reject(domain.ReasonPassengerCountsNegative, "Passenger counts cannot be negative.")
		}
		return nil
	}},
	{ID: "passenger-total-range", Apply: func(e *evaluation) *domain.RejectionError {
		total := e.req.TotalPassengers()
		if total < domain.MinPassengers || total > domain.MaxPassengers {
			return rejectf(domain.ReasonPassengerCountOutOfRange,
				"Passenger count must be in range %d-%d.", domain.MinPassengers, domain.MaxPassengers)
		}
		return nil
	}},

	{ID: "child-emergency-row", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.ChildCount > 0 && e.req.EmergencyRowSeating {
			return reject(domain.ReasonChildInEmergencyRow, "Children cannot be seated in emergency row seating.")
		}
		return nil
	}},
	{ID: "child-first-class", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.ChildCount > 0 && strings.EqualFold(e.req.SeatingClass, string(domain.SeatingClassFirst)) {
			return reject(domain.ReasonChildInFirstClass, "Children are not allowed in First Class.")
		}
		return nil
	}},
	{ID: "child-per-adult", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.ChildCount > 0 && e.req.ChildCount > domain.MaxChildrenPerAdult*e.req.AdultCount {
			return rejectf(domain.ReasonTooManyChildrenPerAdult,
				"Each adult can accompany up to %d children only.", domain.MaxChildrenPerAdult)
		}
		return nil
	}},

	{ID: "infant-emergency-row", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.InfantCount > 0 && e.req.EmergencyRowSeating {
			return reject(domain.ReasonInfantInEmergencyRow, "Infants cannot be seated in emergency row seating.")
		}
		return nil
	}},
	{ID: "infant-business-class", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.InfantCount > 0 && strings.EqualFold(e.req.SeatingClass, string(domain.SeatingClassBusiness)) {
			return reject(domain.ReasonInfantInBusinessClass, "Infants are not allowed in Business Class.")
		}
		return nil
	}},
	{ID: "infant-with-adult", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.InfantCount > 0 && e.req.AdultCount == 0 {
			return reject(domain.ReasonInfantWithoutAdult, "Infants must be accompanied by at least one adult.")
		}
		return nil
	}},
	{ID: "infant-per-adult", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.InfantCount > 0 && e.req.InfantCount > domain.MaxInfantsPerAdult*e.req.AdultCount {
			return reject(domain.ReasonTooManyInfantsPerAdult,
				"Each infant must be seated on an adult's lap. Only one infant per adult.")
		}
		return nil
	}},

	{ID: "departure-date", Apply: func(e *evaluation) *domain.RejectionError {
		d, rejection := parseRuleDate(e.req.DepartureDate)
		if rejection != nil {
			return rejection
		}
		if d.Before(e.today) {
			return reject(domain.ReasonDepartureInPast, "Departure date cannot be in the past.")
		}
		e.departure = d
		return nil
	}},
	{ID: "return-date-present", Apply: func(e *evaluation) *domain.RejectionError {
		if e.req.ReturnDate == "" {
			return reject(domain.ReasonReturnDateRequired, "All flights are round-trip. Return date is required.")
		}
		return nil
	}},
	{ID: "return-date", Apply: func(e *evaluation) *domain.RejectionError {
		d, rejection := parseRuleDate(e.req.ReturnDate)
		if rejection != nil {
			return rejection
		}
		if d.Before(e.departure) {
			return reject(domain.ReasonReturnBeforeDeparture, "Return date cannot be before departure date.")
		}
		return nil
	}},

	{ID: "seating-class", Apply: func(e *evaluation) *domain.RejectionError {
		if _, ok := domain.ParseSeatingClass(e.req.SeatingClass); !ok {
			return reject(domain.ReasonInvalidSeatingClass,
				"Seating class must be one of: economy, premium economy, business, first.")
		}
		return nil
	}},
	{ID: "emergency-row-class", Apply: func(e *evaluation) *domain.RejectionError {
		class, _ := domain.ParseSeatingClass(e.req.SeatingClass)
		if e.req.EmergencyRowSeating && class != domain.SeatingClassEconomy {
			return reject(domain.ReasonEmergencyRowWrongClass, "Emergency row seating is only allowed in Economy class.")
		}
		return nil
	}},

	{ID: "departure-airport", Apply: func(e *evaluation) *domain.RejectionError {
		if !domain.IsAllowedAirport(e.req.DepartureAirportCode) {
			return rejectf(domain.ReasonDepartureAirportNotAllowed,
				"Departure airport '%s' is not allowed.", e.req.DepartureAirportCode)
		}
		return nil
	}},
	{ID: "destination-airport", Apply: func(e *evaluation) *domain.RejectionError {
		if !domain.IsAllowedAirport(e.req.DestinationAirportCode) {
			return rejectf(domain.ReasonDestinationAirportNotAllowed,
				"Destination airport '%s' is not allowed.", e.req.DestinationAirportCode)
		}
		return nil
	}},
	{ID: "distinct-airports", Apply: func(e *evaluation) *domain.RejectionError {
		if domain.SameAirport(e.req.DepartureAirportCode, e.req.DestinationAirportCode) {
			return reject(domain.ReasonSameAirport, "Departure and destination airports cannot be the same.")
		}
		return nil
	}},
}

// RuleIDs lists the rule identifiers in evaluation order.
func RuleIDs() []string {
	ids := make([]string, 0, len(defaultRules))
	for _, r := range defaultRules {
		ids = append(ids, r.ID)
	}
	return ids
}
