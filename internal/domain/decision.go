package domain

import "fmt"

// ReasonCode identifies the rule a booking request failed.
type ReasonCode string

const (
	ReasonNone                         ReasonCode = ""
	ReasonPassengerCountsNegative      ReasonCode = "PASSENGER_COUNTS_NEGATIVE"
	ReasonPassengerCountOutOfRange     ReasonCode = "PASSENGER_COUNT_OUT_OF_RANGE"
	ReasonChildInEmergencyRow          ReasonCode = "CHILD_IN_EMERGENCY_ROW"
	ReasonChildInFirstClass            ReasonCode = "CHILD_IN_FIRST_CLASS"
	ReasonTooManyChildrenPerAdult      ReasonCode = "TOO_MANY_CHILDREN_PER_ADULT"
	ReasonInfantInEmergencyRow         ReasonCode = "INFANT_IN_EMERGENCY_ROW"
	ReasonInfantInBusinessClass        ReasonCode = "INFANT_IN_BUSINESS_CLASS"
	ReasonInfantWithoutAdult           ReasonCode = "INFANT_WITHOUT_ADULT"
	ReasonTooManyInfantsPerAdult       ReasonCode = "TOO_MANY_INFANTS_PER_ADULT"
	ReasonInvalidDate                  ReasonCode = "INVALID_DATE"
	ReasonDepartureInPast              ReasonCode = "DEPARTURE_IN_PAST"
	ReasonReturnDateRequired           ReasonCode = "RETURN_DATE_REQUIRED"
	ReasonReturnBeforeDeparture        ReasonCode = "RETURN_BEFORE_DEPARTURE"
	ReasonInvalidSeatingClass          ReasonCode = "INVALID_SEATING_CLASS"
	ReasonEmergencyRowWrongClass       ReasonCode = "EMERGENCY_ROW_WRONG_CLASS"
	ReasonDepartureAirportNotAllowed   ReasonCode = "DEPARTURE_AIRPORT_NOT_ALLOWED"
	ReasonDestinationAirportNotAllowed ReasonCode = "DESTINATION_AIRPORT_NOT_ALLOWED"
	ReasonSameAirport                  ReasonCode = "SAME_AIRPORT"
)

// Decision is the outcome of validating one BookingRequest: either accepted,
// or rejected with the code and message of the first rule that failed.
type Decision struct {
	accepted bool
	code     ReasonCode
	reason   string
}

func Accepted() Decision {
	return Decision{accepted: true}
}

func Rejected(code ReasonCode, reason string) Decision {
	return Decision{code: code, reason: reason}
}

func (d Decision) IsAccepted() bool { return d.accepted }

func (d Decision) Code() ReasonCode { return d.code }

func (d Decision) Reason() string { return d.reason }

func (d Decision) String() string {
	if d.accepted {
		return "accepted"
	}
	return fmt.Sprintf("rejected: %s", d.reason)
}

// Err returns nil for an accepted decision and a *RejectionError otherwise.
func (d Decision) Err() error {
	if d.accepted {
		return nil
	}
	return &RejectionError{Code: d.code, Reason: d.reason}
}

type RejectionError struct {
	Code   ReasonCode
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// Is matches another *RejectionError with the same code, so callers can write
// errors.Is(err, &domain.RejectionError{Code: domain.ReasonSameAirport}).
func (e *RejectionError) Is(target error) bool {
	t, ok := target.(*RejectionError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
