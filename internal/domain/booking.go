package domain

import "strings"

// BookingRequest is a round-trip booking as submitted by a caller.
// Text fields are kept exactly as supplied; normalisation happens during validation.
type BookingRequest struct {
	DepartureDate          string
	DepartureAirportCode   string
	EmergencyRowSeating    bool
	ReturnDate             string
	DestinationAirportCode string
	SeatingClass           string
	AdultCount             int
	ChildCount             int
	InfantCount            int
}

func (r BookingRequest) TotalPassengers() int {
	return r.AdultCount + r.ChildCount + r.InfantCount
}

const (
	MinPassengers = 1
	MaxPassengers = 9

	MaxChildrenPerAdult = 2
	MaxInfantsPerAdult  = 1
)

type SeatingClass string

const (
	SeatingClassEconomy        SeatingClass = "economy"
	SeatingClassPremiumEconomy SeatingClass = "premium economy"
	SeatingClassBusiness       SeatingClass = "business"
	SeatingClassFirst          SeatingClass = "first"
)

var seatingClasses = []SeatingClass{
	SeatingClassEconomy,
	SeatingClassPremiumEconomy,
	SeatingClassBusiness,
	SeatingClassFirst,
}

var seatingClassNames = map[SeatingClass]string{
	SeatingClassEconomy:        "Economy",
	SeatingClassPremiumEconomy: "Premium Economy",
	SeatingClassBusiness:       "Business",
	SeatingClassFirst:          "First",
}

// SeatingClasses returns the canonical classes in cabin order.
func SeatingClasses() []SeatingClass {
	out := make([]SeatingClass, len(seatingClasses))
	copy(out, seatingClasses)
	return out
}

// ParseSeatingClass resolves free-form text case-insensitively.
// Surrounding whitespace is significant: " economy" is not a class.
func ParseSeatingClass(s string) (SeatingClass, bool) {
	c := SeatingClass(strings.ToLower(s))
	_, ok := seatingClassNames[c]
	return c, ok
}

// DisplayName is the title-cased name, e.g. "Premium Economy".
func (c SeatingClass) DisplayName() string {
	if name, ok := seatingClassNames[c]; ok {
		return name
	}
	return string(c)
}

var allowedAirports = []string{"SYD", "MEL", "LAX", "CDG", "DEL", "PVG", "DOH"}

var allowedAirportSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(allowedAirports))
	for _, code := range allowedAirports {
		set[strings.ToLower(code)] = struct{}{}
	}
	return set
}()

// SameAirport reports whether two codes name the same airport, ignoring case.
func SameAirport(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

// AllowedAirports returns the airport codes bookings may depart from or fly to.
func AllowedAirports() []string {
	out := make([]string, len(allowedAirports))
	copy(out, allowedAirports)
	return out
}

// IsAllowedAirport reports whether code is on the allow-list, ignoring case.
func IsAllowedAirport(code string) bool {
	_, ok := allowedAirportSet[strings.ToLower(code)]
	return ok
}
