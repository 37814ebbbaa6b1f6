package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/segmentio/kafka-go"
)

// BookingRequestEvent is a booking submitted for validation on the requests topic.
type BookingRequestEvent struct {
	ID                     string `json:"id,omitempty"`
	DepartureDate          string `json:"departure_date"`
	DepartureAirportCode   string `json:"departure_airport_code"`
	EmergencyRowSeating    bool   `json:"emergency_row_seating"`
	ReturnDate             string `json:"return_date"`
	DestinationAirportCode string `json:"destination_airport_code"`
	SeatingClass           string `json:"seating_class"`
	AdultCount             int    `json:"adult_count"`
	ChildCount             int    `json:"child_count"`
	InfantCount            int    `json:"infant_count"`
}

// DecodeBookingRequest reads a BookingRequestEvent from msg. When the payload
// has no id, the message key is used.
func DecodeBookingRequest(msg kafka.Message) (BookingRequestEvent, error) {
	var event BookingRequestEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return BookingRequestEvent{}, fmt.Errorf("decode booking request: %w", err)
	}
	if event.ID == "" {
		event.ID = string(msg.Key)
	}
	return event, nil
}

func (e BookingRequestEvent) BookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		DepartureDate:          e.DepartureDate,
		DepartureAirportCode:   e.DepartureAirportCode,
		EmergencyRowSeating:    e.EmergencyRowSeating,
		ReturnDate:             e.ReturnDate,
		DestinationAirportCode: e.DestinationAirportCode,
		SeatingClass:           e.SeatingClass,
		AdultCount:             e.AdultCount,
		ChildCount:             e.ChildCount,
		InfantCount:            e.InfantCount,
	}
}

func NewBookingRequestEvent(id string, r domain.BookingRequest) BookingRequestEvent {
	return BookingRequestEvent{
		ID:                     id,
		DepartureDate:          r.DepartureDate,
		DepartureAirportCode:   r.DepartureAirportCode,
		EmergencyRowSeating:    r.EmergencyRowSeating,
		ReturnDate:             r.ReturnDate,
		DestinationAirportCode: r.DestinationAirportCode,
		SeatingClass:           r.SeatingClass,
		AdultCount:             r.AdultCount,
		ChildCount:             r.ChildCount,
		InfantCount:            r.InfantCount,
	}
}

// DecisionEvent is published on the decisions topic for every validation.
type DecisionEvent struct {
	ID            string              `json:"id"`
	Accepted      bool                `json:"accepted"`
	Code          string              `json:"code,omitempty"`
	Reason        string              `json:"reason,omitempty"`
	ReferenceDate string              `json:"reference_date"`
	ValidatedAt   time.Time           `json:"validated_at"`
	Request       BookingRequestEvent `json:"request"`
}
