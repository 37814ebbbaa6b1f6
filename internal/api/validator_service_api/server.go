package validator_service_api

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Domenick1991/bookingcheck/internal/domain"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Server implements BookingValidatorServer on top of the validation use case.
type Server struct {
	bookings booking.ValidatorUseCase
}

func NewServer(bookings booking.ValidatorUseCase) *Server {
	return &Server{bookings: bookings}
}

func (s *Server) Validate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := toValidateInput(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.bookings.Validate(ctx, input)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, status.FromContextError(err).Err()
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return toPBResult(result)
}

func toValidateInput(req *structpb.Struct) (booking.ValidateInput, error) {
	f := fields(req.GetFields())

	var r domain.BookingRequest
	var err error
	if r.DepartureDate, err = f.str("departure_date"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.DepartureAirportCode, err = f.str("departure_airport_code"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.EmergencyRowSeating, err = f.boolean("emergency_row_seating"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.ReturnDate, err = f.str("return_date"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.DestinationAirportCode, err = f.str("destination_airport_code"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.SeatingClass, err = f.str("seating_class"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.AdultCount, err = f.integer("adult_count"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.ChildCount, err = f.integer("child_count"); err != nil {
		return booking.ValidateInput{}, err
	}
	if r.InfantCount, err = f.integer("infant_count"); err != nil {
		return booking.ValidateInput{}, err
	}

	id, err := f.str("id")
	if err != nil {
		return booking.ValidateInput{}, err
	}
	return booking.ValidateInput{ID: id, Request: r}, nil
}

func toPBResult(result *booking.Result) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"id":             result.ID,
		"accepted":       result.Decision.IsAccepted(),
		"reference_date": result.ReferenceDate.String(),
	}
	if !result.Decision.IsAccepted() {
		m["code"] = string(result.Decision.Code())
		m["reason"] = result.Decision.Reason()
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// fields reads typed values out of a Struct. Absent or null fields are zero.
type fields map[string]*structpb.Value

func (f fields) str(name string) (string, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return "", nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	return s.StringValue, nil
}

func (f fields) boolean(name string) (bool, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return b.BoolValue, nil
}

func (f fields) integer(name string) (int, error) {
	v, ok := f[name]
	if !ok || isNull(v) {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return int(n.NumberValue), nil
}

func isNull(v *structpb.Value) bool {
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return v == nil || null
}

var _ BookingValidatorServer = (*Server)(nil)
