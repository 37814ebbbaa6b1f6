package validator_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "bookingcheck.v1.BookingValidator"
	ValidateFullMethod = "/bookingcheck.v1.BookingValidator/Validate"
)

// BookingValidatorServer is the server API for bookingcheck.v1.BookingValidator.
// Messages are google.protobuf.Struct with the same snake_case fields as the REST API.
type BookingValidatorServer interface {
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterBookingValidatorServer(s grpc.ServiceRegistrar, srv BookingValidatorServer) {
	s.RegisterService(&BookingValidator_ServiceDesc, srv)
}

func _BookingValidator_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookingValidatorServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ValidateFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookingValidatorServer).Validate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var BookingValidator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookingValidatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Validate",
			Handler:    _BookingValidator_Validate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookingcheck/v1/validator.proto",
}

type BookingValidatorClient struct {
	cc grpc.ClientConnInterface
}

func NewBookingValidatorClient(cc grpc.ClientConnInterface) *BookingValidatorClient {
	return &BookingValidatorClient{cc: cc}
}

func (c *BookingValidatorClient) Validate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ValidateFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
