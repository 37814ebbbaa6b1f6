package validator_service_api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// GatewayValidatePath is the REST route the gateway maps onto Validate.
const GatewayValidatePath = "/v1/bookings/validate"

// RegisterBookingValidatorHandlerFromEndpoint dials endpoint and registers the
// gateway route on mux. The connection is closed when ctx is done.
func RegisterBookingValidatorHandlerFromEndpoint(ctx context.Context, mux *runtime.ServeMux, endpoint string, opts []grpc.DialOption) error {
	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return fmt.Errorf("dial %s: %w", endpoint, err)
	}
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	return RegisterBookingValidatorHandler(mux, conn)
}

func RegisterBookingValidatorHandler(mux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	client := NewBookingValidatorClient(conn)

	return mux.HandlePath(http.MethodPost, GatewayValidatePath, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		ctx := runtime.NewServerMetadataContext(r.Context(), runtime.ServerMetadata{})
		inbound, outbound := runtime.MarshalerForRequest(mux, r)

		var in structpb.Struct
		if err := inbound.NewDecoder(r.Body).Decode(&in); err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.InvalidArgument, "%v", err))
			return
		}

		resp, err := client.Validate(ctx, &in)
		if err != nil {
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}
		runtime.ForwardResponseMessage(ctx, mux, outbound, w, r, resp)
	})
}
