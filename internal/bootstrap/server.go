package bootstrap

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/bookingcheck/api"
	"github.com/Domenick1991/bookingcheck/config"
	validatorapi "github.com/Domenick1991/bookingcheck/internal/api/validator_service_api"
	"github.com/Domenick1991/bookingcheck/internal/logger"
	"github.com/Domenick1991/bookingcheck/internal/service/booking"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

//go:embed swagger.json
var swaggerDoc []byte

const swaggerDocPath = "/swagger/doc.json"

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts gRPC and HTTP (REST + grpc-gateway + swagger) servers and blocks until context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, svc booking.ValidatorUseCase, log *logger.Logger) error {
	s, err := newServers(ctx, cfg, svc, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()
	log.Info().Str("address", cfg.GRPC.Address).Msg("gRPC server started")

	// REST, gateway and swagger
	go func() {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("address", cfg.HTTP.Address).Msg("HTTP server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(ctx context.Context, cfg *config.Config, svc booking.ValidatorUseCase, log *logger.Logger) (*Servers, error) {
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(unaryLogger(log)))
	validatorapi.RegisterBookingValidatorServer(grpcSrv, validatorapi.NewServer(svc))

	gateway := runtime.NewServeMux()
	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if err := validatorapi.RegisterBookingValidatorHandlerFromEndpoint(ctx, gateway, cfg.GRPC.Address, opts); err != nil {
		return nil, fmt.Errorf("register booking validator gateway: %w", err)
	}

	router := api.NewRouter(api.NewBookingHandler(svc), api.NewCatalogHandler(), log)

	handler := http.NewServeMux()
	handler.Handle("/v1/", gateway)
	handler.Handle("/", router)

	if cfg.HTTP.Swagger {
		handler.HandleFunc(swaggerDocPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(swaggerDoc)
		})
		handler.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL(swaggerDocPath)))
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: httpSrv,
	}, nil
}

func unaryLogger(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(log.WithContext(ctx), req)

		event := log.Info()
		if err != nil {
			event = log.Warn().Err(err)
		}
		event.
			Str("method", info.FullMethod).
			Str("code", status.Code(err).String()).
			Dur("duration", time.Since(start)).
			Send()

		return resp, err
	}
}
