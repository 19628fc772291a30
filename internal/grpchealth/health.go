// Package grpchealth exposes the storefront's binding state over the standard
// gRPC health protocol.
package grpchealth

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	ProductsService = "storefront.products"
	OrdersService   = "storefront.orders"
)

type Bindings struct {
	Products bool
	Orders   bool
}

// NewServer registers a health service where "" is always SERVING and each
// storefront service follows its binding.
func NewServer(b Bindings) (*grpc.Server, *health.Server) {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ProductsService, statusFor(b.Products))
	hs.SetServingStatus(OrdersService, statusFor(b.Orders))

	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}

func statusFor(configured bool) healthpb.HealthCheckResponse_ServingStatus {
	if configured {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}

// Serve listens on addr until ctx is done, then stops gracefully.
func Serve(ctx context.Context, addr string, srv *grpc.Server, hs *health.Server, log *slog.Logger) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		hs.Shutdown()
		srv.GracefulStop()
	}()
	log.Info("grpc health listening", "addr", addr)
	if err := srv.Serve(l); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
