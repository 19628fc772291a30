package grpchealth

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func check(t *testing.T, hs healthpb.HealthServer, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Check(%q): %v", service, err)
	}
	return resp.GetStatus()
}

func TestNewServer_StatusFollowsBindings(t *testing.T) {
	cases := []struct {
		name     string
		b        Bindings
		products healthpb.HealthCheckResponse_ServingStatus
		orders   healthpb.HealthCheckResponse_ServingStatus
	}{
		{"none", Bindings{}, healthpb.HealthCheckResponse_NOT_SERVING, healthpb.HealthCheckResponse_NOT_SERVING},
		{"products only", Bindings{Products: true}, healthpb.HealthCheckResponse_SERVING, healthpb.HealthCheckResponse_NOT_SERVING},
		{"both", Bindings{Products: true, Orders: true}, healthpb.HealthCheckResponse_SERVING, healthpb.HealthCheckResponse_SERVING},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, hs := NewServer(tc.b)
			defer srv.Stop()

			if got := check(t, hs, ""); got != healthpb.HealthCheckResponse_SERVING {
				t.Fatalf("overall=%v, esperaba SERVING", got)
			}
			if got := check(t, hs, ProductsService); got != tc.products {
				t.Fatalf("products=%v, esperaba %v", got, tc.products)
			}
			if got := check(t, hs, OrdersService); got != tc.orders {
				t.Fatalf("orders=%v, esperaba %v", got, tc.orders)
			}
		})
	}
}

func TestNewServer_UnknownService(t *testing.T) {
	srv, hs := NewServer(Bindings{})
	defer srv.Stop()

	_, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code=%v, esperaba NotFound", status.Code(err))
	}
}
