package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/storefront/internal/health"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

func TestStartMetricsServer_Endpoints(t *testing.T) {
	logger := log.WithField("test", "http")

	port := findFreePort(t)
	addr := fmt.Sprintf("127.0.0.1:%d", port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := newRegistry()
	healthHandler := healthcheck.NewHandler(version.Version())
	srv := startMetricsServer(ctx, addr, registry, logger, healthHandler)
	defer shutdownHTTP(srv, logger)

	waitForHTTP(t, fmt.Sprintf("http://%s/livez", addr))

	tests := []struct {
		path     string
		wantBody string
	}{
		{path: "/metrics", wantBody: "go_goroutines"},
		{path: "/healthz", wantBody: `"status":"healthy"`},
		{path: "/readyz", wantBody: "ready"},
		{path: "/livez", wantBody: "ok"},
	}
	for _, tt := range tests {
		resp, err := http.Get(fmt.Sprintf("http://%s%s", addr, tt.path))
		if err != nil {
			t.Fatalf("failed to get %s: %v", tt.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200 for %s, got %d", tt.path, resp.StatusCode)
		}
		if !strings.Contains(string(body), tt.wantBody) {
			t.Errorf("expected %s to contain %q, got %q", tt.path, tt.wantBody, string(body))
		}
	}
}

func TestStartMetricsServer_ReadinessFailsOnCriticalDependency(t *testing.T) {
	logger := log.WithField("test", "http")
	addr := fmt.Sprintf("127.0.0.1:%d", findFreePort(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	healthHandler := healthcheck.NewHandler(version.Version())
	healthHandler.RegisterChecker("postgres", healthcheck.NewPingChecker("postgres", true, func(context.Context) error {
		return errors.New("connection refused")
	}))
	srv := startMetricsServer(ctx, addr, newRegistry(), logger, healthHandler)
	defer shutdownHTTP(srv, logger)

	waitForHTTP(t, fmt.Sprintf("http://%s/livez", addr))

	resp, err := http.Get(fmt.Sprintf("http://%s/readyz", addr))
	if err != nil {
		t.Fatalf("failed to get /readyz: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 from /readyz, got %d", resp.StatusCode)
	}
}

func TestStartMetricsServer_Shutdown(t *testing.T) {
	logger := log.WithField("test", "http")
	addr := fmt.Sprintf("127.0.0.1:%d", findFreePort(t))

	ctx, cancel := context.WithCancel(context.Background())
	srv := startMetricsServer(ctx, addr, newRegistry(), logger, healthcheck.NewHandler(version.Version()))
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	waitForHTTP(t, fmt.Sprintf("http://%s/livez", addr))

	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/livez", addr))
		if err != nil {
			return
		}
		_ = resp.Body.Close()
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("server should not accept requests after context cancellation")
}

func TestShutdownHTTP_NilServer(_ *testing.T) {
	// Не должно паниковать.
	shutdownHTTP(nil, log.WithField("test", "http"))
}

func findFreePort(t *testing.T) int {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

func waitForHTTP(t *testing.T, url string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("%s did not become available", url)
}
