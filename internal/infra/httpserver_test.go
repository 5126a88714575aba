package infra

import (
	"net/http"
	"testing"
	"time"
)

func TestNewHTTPServerAppliesConfig(t *testing.T) {
	cfg := &Config{
		Port:                  "9090",
		HTTPReadTimeout:       10 * time.Second,
		HTTPReadHeaderTimeout: 2 * time.Second,
		HTTPWriteTimeout:      20 * time.Second,
		HTTPIdleTimeout:       30 * time.Second,
	}
	s := NewHTTPServer(cfg, http.NewServeMux())

	if s.server.Addr != ":9090" {
		t.Fatalf("Addr = %q, want %q", s.server.Addr, ":9090")
	}
	if s.server.ReadHeaderTimeout != 2*time.Second {
		t.Fatalf("ReadHeaderTimeout = %v, want %v", s.server.ReadHeaderTimeout, 2*time.Second)
	}
	if s.server.WriteTimeout != 20*time.Second {
		t.Fatalf("WriteTimeout = %v, want %v", s.server.WriteTimeout, 20*time.Second)
	}
}
