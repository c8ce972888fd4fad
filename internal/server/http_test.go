package server

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/park285/leetcode-profile-go/internal/config"
)

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "0.0.0.0", Port: 8080}}
	server := NewHTTPServer(cfg, router)
	if server.Addr != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr: %s", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected router as handler")
	}
	if server.ReadHeaderTimeout != readHeaderTimeout {
		t.Fatalf("unexpected read header timeout: %v", server.ReadHeaderTimeout)
	}

	cfg.HTTP.HTTP2Enabled = true
	server = NewHTTPServer(cfg, router)
	if server.Handler == router {
		t.Fatalf("expected h2c wrapped handler")
	}
}

func TestNewHTTPServerIPv6(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "::1", Port: 9000}}
	if addr := NewHTTPServer(cfg, gin.New()).Addr; addr != "[::1]:9000" {
		t.Fatalf("unexpected addr: %s", addr)
	}
}
