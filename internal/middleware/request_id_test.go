package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestRequestIDGenerated(t *testing.T) {
	router := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	id := resp.Result().Header.Get(RequestIDHeader)
	if len(id) != 32 {
		t.Fatalf("expected generated hex request id, got %q", id)
	}
	if resp.Body.String() != id {
		t.Fatalf("expected body to match request id")
	}
}

func TestRequestIDPreserved(t *testing.T) {
	router := newRequestIDRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if id := resp.Result().Header.Get(RequestIDHeader); id != "req-123" {
		t.Fatalf("expected request id to be preserved, got %q", id)
	}
}

func TestRequestIDReplacesInvalid(t *testing.T) {
	router := newRequestIDRouter()

	for _, incoming := range []string{"has space", strings.Repeat("x", maxRequestIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
		req.Header.Set(RequestIDHeader, incoming)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if id := resp.Result().Header.Get(RequestIDHeader); id == incoming || id == "" {
			t.Fatalf("expected replacement id for %q, got %q", incoming, id)
		}
	}
}

func TestGetRequestIDNil(t *testing.T) {
	if GetRequestID(nil) != "" {
		t.Fatalf("expected empty id for nil context")
	}
}
