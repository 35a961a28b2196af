package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"addressregistry/internal/adapters/logger"
	"addressregistry/internal/adapters/registry"
	"addressregistry/internal/application/ratelimiter"
	registryservice "addressregistry/internal/application/registry"
	httpports "addressregistry/internal/ports/http"
)

func newTestServer(t *testing.T, limiter Limiter) *Server {
	t.Helper()

	reg, err := registry.NewMainnet()
	if err != nil {
		t.Fatalf("NewMainnet() error = %v", err)
	}

	log := logger.NewNopLogger()
	handler := NewHandlerAdapter(registryservice.NewService(reg, log), log)

	return NewServer(Config{Port: "0"}, handler, limiter, log)
}

func doGet(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_GetAddress(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantValue  string
	}{
		{name: "known symbol", target: "/api/v1/addresses/USDC", wantStatus: http.StatusOK, wantValue: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"},
		{name: "lowercase symbol", target: "/api/v1/addresses/uniswap_v2_factory", wantStatus: http.StatusOK, wantValue: "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"},
		{name: "unknown symbol", target: "/api/v1/addresses/UNKNOWN_SYMBOL", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, s, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d, body = %s", tt.target, rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantValue == "" {
				return
			}

			var got httpports.Address
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if got.Value != tt.wantValue {
				t.Errorf("GET %s value = %v, want %v", tt.target, got.Value, tt.wantValue)
			}
		})
	}
}

func TestServer_ListAddresses(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		target     string
		wantStatus int
		wantTotal  int
	}{
		{target: "/api/v1/addresses", wantStatus: http.StatusOK, wantTotal: 19},
		{target: "/api/v1/addresses?kind=factory", wantStatus: http.StatusOK, wantTotal: 3},
		{target: "/api/v1/addresses?kind=Router", wantStatus: http.StatusOK, wantTotal: 4},
		{target: "/api/v1/addresses?kind=pool", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doGet(t, s, tt.target)
			if rec.Code != tt.wantStatus {
				t.Fatalf("GET %s status = %d, want %d", tt.target, rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got httpports.AddressList
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if got.Total != tt.wantTotal || len(got.Data) != tt.wantTotal {
				t.Errorf("GET %s total = %d (%d items), want %d", tt.target, got.Total, len(got.Data), tt.wantTotal)
			}
		})
	}
}

func TestServer_LookupAddress(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		value      string
		wantStatus int
		wantTotal  int
	}{
		{name: "single", value: "0xd533a949740bb3306d119cc777fa900ba034cd52", wantStatus: http.StatusOK, wantTotal: 1},
		{name: "shared value", value: "0x6B175474E89094C44Da98b954EedeAC495271d0F", wantStatus: http.StatusOK, wantTotal: 2},
		{name: "unknown", value: "0x0000000000000000000000000000000000000000", wantStatus: http.StatusNotFound},
		{name: "malformed", value: "0x1234", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, s, "/api/v1/addresses/lookup/"+tt.value)
			if rec.Code != tt.wantStatus {
				t.Fatalf("lookup %s status = %d, want %d", tt.value, rec.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got httpports.AddressList
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("lookup %s total = %d, want %d", tt.value, got.Total, tt.wantTotal)
			}
		})
	}
}

func TestServer_ValidateAddress(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/api/v1/validate/0x111111111117dc0aa78b770fa6a738034120c302")
	if rec.Code != http.StatusOK {
		t.Fatalf("validate status = %d, want 200", rec.Code)
	}

	var got httpports.Validation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Valid || got.Checksummed {
		t.Errorf("validate = %+v, want valid and not checksummed", got)
	}
}

func TestServer_Integrity(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/api/v1/integrity")
	if rec.Code != http.StatusOK {
		t.Fatalf("integrity status = %d, want 200", rec.Code)
	}

	var got httpports.Integrity
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.OK {
		t.Error("integrity OK = true, want the DAI/MATIC collision reported")
	}
	if len(got.Duplicates) != 1 || len(got.Duplicates[0].Symbols) != 2 {
		t.Errorf("integrity duplicates = %+v", got.Duplicates)
	}
}

func TestServer_HealthCheck(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doGet(t, s, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestServer_RateLimit(t *testing.T) {
	s := newTestServer(t, ratelimiter.NewRateLimiter(2, time.Minute, nil))

	for i := 0; i < 2; i++ {
		if rec := doGet(t, s, "/api/v1/addresses/WETH"); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}

	if rec := doGet(t, s, "/api/v1/addresses/WETH"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("request 3 status = %d, want 429", rec.Code)
	}

	// health is outside the limited group
	if rec := doGet(t, s, "/health"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestServer_Shutdown(t *testing.T) {
	s := newTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() before start error = %v", err)
	}
}
