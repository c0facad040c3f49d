package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "key", "secret", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "key", "secret", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	var gotPath, gotAuthUser, gotAuthPass string
	var gotPayload orderPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.OrderHandle{
			ID:        "order_abc",
			Entity:    "order",
			Amount:    50000,
			AmountDue: 50000,
			Currency:  "INR",
			Receipt:   "receipt_1",
			Status:    "created",
		})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	handle, err := client.CreateOrder(context.Background(), model.OrderRequest{Amount: 50000, Currency: "INR", Receipt: "receipt_1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v1/orders" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuthUser != "rzp_key" || gotAuthPass != "rzp_secret" {
		t.Fatalf("unexpected basic auth: %s/%s", gotAuthUser, gotAuthPass)
	}
	if gotPayload.Amount != 50000 || gotPayload.Currency != "INR" || gotPayload.Receipt != "receipt_1" {
		t.Fatalf("unexpected payload: %+v", gotPayload)
	}
	if handle.ID != "order_abc" || handle.Amount != 50000 || handle.Status != "created" {
		t.Fatalf("unexpected handle: %+v", handle)
	}
}

func TestCreateOrderUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "wrong", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.CreateOrder(context.Background(), model.OrderRequest{Amount: 100, Currency: "INR", Receipt: "r"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", upstream.Status)
	}
	if upstream.Message != "Authentication failed" {
		t.Fatalf("expected upstream description to propagate, got %q", upstream.Message)
	}
}

func TestCreateOrderUpstreamOpaqueError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.CreateOrder(context.Background(), model.OrderRequest{Amount: 100, Currency: "INR", Receipt: "r"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Message != "502 Bad Gateway" {
		t.Fatalf("expected http status fallback, got %q", upstream.Message)
	}
}

func TestCreateOrderNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	_, err = client.CreateOrder(context.Background(), model.OrderRequest{Amount: 100, Currency: "INR", Receipt: "r"})
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestCreateOrderFailsClosedWithoutCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must be issued without credentials")
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "", "", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	if _, err := client.CreateOrder(context.Background(), model.OrderRequest{Amount: 100}); !errors.Is(err, domainErrors.ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestCreateOrderHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "rzp_key", "rzp_secret", testLogger())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.CreateOrder(ctx, model.OrderRequest{Amount: 100}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
