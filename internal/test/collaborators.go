package test

import (
	"context"
	"sync"

	"github.com/bengalbay/payserver/internal/domain/model"
)

// ProcessorStub provides controllable behaviour for the payment processor
// client.
type ProcessorStub struct {
	CreateOrderFn func(context.Context, model.OrderRequest) (*model.OrderHandle, error)

	mu       sync.Mutex
	requests []model.OrderRequest
}

// CreateOrder records the request and delegates to the provided function or
// echoes the request back as a created order.
func (s *ProcessorStub) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.OrderHandle{
		ID:        "order_stub",
		Entity:    "order",
		Amount:    req.Amount,
		AmountDue: req.Amount,
		Currency:  req.Currency,
		Receipt:   req.Receipt,
		Status:    "created",
	}, nil
}

// Requests returns a copy of all requests seen so far.
func (s *ProcessorStub) Requests() []model.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderRequest(nil), s.requests...)
}

// LedgerStub simulates the external order log.
type LedgerStub struct {
	ReadyFn  func(context.Context) bool
	TitleFn  func(context.Context) (string, error)
	AppendFn func(context.Context, model.OrderRecord) error
	UpdateFn func(context.Context, string, model.PaymentStatus, string) error
	ListFn   func(context.Context) ([]model.OrderRecord, error)
}

// EnsureReady delegates or reports ready.
func (s LedgerStub) EnsureReady(ctx context.Context) bool {
	if s.ReadyFn != nil {
		return s.ReadyFn(ctx)
	}
	return true
}

// Title delegates or returns a fixed sheet title.
func (s LedgerStub) Title(ctx context.Context) (string, error) {
	if s.TitleFn != nil {
		return s.TitleFn(ctx)
	}
	return "Stub Orders", nil
}

// AppendOrder delegates or succeeds.
func (s LedgerStub) AppendOrder(ctx context.Context, record model.OrderRecord) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, record)
	}
	return nil
}

// UpdateStatus delegates or succeeds.
func (s LedgerStub) UpdateStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, status, paymentID)
	}
	return nil
}

// ListOrders delegates or returns a single record.
func (s LedgerStub) ListOrders(ctx context.Context) ([]model.OrderRecord, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.OrderRecord{{OrderID: "ORD1", PaymentStatus: model.PaymentStatusPending}}, nil
}
