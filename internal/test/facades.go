package test

import (
	"context"

	"github.com/bengalbay/payserver/internal/domain/model"
)

// GatewayFacadeStub provides controllable behaviour for the HTTP handlers.
type GatewayFacadeStub struct {
	CreateOrderFn   func(context.Context, model.OrderRequest) (*model.OrderHandle, error)
	VerifyPaymentFn func(context.Context, model.PaymentCallback) error
	RecordOrderFn   func(context.Context, model.OrderRecord) error
	UpdateStatusFn  func(context.Context, string, model.PaymentStatus, string) error
	OrdersFn        func(context.Context) ([]model.OrderRecord, error)
	LedgerStatusFn  func(context.Context) (string, error)
}

// CreateOrder delegates or echoes the request as a created order.
func (s GatewayFacadeStub) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.OrderHandle{
		ID:       "order_stub",
		Entity:   "order",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}

// VerifyPayment delegates or succeeds.
func (s GatewayFacadeStub) VerifyPayment(ctx context.Context, cb model.PaymentCallback) error {
	if s.VerifyPaymentFn != nil {
		return s.VerifyPaymentFn(ctx, cb)
	}
	return nil
}

// RecordOrder delegates or succeeds.
func (s GatewayFacadeStub) RecordOrder(ctx context.Context, record model.OrderRecord) error {
	if s.RecordOrderFn != nil {
		return s.RecordOrderFn(ctx, record)
	}
	return nil
}

// UpdatePaymentStatus delegates or succeeds.
func (s GatewayFacadeStub) UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, paymentID)
	}
	return nil
}

// Orders delegates or returns a single record.
func (s GatewayFacadeStub) Orders(ctx context.Context) ([]model.OrderRecord, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.OrderRecord{{OrderID: "ORD1", PaymentStatus: model.PaymentStatusPending}}, nil
}

// LedgerStatus delegates or returns a fixed title.
func (s GatewayFacadeStub) LedgerStatus(ctx context.Context) (string, error) {
	if s.LedgerStatusFn != nil {
		return s.LedgerStatusFn(ctx)
	}
	return "Stub Orders", nil
}
