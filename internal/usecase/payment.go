package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bengalbay/payserver/internal/adapter/razorpay"
	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
	"github.com/bengalbay/payserver/internal/pkg/signature"
)

const defaultCurrency = "INR"

// PaymentUseCase owns the payment-order lifecycle: order creation through the
// processor and callback signature verification. Ledger recording is a
// separate concern and never happens here.
type PaymentUseCase struct {
	processor razorpay.Client
	verifier  *signature.Verifier
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(processor razorpay.Client, verifier *signature.Verifier) *PaymentUseCase {
	return &PaymentUseCase{processor: processor, verifier: verifier}
}

// CreateOrder validates the request, fills defaults, and asks the processor
// to mint an order. No local state is written.
func (u *PaymentUseCase) CreateOrder(ctx context.Context, req model.OrderRequest) (*model.OrderHandle, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive integer in minor units", domainErrors.ErrInvalidAmount)
	}
	if req.Currency == "" {
		req.Currency = defaultCurrency
	}
	if req.Receipt == "" {
		req.Receipt = "receipt_" + uuid.NewString()
	}

	return u.processor.CreateOrder(ctx, req)
}

// VerifyPayment checks the completion callback against the shared secret.
// A mismatch is an expected adversarial outcome, reported as
// ErrSignatureMismatch rather than a server fault.
func (u *PaymentUseCase) VerifyPayment(ctx context.Context, cb model.PaymentCallback) error {
	var missing []string
	if cb.OrderID == "" {
		missing = append(missing, "razorpay_order_id")
	}
	if cb.PaymentID == "" {
		missing = append(missing, "razorpay_payment_id")
	}
	if cb.Signature == "" {
		missing = append(missing, "razorpay_signature")
	}
	if len(missing) > 0 {
		return domainErrors.NewValidationError(missing...)
	}

	ok, err := u.verifier.Verify(cb.OrderID, cb.PaymentID, cb.Signature)
	if err != nil {
		return err
	}
	if !ok {
		return domainErrors.ErrSignatureMismatch
	}
	return nil
}
