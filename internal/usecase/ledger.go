package usecase

import (
	"context"

	"github.com/bengalbay/payserver/internal/adapter/sheets"
	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
)

// LedgerUseCase fronts the optional external order log. All operations
// validate input before touching the backing store.
type LedgerUseCase struct {
	ledger sheets.Ledger
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(ledger sheets.Ledger) *LedgerUseCase {
	return &LedgerUseCase{ledger: ledger}
}

// RecordOrder appends a new row to the ledger. The payment status defaults to
// pending when absent.
func (u *LedgerUseCase) RecordOrder(ctx context.Context, record model.OrderRecord) error {
	if record.OrderID == "" {
		return domainErrors.NewValidationError("orderId")
	}
	if record.PaymentStatus == "" {
		record.PaymentStatus = model.PaymentStatusPending
	}
	if !record.PaymentStatus.Valid() {
		return domainErrors.NewValidationError("paymentStatus")
	}

	return u.ledger.AppendOrder(ctx, record)
}

// UpdatePaymentStatus rewrites the status of the ledger row keyed by orderID.
func (u *LedgerUseCase) UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
	var missing []string
	if orderID == "" {
		missing = append(missing, "orderId")
	}
	if !status.Valid() {
		missing = append(missing, "paymentStatus")
	}
	if len(missing) > 0 {
		return domainErrors.NewValidationError(missing...)
	}

	return u.ledger.UpdateStatus(ctx, orderID, status, paymentID)
}

// Orders returns a snapshot of all ledger rows.
func (u *LedgerUseCase) Orders(ctx context.Context) ([]model.OrderRecord, error) {
	return u.ledger.ListOrders(ctx)
}

// LedgerStatus connects to the ledger if needed and reports its title.
func (u *LedgerUseCase) LedgerStatus(ctx context.Context) (string, error) {
	return u.ledger.Title(ctx)
}
