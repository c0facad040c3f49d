package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
	testhelpers "github.com/bengalbay/payserver/internal/test"
)

func TestRecordOrderDefaultsStatus(t *testing.T) {
	var appended model.OrderRecord
	u := NewLedgerUseCase(testhelpers.LedgerStub{AppendFn: func(ctx context.Context, record model.OrderRecord) error {
		appended = record
		return nil
	}})

	if err := u.RecordOrder(context.Background(), model.OrderRecord{OrderID: "ORD1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appended.PaymentStatus != model.PaymentStatusPending {
		t.Fatalf("expected pending default, got %s", appended.PaymentStatus)
	}
}

func TestRecordOrderValidation(t *testing.T) {
	u := NewLedgerUseCase(testhelpers.LedgerStub{AppendFn: func(context.Context, model.OrderRecord) error {
		t.Error("ledger must not be touched for invalid records")
		return nil
	}})

	var validation *domainErrors.ValidationError
	if err := u.RecordOrder(context.Background(), model.OrderRecord{}); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := u.RecordOrder(context.Background(), model.OrderRecord{OrderID: "ORD1", PaymentStatus: "settled"}); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for unknown status, got %v", err)
	}
}

func TestUpdatePaymentStatusValidation(t *testing.T) {
	u := NewLedgerUseCase(testhelpers.LedgerStub{UpdateFn: func(context.Context, string, model.PaymentStatus, string) error {
		t.Error("ledger must not be touched for invalid input")
		return nil
	}})

	var validation *domainErrors.ValidationError
	err := u.UpdatePaymentStatus(context.Background(), "", "nostatus", "")
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Fields) != 2 {
		t.Fatalf("expected both fields reported, got %v", validation.Fields)
	}
}

func TestUpdatePaymentStatusDelegates(t *testing.T) {
	var gotOrder, gotPayment string
	var gotStatus model.PaymentStatus
	u := NewLedgerUseCase(testhelpers.LedgerStub{UpdateFn: func(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
		gotOrder, gotStatus, gotPayment = orderID, status, paymentID
		return nil
	}})

	if err := u.UpdatePaymentStatus(context.Background(), "ORD1", model.PaymentStatusPaid, "pay_123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotOrder != "ORD1" || gotStatus != model.PaymentStatusPaid || gotPayment != "pay_123" {
		t.Fatalf("unexpected delegation: %s %s %s", gotOrder, gotStatus, gotPayment)
	}
}

func TestUpdatePaymentStatusPropagatesLedgerErrors(t *testing.T) {
	for _, want := range []error{domainErrors.ErrNotFound, domainErrors.ErrMultipleMatches, domainErrors.ErrLedgerUnavailable} {
		u := NewLedgerUseCase(testhelpers.LedgerStub{UpdateFn: func(context.Context, string, model.PaymentStatus, string) error {
			return want
		}})
		if err := u.UpdatePaymentStatus(context.Background(), "ORD1", model.PaymentStatusPaid, ""); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestOrdersSnapshot(t *testing.T) {
	u := NewLedgerUseCase(testhelpers.LedgerStub{})
	records, err := u.Orders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].OrderID != "ORD1" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestLedgerStatus(t *testing.T) {
	u := NewLedgerUseCase(testhelpers.LedgerStub{})
	title, err := u.LedgerStatus(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Stub Orders" {
		t.Fatalf("unexpected title: %s", title)
	}
}
