package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
	"github.com/bengalbay/payserver/internal/domain/model"
)

// Ledger exposes append/update/list access to the external order log.
// The ledger is optional and best-effort: a missing configuration disables it
// without error, and its failures never describe payment state.
type Ledger interface {
	EnsureReady(ctx context.Context) bool
	Title(ctx context.Context) (string, error)
	AppendOrder(ctx context.Context, record model.OrderRecord) error
	UpdateStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error
	ListOrders(ctx context.Context) ([]model.OrderRecord, error)
}

// Column layout of the Orders sheet. The order is part of the external
// contract with the backing spreadsheet.
var headerRow = []string{
	"Order ID",
	"Customer Name",
	"Phone",
	"Email",
	"Items Count",
	"Total Amount",
	"Payment Status",
	"Transaction Mode",
	"Order Date",
	"Delivery Address",
	"Payment ID",
	"Created At",
}

const (
	colOrderID = iota
	colCustomerName
	colPhone
	colEmail
	colItemsCount
	colTotalAmount
	colPaymentStatus
	colTransactionMode
	colOrderDate
	colDeliveryAddress
	colPaymentID
	colCreatedAt
)

// absentPaymentID marks a row logged before any payment attempt.
const absentPaymentID = "N/A"

type connState int

const (
	stateUninitialized connState = iota
	stateReady
	stateFailed
)

// rowStore is the narrow surface the ledger needs from the backing
// spreadsheet. load authenticates and ensures the Orders sheet exists;
// readRows returns data rows without the header; updateRow addresses data
// rows by zero-based index.
type rowStore interface {
	load(ctx context.Context) (string, error)
	appendRow(ctx context.Context, row []string) error
	readRows(ctx context.Context) ([][]string, error)
	updateRow(ctx context.Context, index int, row []string) error
}

// SheetLedger implements Ledger over a lazily-initialized rowStore.
// Initialization is collapsed to a single attempt under concurrency; a failed
// attempt is retried on the next call.
type SheetLedger struct {
	store   rowStore
	timeout time.Duration
	logger  *slog.Logger

	group singleflight.Group
	mu    sync.RWMutex
	state connState
	title string
}

// NewSheetLedger constructs the ledger. A nil store means the ledger feature
// is disabled.
func NewSheetLedger(store rowStore, timeout time.Duration, logger *slog.Logger) *SheetLedger {
	return &SheetLedger{store: store, timeout: timeout, logger: logger}
}

// EnsureReady reports whether the ledger can serve requests, connecting on
// first use. It returns false both when the feature is disabled and when the
// backing store is unreachable.
func (l *SheetLedger) EnsureReady(ctx context.Context) bool {
	return l.ready(ctx) == nil
}

// Title returns the backing spreadsheet title, connecting if needed.
func (l *SheetLedger) Title(ctx context.Context) (string, error) {
	if err := l.ready(ctx); err != nil {
		return "", err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.title, nil
}

func (l *SheetLedger) ready(ctx context.Context) error {
	if l.store == nil {
		return domainErrors.ErrLedgerDisabled
	}

	l.mu.RLock()
	ready := l.state == stateReady
	l.mu.RUnlock()
	if ready {
		return nil
	}

	_, err, _ := l.group.Do("init", func() (interface{}, error) {
		l.mu.RLock()
		ready := l.state == stateReady
		l.mu.RUnlock()
		if ready {
			return nil, nil
		}

		callCtx, cancel := l.callContext(ctx)
		defer cancel()

		title, err := l.store.load(callCtx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.state = stateFailed
			l.logger.Warn("ledger initialization failed", slog.String("error", err.Error()))
			return nil, err
		}
		l.state = stateReady
		l.title = title
		l.logger.Info("ledger initialized", slog.String("sheet", title))
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrLedgerUnavailable, err)
	}
	return nil
}

// AppendOrder writes one row to the ledger. CreatedAt is stamped at append
// time when the record carries none.
func (l *SheetLedger) AppendOrder(ctx context.Context, record model.OrderRecord) error {
	if err := l.ready(ctx); err != nil {
		return err
	}

	callCtx, cancel := l.callContext(ctx)
	defer cancel()

	if err := l.store.appendRow(callCtx, encodeRecord(record)); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrLedgerUnavailable, err)
	}
	return nil
}

// UpdateStatus locates the row keyed by orderID and rewrites its payment
// status, and payment id when one is supplied. Zero matching rows is a normal
// miss; more than one is an external-store anomaly reported explicitly.
func (l *SheetLedger) UpdateStatus(ctx context.Context, orderID string, status model.PaymentStatus, paymentID string) error {
	if err := l.ready(ctx); err != nil {
		return err
	}

	callCtx, cancel := l.callContext(ctx)
	defer cancel()

	rows, err := l.store.readRows(callCtx)
	if err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrLedgerUnavailable, err)
	}

	match := -1
	for i, row := range rows {
		if len(row) > colOrderID && row[colOrderID] == orderID {
			if match >= 0 {
				return domainErrors.ErrMultipleMatches
			}
			match = i
		}
	}
	if match < 0 {
		return domainErrors.ErrNotFound
	}

	row := padRow(rows[match])
	row[colPaymentStatus] = string(status)
	if paymentID != "" {
		row[colPaymentID] = paymentID
	}

	if err := l.store.updateRow(callCtx, match, row); err != nil {
		return fmt.Errorf("%w: %v", domainErrors.ErrLedgerUnavailable, err)
	}
	return nil
}

// ListOrders returns a point-in-time snapshot of all ledger rows.
func (l *SheetLedger) ListOrders(ctx context.Context) ([]model.OrderRecord, error) {
	if err := l.ready(ctx); err != nil {
		return nil, err
	}

	callCtx, cancel := l.callContext(ctx)
	defer cancel()

	rows, err := l.store.readRows(callCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrLedgerUnavailable, err)
	}

	records := make([]model.OrderRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, decodeRecord(padRow(row)))
	}
	return records, nil
}

func (l *SheetLedger) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.timeout)
}

func encodeRecord(record model.OrderRecord) []string {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	paymentID := record.PaymentID
	if paymentID == "" {
		paymentID = absentPaymentID
	}
	return []string{
		record.OrderID,
		record.CustomerName,
		record.Phone,
		record.Email,
		strconv.Itoa(record.ItemsCount),
		strconv.FormatFloat(record.TotalAmount, 'f', -1, 64),
		string(record.PaymentStatus),
		record.TransactionMode,
		record.OrderDate,
		record.DeliveryAddress,
		paymentID,
		createdAt.Format(time.RFC3339),
	}
}

func decodeRecord(row []string) model.OrderRecord {
	itemsCount, _ := strconv.Atoi(row[colItemsCount])
	totalAmount, _ := strconv.ParseFloat(row[colTotalAmount], 64)
	createdAt, _ := time.Parse(time.RFC3339, row[colCreatedAt])
	paymentID := row[colPaymentID]
	if paymentID == absentPaymentID {
		paymentID = ""
	}
	return model.OrderRecord{
		OrderID:         row[colOrderID],
		CustomerName:    row[colCustomerName],
		Phone:           row[colPhone],
		Email:           row[colEmail],
		ItemsCount:      itemsCount,
		TotalAmount:     totalAmount,
		PaymentStatus:   model.PaymentStatus(row[colPaymentStatus]),
		TransactionMode: row[colTransactionMode],
		OrderDate:       row[colOrderDate],
		DeliveryAddress: row[colDeliveryAddress],
		PaymentID:       paymentID,
		CreatedAt:       createdAt,
	}
}

func padRow(row []string) []string {
	if len(row) >= len(headerRow) {
		return row
	}
	padded := make([]string, len(headerRow))
	copy(padded, row)
	return padded
}
