package model

import "time"

// OrderRequest carries the client's parameters for a new payment order.
// Amount is in the smallest currency unit (paise for INR).
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

// OrderHandle is the processor's order entity. It is issued by the payment
// processor and forwarded to the client verbatim; nothing here is mutated
// locally.
type OrderHandle struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

// PaymentCallback is the completion triple the client returns after a payment
// attempt. It is transient and never persisted.
type PaymentCallback struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PaymentStatus enumerates the ledger's view of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Valid reports whether the status is one of the known ledger states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// OrderRecord is a single ledger row. OrderID is the natural key; at most one
// row per order id is expected.
type OrderRecord struct {
	OrderID         string
	CustomerName    string
	Phone           string
	Email           string
	ItemsCount      int
	TotalAmount     float64
	PaymentStatus   PaymentStatus
	TransactionMode string
	OrderDate       string
	DeliveryAddress string
	PaymentID       string
	CreatedAt       time.Time
}
