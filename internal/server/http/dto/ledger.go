package dto

import (
	"time"

	"github.com/bengalbay/payserver/internal/domain/model"
)

// LogOrderRequest carries a new ledger row.
type LogOrderRequest struct {
	OrderID         string  `json:"orderId"`
	CustomerName    string  `json:"customerName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	ItemsCount      int     `json:"itemsCount"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
	TransactionMode string  `json:"transactionMode"`
	OrderDate       string  `json:"orderDate"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentID       string  `json:"paymentId"`
}

// ToRecord converts the request into the domain record.
func (r LogOrderRequest) ToRecord() model.OrderRecord {
	return model.OrderRecord{
		OrderID:         r.OrderID,
		CustomerName:    r.CustomerName,
		Phone:           r.Phone,
		Email:           r.Email,
		ItemsCount:      r.ItemsCount,
		TotalAmount:     r.TotalAmount,
		PaymentStatus:   model.PaymentStatus(r.PaymentStatus),
		TransactionMode: r.TransactionMode,
		OrderDate:       r.OrderDate,
		DeliveryAddress: r.DeliveryAddress,
		PaymentID:       r.PaymentID,
	}
}

// UpdatePaymentStatusRequest rewrites the payment state of an existing row.
type UpdatePaymentStatusRequest struct {
	OrderID       string `json:"orderId"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentID     string `json:"paymentId"`
}

// OrderRecordResponse is one ledger row on the wire.
type OrderRecordResponse struct {
	OrderID         string  `json:"orderId"`
	CustomerName    string  `json:"customerName"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	ItemsCount      int     `json:"itemsCount"`
	TotalAmount     float64 `json:"totalAmount"`
	PaymentStatus   string  `json:"paymentStatus"`
	TransactionMode string  `json:"transactionMode"`
	OrderDate       string  `json:"orderDate"`
	DeliveryAddress string  `json:"deliveryAddress"`
	PaymentID       string  `json:"paymentId,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// FromRecord converts a domain record to its wire form.
func FromRecord(record model.OrderRecord) OrderRecordResponse {
	createdAt := ""
	if !record.CreatedAt.IsZero() {
		createdAt = record.CreatedAt.Format(time.RFC3339)
	}
	return OrderRecordResponse{
		OrderID:         record.OrderID,
		CustomerName:    record.CustomerName,
		Phone:           record.Phone,
		Email:           record.Email,
		ItemsCount:      record.ItemsCount,
		TotalAmount:     record.TotalAmount,
		PaymentStatus:   string(record.PaymentStatus),
		TransactionMode: record.TransactionMode,
		OrderDate:       record.OrderDate,
		DeliveryAddress: record.DeliveryAddress,
		PaymentID:       record.PaymentID,
		CreatedAt:       createdAt,
	}
}

// ListOrdersResponse is the snapshot of all ledger rows.
type ListOrdersResponse struct {
	Success bool                  `json:"success"`
	Orders  []OrderRecordResponse `json:"orders"`
	Count   int                   `json:"count"`
}

// LedgerStatusResponse reports the outcome of a ledger connectivity check.
type LedgerStatusResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	SheetTitle string `json:"sheetTitle"`
}
