package dto

// VerifyPaymentRequest is the completion triple the client returns after a
// payment attempt. Field names follow the processor's checkout callback.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
