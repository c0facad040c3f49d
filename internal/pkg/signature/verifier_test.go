package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
)

func expectedSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyKnownVector(t *testing.T) {
	v := NewVerifier("s3cr3t")
	sig := expectedSignature("s3cr3t", "order_abc", "pay_xyz")

	ok, err := v.Verify("order_abc", "pay_xyz", sig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected valid signature to verify")
	}
}

func TestVerifyDeterministic(t *testing.T) {
	v := NewVerifier("s3cr3t")
	sig := v.Sign("order_abc", "pay_xyz")

	for i := 0; i < 5; i++ {
		ok, err := v.Verify("order_abc", "pay_xyz", sig)
		if err != nil || !ok {
			t.Fatalf("attempt %d: ok=%v err=%v", i, ok, err)
		}
	}
}

func TestVerifyRejectsNearMiss(t *testing.T) {
	v := NewVerifier("s3cr3t")
	sig := v.Sign("order_abc", "pay_xyz")

	// Flipping any single hex digit must flip the result.
	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == '0' {
			mutated[i] = '1'
		} else {
			mutated[i] = '0'
		}
		ok, err := v.Verify("order_abc", "pay_xyz", string(mutated))
		if err != nil {
			t.Fatalf("unexpected error at byte %d: %v", i, err)
		}
		if ok {
			t.Fatalf("mutated signature at byte %d verified", i)
		}
	}
}

func TestVerifyRejectsWrongInputs(t *testing.T) {
	v := NewVerifier("s3cr3t")
	sig := v.Sign("order_abc", "pay_xyz")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
	}{
		{name: "wrong order", orderID: "order_def", paymentID: "pay_xyz", signature: sig},
		{name: "wrong payment", orderID: "order_abc", paymentID: "pay_123", signature: sig},
		{name: "not hex", orderID: "order_abc", paymentID: "pay_xyz", signature: "zzzz"},
		{name: "empty", orderID: "order_abc", paymentID: "pay_xyz", signature: ""},
		{name: "truncated", orderID: "order_abc", paymentID: "pay_xyz", signature: sig[:32]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.Verify(tt.orderID, tt.paymentID, tt.signature)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Fatal("expected mismatch")
			}
		})
	}
}

func TestVerifyFailsClosedWithoutSecret(t *testing.T) {
	v := NewVerifier("")
	sig := expectedSignature("", "order_abc", "pay_xyz")

	ok, err := v.Verify("order_abc", "pay_xyz", sig)
	if !errors.Is(err, domainErrors.ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
	if ok {
		t.Fatal("verification must never succeed without a secret")
	}
}

func TestSignMatchesReference(t *testing.T) {
	v := NewVerifier("s3cr3t")
	if got, want := v.Sign("order_abc", "pay_xyz"), expectedSignature("s3cr3t", "order_abc", "pay_xyz"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
