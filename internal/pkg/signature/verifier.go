package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	domainErrors "github.com/bengalbay/payserver/internal/domain/errors"
)

// Verifier recomputes and checks payment callback signatures using a shared
// secret. The zero secret is a hard failure: verification never succeeds
// without a key.
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier over the shared processor secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign returns the expected hex-encoded HMAC-SHA256 signature for the
// order/payment pair.
func (v *Verifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the expected value for the
// order/payment pair. The comparison is constant-time. An unset secret fails
// closed with ErrMisconfigured.
func (v *Verifier) Verify(orderID, paymentID, signature string) (bool, error) {
	if len(v.secret) == 0 {
		return false, domainErrors.ErrMisconfigured
	}

	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return false, nil
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hmac.Equal(mac.Sum(nil), supplied), nil
}
