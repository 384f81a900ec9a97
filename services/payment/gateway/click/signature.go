package click

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// SignatureVerifier validates inbound webhook signatures using the shared
// merchant secret. The digest covers the callback fields in the fixed order
// the gateway signs them in.
type SignatureVerifier struct {
	secret string
}

// NewSignatureVerifier creates a verifier bound to the merchant secret
func NewSignatureVerifier(secret string) *SignatureVerifier {
	return &SignatureVerifier{secret: secret}
}

// Verify recomputes the digest for the callback and compares it against the
// caller-supplied signString. Any mismatch means the callback is not
// authentic.
func (v *SignatureVerifier) Verify(req *models.WebhookRequest) bool {
	if req.SignString == "" {
		return false
	}

	payload := fmt.Sprintf("%d%d%s%s%s%d%s",
		req.TransID,
		req.ServiceID,
		v.secret,
		req.MerchantTransID,
		formatAmount(req.Amount),
		req.Action,
		req.SignTime,
	)

	sum := md5.Sum([]byte(payload))
	expected := hex.EncodeToString(sum[:])

	return strings.EqualFold(expected, req.SignString)
}

// formatAmount renders the amount in the gateway's canonical two-decimal form
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
