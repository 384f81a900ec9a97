package click

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// authHeader builds the merchant API authentication header. The digest is
// derived from the current unix timestamp and the secret key, so each header
// is only valid within the provider's acceptance window.
func authHeader(merchantUserID int64, secretKey string, now time.Time) string {
	timestamp := now.Unix()
	sum := sha1.Sum([]byte(fmt.Sprintf("%d%s", timestamp, secretKey)))
	return fmt.Sprintf("%d:%s:%d", merchantUserID, hex.EncodeToString(sum[:]), timestamp)
}
