package coinbase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// timestamp returns the current time as fractional seconds since the epoch,
// the format the exchange expects in CB-ACCESS-TIMESTAMP. Signatures are only
// valid within 30 seconds of this value.
func timestamp() string {
	return strconv.FormatFloat(float64(time.Now().UnixNano())/1e9, 'f', 3, 64)
}

// sign computes the CB-ACCESS-SIGN header: the base64-encoded HMAC-SHA256 of
// timestamp+method+requestPath+body, keyed with the base64-decoded API secret.
// requestPath must include the query string when there is one.
func sign(secret, timestamp, method, requestPath, body string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return "", fmt.Errorf("coinbase: decode api secret: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp + method + requestPath + body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
