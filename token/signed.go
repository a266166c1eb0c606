package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Email-verification links carry an expiry timestamp and an HMAC signature
// over it, so the link proves it was issued by us and has not been altered.

func verificationPayload(userID uint, expires int64) []byte {
	return []byte(fmt.Sprintf("verify-email|%d|%d", userID, expires))
}

func sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// SignVerificationURL builds the signed, expiring link sent to a new account.
func SignVerificationURL(secret, apiBaseURL string, userID uint, ttl time.Duration) string {
	expires := time.Now().Add(ttl).Unix()
	signature := sign(secret, verificationPayload(userID, expires))
	return fmt.Sprintf("%s/api/v1/verify-email/%d?expires=%d&signature=%s",
		apiBaseURL, userID, expires, signature)
}

// CheckSignature reports whether a presented verification link is genuine
// and still inside its validity window.
func CheckSignature(secret string, userID uint, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := sign(secret, verificationPayload(userID, expires))
	return hmac.Equal([]byte(expected), []byte(signature))
}
