package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// otpTTL bounds how long an issued verification code stays valid.
const otpTTL = 10 * time.Minute

// generateOTP returns a 6-digit code drawn uniformly from [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// hashOTP computes the deterministic digest stored in place of the code.
// Unsalted on purpose: verification compares digests, and the 10-minute
// window plus 6-digit space make rainbow tables a non-concern. The code is
// a proof-of-mailbox device, not a cryptographic secret.
func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
