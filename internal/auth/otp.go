package auth

import (
	"fmt"
	"math/rand"
	"time"
)

// OTPTTL is how long a generated code stays valid.
const OTPTTL = 10 * time.Minute

// GenerateOTP returns a uniformly drawn 6-digit code as a string.
// Short-lived and single-use; not claimed to be cryptographically strong.
func GenerateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// OTPExpiry returns the expiry timestamp for a code generated now.
func OTPExpiry() time.Time {
	return time.Now().Add(OTPTTL)
}
