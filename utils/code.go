package utils

import (
	"fmt"
	"math/rand"
)

// GenerateVerificationCode returns a uniformly random 6-digit code,
// left-zero-padded (000000-999999). Codes are short-lived and single-use, so
// a non-cryptographic source is acceptable here.
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
