package validate

import (
	"crypto/rand"
	"math/big"

	"github.com/ShiraazMoollatjie/goluhn"
)

const codeLength = 10

// Referral codes are numeric strings with a Luhn check digit, so an
// obviously mistyped code is rejected before a store round trip.

func IsReferralCode(s string) bool {
	if len(s) != codeLength {
		return false
	}
	return goluhn.Validate(s) == nil
}

func NewReferralCode() string {
	digits := make([]byte, codeLength-1)
	for i := range digits {
		n, _ := rand.Int(rand.Reader, big.NewInt(10))
		digits[i] = byte('0' + n.Int64())
	}
	body := string(digits)
	for d := byte('0'); d <= '9'; d++ {
		code := body + string(d)
		if goluhn.Validate(code) == nil {
			return code
		}
	}
	return body + "0"
}
