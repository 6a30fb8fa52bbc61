package saynumber

import (
	"fmt"
	"math/rand"
	"time"
)

// RandomNumeral returns a random numeral with exactly digits digits.
// A nil r uses a time seeded source.
func RandomNumeral(digits int, r *rand.Rand) (string, error) {
	if digits < 1 {
		return "", fmt.Errorf("%w: %d digits, must be 1 or greater", ErrOutOfRange, digits)
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	numeral := make([]byte, digits)
	numeral[0] = byte('1' + r.Intn(9))
	for i := 1; i < digits; i++ {
		numeral[i] = byte('0' + r.Intn(10))
	}
	return string(numeral), nil
}
