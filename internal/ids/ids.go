// Package ids generates identifiers for new builds and meetups.
package ids

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// fallbackPrefix marks ids produced without a secure random source.
const fallbackPrefix = "id-"

// Generator produces a new unique id on every call.
// Services accept one so tests can inject deterministic ids.
type Generator func() string

// New returns a random (version 4) UUID string.
//
// uuid.NewRandom reads from crypto/rand. If that source is unavailable New
// falls back to "id-" plus the hex digits of a pseudo-random fraction, which
// is unique with high but not cryptographic probability. New never fails.
func New() string {
	u, err := uuid.NewRandom()
	if err != nil {
		return fallback(rand.Float64())
	}
	return u.String()
}

// fallback renders f (in [0, 1)) as "id-" followed by its hexadecimal
// fraction digits, e.g. 0.5 -> "id-8".
func fallback(f float64) string {
	digits := fractionHex(f)
	if digits == "" {
		digits = "0"
	}
	return fallbackPrefix + digits
}

// fractionHex returns the digits after the point of f formatted in base 16.
// A float64 mantissa holds 53 bits, so at most 14 hex digits are produced.
func fractionHex(f float64) string {
	var b strings.Builder
	for i := 0; i < 14 && f > 0; i++ {
		f *= 16
		d := int(f)
		b.WriteString(strconv.FormatInt(int64(d), 16))
		f -= float64(d)
	}
	return b.String()
}
