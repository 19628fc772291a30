package order

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	idPrefix     = "ord_"
	idSuffixLen  = 9
	base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// NewID returns ord_<unix millis>_<9 random base36 chars>.
func NewID(now time.Time) string {
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36Digits[rand.IntN(len(base36Digits))]
	}
	return idPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "_" + string(suffix)
}
