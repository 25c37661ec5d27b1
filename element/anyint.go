package element

import (
	"math/big"
	"strconv"
)

// AnyInt is the integer payload of an element. Values that fit in 64 bits
// are inlined; anything wider escapes to a big.Int. AnyInt is an opaque
// carrier: it exposes no arithmetic, only access to whichever
// representation the producer chose.
type AnyInt struct {
	i64 int64
	big *big.Int
}

// Int64 returns an AnyInt holding v inline.
func Int64(v int64) AnyInt {
	return AnyInt{i64: v}
}

// Big returns an AnyInt holding v. The caller must not mutate v afterwards.
func Big(v *big.Int) AnyInt {
	return AnyInt{big: v}
}

// IsBig reports whether the payload is held as a big.Int.
func (i AnyInt) IsBig() bool {
	return i.big != nil
}

// Int64 returns the inlined value, or false if the payload is big.
func (i AnyInt) Int64() (int64, bool) {
	if i.big != nil {
		return 0, false
	}
	return i.i64, true
}

// Big returns the big payload, or false if the value is inlined. The
// returned big.Int must not be mutated.
func (i AnyInt) Big() (*big.Int, bool) {
	if i.big == nil {
		return nil, false
	}
	return i.big, true
}

func (i AnyInt) String() string {
	if i.big != nil {
		return i.big.String()
	}
	return strconv.FormatInt(i.i64, 10)
}
