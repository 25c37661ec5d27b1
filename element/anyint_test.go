package element

import (
	"math/big"
	"testing"
)

func TestAnyIntInlined(t *testing.T) {
	i := Int64(-42)
	if i.IsBig() {
		t.Error("IsBig() = true for inlined value")
	}
	v, ok := i.Int64()
	if !ok || v != -42 {
		t.Errorf("Int64() = %v, %v, want -42, true", v, ok)
	}
	if b, ok := i.Big(); ok || b != nil {
		t.Errorf("Big() = %v, %v, want nil, false", b, ok)
	}
	if got := i.String(); got != "-42" {
		t.Errorf("String() = %q, want %q", got, "-42")
	}
}

func TestAnyIntBig(t *testing.T) {
	// 2^80, wider than any int64
	w := new(big.Int).Lsh(big.NewInt(1), 80)
	i := Big(w)
	if !i.IsBig() {
		t.Error("IsBig() = false for big value")
	}
	if v, ok := i.Int64(); ok {
		t.Errorf("Int64() = %v, true, want false", v)
	}
	b, ok := i.Big()
	if !ok || b.Cmp(w) != 0 {
		t.Errorf("Big() = %v, %v, want %v, true", b, ok, w)
	}
	if got, want := i.String(), w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAnyIntZeroValue(t *testing.T) {
	var i AnyInt
	v, ok := i.Int64()
	if !ok || v != 0 {
		t.Errorf("zero value Int64() = %v, %v, want 0, true", v, ok)
	}
}
