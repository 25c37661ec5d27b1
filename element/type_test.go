package element

import (
	"testing"
)

func TestTypeStrings(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{NullType, "Null"},
		{IntType, "Int"},
		{StringType, "String"},
		{SymbolType, "Symbol"},
		{SExpType, "SExp"},
		{ListType, "List"},
		{StructType, "Struct"},
		{Type(42), "<unknown type>"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if back != typ {
			t.Errorf("round trip %v -> %q -> %v", typ, d, back)
		}
	}

	var typ Type
	if err := typ.UnmarshalText([]byte("Blob")); err == nil {
		t.Error("UnmarshalText accepted unknown type name")
	}
}

func TestTypeIsContainer(t *testing.T) {
	want := map[Type]bool{
		NullType:   false,
		IntType:    false,
		StringType: false,
		SymbolType: false,
		SExpType:   true,
		ListType:   true,
		StructType: true,
	}
	for _, typ := range Types() {
		if got := typ.IsContainer(); got != want[typ] {
			t.Errorf("%v.IsContainer() = %v, want %v", typ, got, want[typ])
		}
	}
}
