package animation

import "testing"

func TestLibraryVariants(t *testing.T) {
	tests := []struct {
		v    Variant
		want int
	}{
		{VariantSix, 6},
		{VariantFive, 5},
	}
	for _, tt := range tests {
		lib := NewLibrary(tt.v)
		if lib.Len() != tt.want {
			t.Errorf("%v: Len() = %d, want %d", tt.v, lib.Len(), tt.want)
		}
		for i, a := range lib.All() {
			if a.ID != ID(i) {
				t.Errorf("%v: entry %d has ID %v", tt.v, i, a.ID)
			}
			if a.Render == nil {
				t.Errorf("%v: entry %d has no routine", tt.v, i)
			}
		}
	}
	if _, ok := NewLibrary(VariantFive).Get(DigitalClock); ok {
		t.Error("five-animation table should not contain the clock")
	}
}

func TestLibraryLookup(t *testing.T) {
	lib := NewLibrary(VariantSix)
	tests := []struct {
		key  string
		want ID
		ok   bool
	}{
		{"circle", Circle, true},
		{"growing_star", GrowingStar, true},
		{"5", DigitalClock, true},
		{"0", Circle, true},
		{"6", 0, false},
		{"-1", 0, false},
		{"spiral", 0, false},
	}
	for _, tt := range tests {
		a, ok := lib.Lookup(tt.key)
		if ok != tt.ok || (ok && a.ID != tt.want) {
			t.Errorf("Lookup(%q) = %v, %v; want %v, %v", tt.key, a.ID, ok, tt.want, tt.ok)
		}
	}
}

func TestNewLibraryOfRenumbers(t *testing.T) {
	lib := NewLibraryOf(Animation{ID: 9, Name: "a"}, Animation{ID: 9, Name: "b"})
	b, ok := lib.Lookup("b")
	if !ok || b.ID != 1 {
		t.Errorf("Lookup(b) = %v, %v; want ID 1", b.ID, ok)
	}
}

func TestIDString(t *testing.T) {
	if Starfield.String() != "starfield" {
		t.Errorf("Starfield.String() = %q", Starfield.String())
	}
	if ID(42).String() != "ID(42)" {
		t.Errorf("ID(42).String() = %q", ID(42).String())
	}
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"five", "5"} {
		if v, ok := ParseVariant(s); !ok || v != VariantFive {
			t.Errorf("ParseVariant(%q) = %v, %v", s, v, ok)
		}
	}
	if _, ok := ParseVariant("seven"); ok {
		t.Error("ParseVariant(seven) should fail")
	}
}
