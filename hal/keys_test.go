package hal

import "testing"

func TestKeyForRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Key
		ok   bool
	}{
		{'0', Key0, true},
		{'9', Key9, true},
		{'+', KeyAdd, true},
		{'-', KeySub, true},
		{'*', KeyMul, true},
		{'x', KeyMul, true},
		{'/', KeyDiv, true},
		{'=', KeyEquals, true},
		{'#', KeyEquals, true},
		{'c', KeyClear, true},
		{'C', KeyClear, true},
		{'q', KeyNone, false},
		{' ', KeyNone, false},
	}
	for _, tc := range cases {
		got, ok := KeyForRune(tc.r)
		if got != tc.want || ok != tc.ok {
			t.Errorf("KeyForRune(%q) = %v, %v; want %v, %v", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestKeyDigit(t *testing.T) {
	for i := 0; i < 10; i++ {
		k := Key0 + Key(i)
		if !k.IsDigit() {
			t.Fatalf("Key%d not a digit", i)
		}
		if got := k.Digit(); got != byte('0'+i) {
			t.Fatalf("Key%d.Digit() = %q", i, got)
		}
	}
	for _, k := range []Key{KeyNone, KeyAdd, KeyClear, KeyEquals} {
		if k.IsDigit() {
			t.Fatalf("%v unexpectedly a digit", k)
		}
	}
}
