package hal

// Key is a single key symbol from the calculator's control surface.
type Key uint8

const (
	KeyNone Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyAdd
	KeySub
	KeyMul
	KeyDiv
	KeyEquals
	KeyClear
)

// IsDigit reports whether k is one of the digit keys.
func (k Key) IsDigit() bool { return k >= Key0 && k <= Key9 }

// Digit returns the character for a digit key ('0'..'9').
// The result is unspecified for non-digit keys.
func (k Key) Digit() byte { return byte('0') + byte(k-Key0) }

// KeyForRune maps a typed character to a key symbol. It accepts the runes
// produced by a desktop keyboard as well as the glyphs printed on the
// physical pad ('#' evaluates).
func KeyForRune(r rune) (Key, bool) {
	if r >= '0' && r <= '9' {
		return Key0 + Key(r-'0'), true
	}
	switch r {
	case '+':
		return KeyAdd, true
	case '-':
		return KeySub, true
	case '*', 'x', 'X':
		return KeyMul, true
	case '/':
		return KeyDiv, true
	case '=', '#':
		return KeyEquals, true
	case 'c', 'C':
		return KeyClear, true
	}
	return KeyNone, false
}
