//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll translates this frame's keyboard input into pad keys. Digits and
// operator characters come in as typed runes (which covers the numpad too);
// Enter doubles as '=' and Escape/Backspace as clear.
func (k *hostKeypad) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if key, ok := KeyForRune(r); ok {
			k.push(key)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		k.push(KeyEquals)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		k.push(KeyClear)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		k.push(KeyClear)
	}
}
