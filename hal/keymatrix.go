package hal

import (
	"fmt"
	"time"
)

// Legend of the 4x4 pad, matching the silkscreen: the letter column selects
// operations, '*' clears, '#' evaluates.
var matrixKeymap = [4][4]Key{
	{Key1, Key2, Key3, KeyAdd},
	{Key4, Key5, Key6, KeySub},
	{Key7, Key8, Key9, KeyMul},
	{KeyClear, Key0, KeyEquals, KeyDiv},
}

// matrixScanner scans a 4x4 key matrix: each row is driven low in turn and
// the pulled-up columns are sampled. A key press shorts its row to its
// column, pulling the column low.
//
// Transitions are debounced; at most one key-down is reported per scan
// pass, and holding a key never repeats.
type matrixScanner struct {
	rows   [4]GPIOPin
	cols   [4]GPIOPin
	keymap [4][4]Key

	now      func() time.Time
	debounce time.Duration

	down   [4][4]bool
	lastAt [4][4]time.Time
}

const matrixDebounce = 20 * time.Millisecond

func newMatrixScanner(rows, cols [4]GPIOPin, keymap [4][4]Key) (*matrixScanner, error) {
	return newMatrixScannerWithClock(rows, cols, keymap, time.Now)
}

func newMatrixScannerWithClock(rows, cols [4]GPIOPin, keymap [4][4]Key, now func() time.Time) (*matrixScanner, error) {
	if now == nil {
		now = time.Now
	}
	for i, p := range rows {
		if p == nil {
			return nil, fmt.Errorf("keymatrix: row %d missing", i)
		}
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, fmt.Errorf("keymatrix: row %s: %w", p.Name(), err)
		}
		if err := p.Write(true); err != nil {
			return nil, fmt.Errorf("keymatrix: row %s: %w", p.Name(), err)
		}
	}
	for i, p := range cols {
		if p == nil {
			return nil, fmt.Errorf("keymatrix: col %d missing", i)
		}
		if err := p.Configure(GPIOModeInput, GPIOPullUp); err != nil {
			return nil, fmt.Errorf("keymatrix: col %s: %w", p.Name(), err)
		}
	}
	return &matrixScanner{
		rows:     rows,
		cols:     cols,
		keymap:   keymap,
		now:      now,
		debounce: matrixDebounce,
	}, nil
}

// scan walks the matrix once and returns the newly pressed key, if any.
func (m *matrixScanner) scan() (Key, bool) {
	var out Key
	var found bool

	for ri := range m.rows {
		if err := m.rows[ri].Write(false); err != nil {
			continue
		}
		for ci := range m.cols {
			level, err := m.cols[ci].Read()
			if err != nil {
				continue
			}
			m.update(ri, ci, !level, &out, &found)
		}
		_ = m.rows[ri].Write(true)
	}
	return out, found
}

func (m *matrixScanner) update(ri, ci int, pressed bool, out *Key, found *bool) {
	if pressed == m.down[ri][ci] {
		return
	}
	now := m.now()
	if now.Sub(m.lastAt[ri][ci]) < m.debounce {
		return
	}
	m.down[ri][ci] = pressed
	m.lastAt[ri][ci] = now

	if pressed && !*found {
		*out = m.keymap[ri][ci]
		*found = true
	}
}
