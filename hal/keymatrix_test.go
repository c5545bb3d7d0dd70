package hal

import (
	"testing"
	"time"
)

// testCol models a matrix column with a pull-up: it reads low only while
// some pressed key connects it to a row that is currently driven low.
type testCol struct {
	name    string
	col     int
	rows    *[4]GPIOPin
	pressed *[4][4]bool
}

func (c *testCol) Name() string   { return c.name }
func (c *testCol) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (c *testCol) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return ErrNotImplemented
	}
	return nil
}

func (c *testCol) Read() (bool, error) {
	for ri := range c.rows {
		level, err := c.rows[ri].Read()
		if err != nil {
			return false, err
		}
		if !level && c.pressed[ri][c.col] {
			return false, nil
		}
	}
	return true, nil
}

func (c *testCol) Write(level bool) error { return ErrNotImplemented }

func newTestMatrix(t *testing.T, now func() time.Time) (*matrixScanner, *[4][4]bool) {
	t.Helper()

	var rows [4]GPIOPin
	for i := range rows {
		rows[i] = newVirtualPin("ROW", GPIOCapInput|GPIOCapOutput)
	}

	var pressed [4][4]bool
	var cols [4]GPIOPin
	for i := range cols {
		cols[i] = &testCol{name: "COL", col: i, rows: &rows, pressed: &pressed}
	}

	m, err := newMatrixScannerWithClock(rows, cols, matrixKeymap, now)
	if err != nil {
		t.Fatalf("newMatrixScannerWithClock: %v", err)
	}
	return m, &pressed
}

func TestMatrixScanSingleShot(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	m, pressed := newTestMatrix(t, clock)

	if k, ok := m.scan(); ok {
		t.Fatalf("idle scan reported key %v", k)
	}

	pressed[1][1] = true // '5'
	now = now.Add(50 * time.Millisecond)
	k, ok := m.scan()
	if !ok || k != Key5 {
		t.Fatalf("scan = %v, %v; want Key5 press", k, ok)
	}

	// Held key must not repeat.
	now = now.Add(50 * time.Millisecond)
	if k, ok := m.scan(); ok {
		t.Fatalf("held key repeated as %v", k)
	}

	// Release emits nothing; the next press fires again.
	pressed[1][1] = false
	now = now.Add(50 * time.Millisecond)
	if k, ok := m.scan(); ok {
		t.Fatalf("release reported key %v", k)
	}
	pressed[1][1] = true
	now = now.Add(50 * time.Millisecond)
	if k, ok := m.scan(); !ok || k != Key5 {
		t.Fatalf("second press: scan = %v, %v; want Key5", k, ok)
	}
}

func TestMatrixScanDebounce(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }
	m, pressed := newTestMatrix(t, clock)

	pressed[0][0] = true // '1'
	now = now.Add(50 * time.Millisecond)
	if k, ok := m.scan(); !ok || k != Key1 {
		t.Fatalf("scan = %v, %v; want Key1", k, ok)
	}

	// Contact bounce: release and press again within the debounce window.
	pressed[0][0] = false
	now = now.Add(2 * time.Millisecond)
	if _, ok := m.scan(); ok {
		t.Fatal("bounce release reported a key")
	}
	pressed[0][0] = true
	now = now.Add(2 * time.Millisecond)
	if k, ok := m.scan(); ok {
		t.Fatalf("bounce press reported key %v", k)
	}
}

func TestMatrixKeymapCorners(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	cases := []struct {
		row, col int
		want     Key
	}{
		{0, 3, KeyAdd},
		{3, 0, KeyClear},
		{3, 2, KeyEquals},
		{3, 3, KeyDiv},
	}
	for _, tc := range cases {
		m, pressed := newTestMatrix(t, clock)
		pressed[tc.row][tc.col] = true
		now = now.Add(50 * time.Millisecond)
		k, ok := m.scan()
		if !ok || k != tc.want {
			t.Errorf("key at (%d,%d): scan = %v, %v; want %v", tc.row, tc.col, k, ok, tc.want)
		}
	}
}
