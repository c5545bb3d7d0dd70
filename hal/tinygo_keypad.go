//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

// machinePin adapts a machine.Pin to the GPIOPin interface the matrix
// scanner runs on.
type machinePin struct {
	pin  machine.Pin
	name string
}

func (p machinePin) Name() string { return p.name }

func (p machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	switch mode {
	case GPIOModeOutput:
		p.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	case GPIOModeInput:
		switch pull {
		case GPIOPullUp:
			p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		case GPIOPullDown:
			p.pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
		default:
			p.pin.Configure(machine.PinConfig{Mode: machine.PinInput})
		}
	default:
		return ErrNotImplemented
	}
	return nil
}

func (p machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

type matrixKeypad struct {
	ch chan Key
}

func (k *matrixKeypad) Keys() <-chan Key { return k.ch }

// newMatrixKeypad wires the 4x4 pad and starts the scan loop.
func newMatrixKeypad() (*matrixKeypad, error) {
	rows := [4]GPIOPin{
		machinePin{pin: machine.GP9, name: "ROW0"},
		machinePin{pin: machine.GP8, name: "ROW1"},
		machinePin{pin: machine.GP7, name: "ROW2"},
		machinePin{pin: machine.GP6, name: "ROW3"},
	}
	cols := [4]GPIOPin{
		machinePin{pin: machine.GP13, name: "COL0"},
		machinePin{pin: machine.GP12, name: "COL1"},
		machinePin{pin: machine.GP11, name: "COL2"},
		machinePin{pin: machine.GP10, name: "COL3"},
	}

	scanner, err := newMatrixScanner(rows, cols, matrixKeymap)
	if err != nil {
		return nil, err
	}

	k := &matrixKeypad{ch: make(chan Key, 16)}
	go func() {
		for {
			if key, ok := scanner.scan(); ok {
				select {
				case k.ch <- key:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()
	return k, nil
}
