//go:build !tinygo

package hal

type hostKeypad struct {
	ch chan Key
}

func newHostKeypad() *hostKeypad {
	return &hostKeypad{ch: make(chan Key, 64)}
}

func (k *hostKeypad) Keys() <-chan Key { return k.ch }

// push queues a key, dropping it if the buffer is full. Used by the input
// poll and by the headless key script.
func (k *hostKeypad) push(key Key) {
	if key == KeyNone {
		return
	}
	select {
	case k.ch <- key:
	default:
	}
}
