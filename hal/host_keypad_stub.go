//go:build !tinygo && !cgo

package hal

func (k *hostKeypad) poll() {}
