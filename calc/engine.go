// Package calc implements the calculator's input-accumulation and
// expression-evaluation state machine: digits build up an editable operand,
// choosing an operator parks it as the left-hand side, and a second
// operator or equals collapses the pair into a result.
package calc

import "nanocalc/hal"

// MaxDigits bounds the length of a typed operand. Further digits are
// silently dropped.
const MaxDigits = 10

// Op is a pending arithmetic operator.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// Glyph returns the single-character display form of the operator.
func (o Op) Glyph() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "x"
	case OpDiv:
		return "/"
	}
	return ""
}

// Engine owns all calculator state. It performs no I/O and never fails:
// events that make no sense in the current state are ignored. Feed it from
// a single goroutine.
type Engine struct {
	current string
	pending string
	op      Op

	// fresh marks current as a finished result; the next digit starts a
	// new calculation instead of appending.
	fresh bool
}

// New returns an empty engine.
func New() *Engine { return &Engine{} }

// Snapshot returns the displayable state: the parked left-hand operand,
// the pending operator and the operand being edited.
func (e *Engine) Snapshot() (pending string, op Op, current string) {
	return e.pending, e.op, e.current
}

// HandleKey folds one key event into the engine state.
func (e *Engine) HandleKey(k hal.Key) {
	switch {
	case k.IsDigit():
		e.digit(k.Digit())
	case k == hal.KeyAdd:
		e.setOperator(OpAdd)
	case k == hal.KeySub:
		e.setOperator(OpSub)
	case k == hal.KeyMul:
		e.setOperator(OpMul)
	case k == hal.KeyDiv:
		e.setOperator(OpDiv)
	case k == hal.KeyEquals:
		e.evaluate()
	case k == hal.KeyClear:
		e.clear()
	}
}

func (e *Engine) digit(d byte) {
	if e.fresh {
		e.current = ""
		e.pending = ""
		e.op = OpNone
		e.fresh = false
	}
	if len(e.current) < MaxDigits {
		e.current += string(rune(d))
	}
}

func (e *Engine) setOperator(op Op) {
	if e.current == "" && e.pending == "" {
		return
	}
	if e.current != "" {
		// Chaining ("1+2+"): collapse the pending pair first, then park
		// the result as the new left-hand side.
		if e.pending != "" && e.op != OpNone {
			e.evaluate()
		}
		e.pending = e.current
		e.current = ""
	}
	// current empty with a parked operand just replaces the operator.
	e.op = op
	e.fresh = false
}

func (e *Engine) evaluate() {
	if e.pending == "" || e.current == "" || e.op == OpNone {
		return
	}
	a := ParseOperand(e.pending)
	b := ParseOperand(e.current)
	e.current = FormatResult(Apply(e.op, a, b))
	e.pending = ""
	e.op = OpNone
	e.fresh = true
}

// clear wipes operands and operator. It leaves fresh alone: with both
// operands empty the flag has nothing left to clear on entry anyway.
func (e *Engine) clear() {
	e.current = ""
	e.pending = ""
	e.op = OpNone
}
