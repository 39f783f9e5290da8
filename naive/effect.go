package naive

// Effect reruns fn on every full registry pass for as long as it is
// registered.
type Effect struct {
	sys       *System
	fn        func()
	EvalCount int
}

// NewEffect registers and runs fn once immediately, returning a
// disposer that deregisters it.
func NewEffect(sys *System, fn func()) func() {
	e := &Effect{sys: sys, fn: fn}
	sys.register(e)
	e.eval()
	return func() { sys.remove(e) }
}

func (e *Effect) eval() {
	e.EvalCount++
	e.fn()
}
