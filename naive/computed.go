package naive

// Computed recomputes from compute on every full registry pass,
// whether or not any of the values compute happens to read actually
// changed — there is no dependency list to consult, so the only way
// to find out is to run it.
type Computed[T comparable] struct {
	sys       *System
	compute   func() T
	value     T
	EvalCount int
}

// NewComputed registers c and runs compute once immediately so Value
// has something to return before the first write.
func NewComputed[T comparable](sys *System, compute func() T) *Computed[T] {
	c := &Computed[T]{sys: sys, compute: compute}
	sys.register(c)
	c.eval()
	return c
}

func (c *Computed[T]) eval() {
	c.EvalCount++
	c.value = c.compute()
}

// Value settles the registry, then returns the last-computed value.
func (c *Computed[T]) Value() T {
	c.sys.settle()
	return c.value
}
