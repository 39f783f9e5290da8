package reactive

// Signal is a plain mutable reactive cell (spec.md §3, §4.1). Signal[T]
// is comparable-constrained so writes can use the host's structural
// equality directly, the same constraint the teacher's
// alien.WriteableSignal[T] and foo.WriteableSignal[T] both carry.
type Signal[T comparable] struct {
	ctx     *Context
	value   T
	version int64

	subsList subsList
	curNode  *node
}

// NewSignal creates a Signal holding initial.
func NewSignal[T comparable](ctx *Context, initial T) *Signal[T] {
	return &Signal[T]{ctx: ctx, value: initial}
}

func (s *Signal[T]) refresh() bool                { return true }
func (s *Signal[T]) versionNow() int64            { return s.version }
func (s *Signal[T]) addSubscriber(n *node)        { s.subsList.insertSub(n) }
func (s *Signal[T]) removeSubscriber(n *node)     { s.subsList.removeSub(n) }
func (s *Signal[T]) currentNode() *node           { return s.curNode }
func (s *Signal[T]) setCurrentNode(n *node)       { s.curNode = n }

// Value performs a tracked read: spec.md §4.1 "read value".
func (s *Signal[T]) Value() T {
	addDependency(s.ctx, s)
	if n := s.curNode; n != nil && n.target == s.ctx.activeConsumer {
		n.version = s.version
	}
	return s.value
}

// Peek reads the stored value without touching the active consumer
// (spec.md §4.1 "peek").
func (s *Signal[T]) Peek() T {
	return s.value
}

// Read adapts Value to the (T, error) shape Computed and the N-ary
// helpers in nary_generated.go read sources through; a Signal read
// can never fail.
func (s *Signal[T]) Read() (T, error) {
	return s.Value(), nil
}

// SetValue writes a new value (spec.md §4.1 "write value").
func (s *Signal[T]) SetValue(v T) error {
	if _, ok := s.ctx.activeConsumer.(computedConsumer); ok {
		return ErrMutationInComputed
	}
	if v == s.value {
		return nil
	}
	if s.ctx.batchIteration > maxBatchIterations {
		return cycleError("signal", s)
	}

	s.value = v
	s.version++

	s.ctx.startBatch()
	for n := s.subsList.head; n != nil; n = n.nextSub {
		n.target.notify()
	}
	return s.ctx.endBatch()
}

// Subscribe registers fn to run once immediately and again whenever
// the value changes, implemented as an Effect whose body reads
// self.value (establishing the subscription) and invokes fn inside
// ctx.Untracked, so reads made by fn create no subscriptions
// (spec.md §4.1 "subscribe(fn)").
func (s *Signal[T]) Subscribe(fn func(T)) func() {
	dispose, _ := NewEffect(s.ctx, func() (Cleanup, error) {
		v := s.Value()
		_ = s.ctx.Untracked(func() error {
			fn(v)
			return nil
		})
		return nil, nil
	})
	return dispose
}

// String renders the stored value's own stringification (spec.md §6).
func (s *Signal[T]) String() string {
	return stringify(s.value)
}
