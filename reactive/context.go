package reactive

// maxBatchIterations bounds runaway feedback within one batch drain
// (spec.md §4.1: "if batch_iteration > 100, fail with CycleDetected").
const maxBatchIterations = 100

// Context is the engine-context of spec.md §2 item 5: the current
// evaluation consumer, batch depth, pending-effects queue head, batch
// iteration counter and an untracked-scope flag. It is addressed through an
// explicit handle rather than a package-level global so independent
// logical contexts (one per request, say) stay disjoint, per spec.md
// §5 and §9 — the same reasoning that makes every constructor in the
// teacher's alien package take a *ReactiveSystem explicitly.
//
// A *Context is not safe for concurrent use by multiple goroutines;
// each logical context is single-threaded per spec.md §5.
type Context struct {
	activeConsumer consumer
	untracked      bool

	batchDepth     int
	batchIteration int

	pendingHead *effectNode
	pendingTail *effectNode

	onError ErrorFunc
}

// NewContext creates a fresh engine context. onError, if non-nil, is
// invoked for every effect error raised during a batch drain beyond
// the first (the first is returned from Batch, or from the
// Signal.SetValue call whose drain raised it, per spec.md §7); it may
// also be nil, in which case later errors are dropped
// silently, matching spec.md's silence on what happens to them.
func NewContext(onError ErrorFunc) *Context {
	return &Context{onError: onError}
}

func (ctx *Context) runningUnderBatch() bool { return ctx.batchDepth > 0 }

// startBatch implements spec.md §4.5 start_batch.
func (ctx *Context) startBatch() { ctx.batchDepth++ }

// endBatch implements spec.md §4.5 end_batch.
func (ctx *Context) endBatch() error {
	if ctx.batchDepth > 1 {
		ctx.batchDepth--
		return nil
	}

	var firstErr error
	for ctx.pendingHead != nil {
		batch := ctx.pendingHead
		ctx.pendingHead = nil
		ctx.pendingTail = nil
		ctx.batchIteration++

		for e := batch; e != nil; {
			next := e.nextPending
			e.nextPending = nil
			e.flags &^= fNotified

			if e.flags&fDisposed == 0 || e.needsRecompute() {
				if err := e.callback(ctx); err != nil {
					if firstErr == nil {
						firstErr = err
					} else if ctx.onError != nil {
						ctx.onError(err)
					}
				}
			}
			e = next
		}
	}

	ctx.batchIteration = 0
	ctx.batchDepth--
	return firstErr
}

// enqueueEffect appends e to the tail of the pending-effects queue if
// it is not already enqueued (spec.md §4.4 _notify), so a drain runs
// effects in the order they were first notified.
func (ctx *Context) enqueueEffect(e *effectNode) {
	if e.flags&fNotified != 0 {
		return
	}
	e.flags |= fNotified
	e.nextPending = nil
	if ctx.pendingTail != nil {
		ctx.pendingTail.nextPending = e
	} else {
		ctx.pendingHead = e
	}
	ctx.pendingTail = e
}

// Batch implements spec.md §4.5 batch(fn): writes inside fn are
// permitted but effect notifications are deferred until the outermost
// Batch call returns.
func (ctx *Context) Batch(fn func() error) (err error) {
	if ctx.runningUnderBatch() {
		return fn()
	}
	ctx.startBatch()
	defer func() {
		if drainErr := ctx.endBatch(); err == nil {
			err = drainErr
		}
	}()
	return fn()
}

// Untracked implements spec.md §4.5 untracked(fn): reads inside fn do
// not create subscriptions.
func (ctx *Context) Untracked(fn func() error) error {
	if ctx.untracked {
		return fn()
	}
	prevConsumer := ctx.activeConsumer
	ctx.untracked = true
	ctx.activeConsumer = nil
	defer func() {
		ctx.activeConsumer = prevConsumer
		ctx.untracked = false
	}()
	return fn()
}
