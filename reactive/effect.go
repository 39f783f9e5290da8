package reactive

// Cleanup is returned by an effect body to be run before the effect's
// next invocation, or when the effect is disposed (spec.md §4.4).
type Cleanup func()

// effectNode is the consumer-side counterpart to Signal/Computed: it
// has a dependency list but no subscribers of its own, and reruns by
// sitting in ctx's pending-effects queue rather than being pulled on
// read.
type effectNode struct {
	ctx *Context
	fn  func() (Cleanup, error)

	cleanup Cleanup
	flags   flags

	depsList depList

	prevConsumer  consumer
	prevUntracked bool

	nextPending *effectNode
}

func (e *effectNode) getFlags() flags  { return e.flags }
func (e *effectNode) setFlags(f flags) { e.flags = f }
func (e *effectNode) deps() *depList   { return &e.depsList }

// notify implements spec.md §4.4 _notify: mark outdated and enqueue
// onto the context's pending-effects queue; the queue itself guards
// against double-enqueueing via NOTIFIED.
func (e *effectNode) notify() {
	e.flags |= fOutdated
	e.ctx.enqueueEffect(e)
}

// needsRecompute reports whether this effect must rerun on the
// current drain pass: either it was marked outdated directly (first
// run, or a write to one of its sources) or needs_to_recompute finds
// a source whose cached version no longer matches.
func (e *effectNode) needsRecompute() bool {
	if e.flags&fOutdated != 0 {
		return true
	}
	return needsToRecompute(e)
}

// startEffect implements the _start half of spec.md §4.4 _callback:
// guards against a still-RUNNING effect being entered again (a write
// during its own body that synchronously re-triggers it would do
// this without the guard) and swaps in this effect as the active
// consumer.
func (e *effectNode) startEffect() error {
	if e.flags&fRunning != 0 {
		return cycleError("effect", e)
	}
	e.flags |= fRunning
	e.prevConsumer = e.ctx.activeConsumer
	e.prevUntracked = e.ctx.untracked
	prepareSources(e)
	e.ctx.activeConsumer = e
	e.ctx.untracked = false
	return nil
}

// endEffect implements the end_effect half: restores the previous
// active consumer, finalizes this run's dependency list, and clears
// RUNNING. ErrOutOfOrderEffect guards a finalizer invoked while some
// other consumer is active, which would only happen if a caller held
// onto and replayed a stale finalizer.
func (e *effectNode) endEffect() error {
	if e.ctx.activeConsumer != e {
		return ErrOutOfOrderEffect
	}
	e.ctx.activeConsumer = e.prevConsumer
	e.ctx.untracked = e.prevUntracked
	e.prevConsumer = nil
	cleanupSources(e)
	e.flags &^= fRunning
	return nil
}

// runGuarded invokes fn, recovering a panic rather than letting it
// unwind through the dependency-tracking bracket in startEffect and
// leave the context's activeConsumer stuck on this effect.
func (e *effectNode) runGuarded() (cleanup Cleanup, err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
		}
	}()
	cleanup, err = e.fn()
	return
}

// callback implements spec.md §4.4 _callback: run the previous
// cleanup, then the body, under the prepare/cleanup sources bracket.
func (e *effectNode) callback(ctx *Context) error {
	if e.cleanup != nil {
		prev := e.cleanup
		e.cleanup = nil
		prev()
	}
	e.flags &^= fOutdated

	if err := e.startEffect(); err != nil {
		return err
	}

	cleanup, err, panicked := e.runGuarded()

	if endErr := e.endEffect(); err == nil {
		err = endErr
	}

	if panicked {
		return ErrEarlyReturnInEffect
	}
	if err != nil {
		e.cleanup = nil
		return wrapUserError(err)
	}
	e.cleanup = cleanup
	return nil
}

// dispose implements spec.md §4.4 _dispose: run the outstanding
// cleanup, detach from every remaining source, and mark DISPOSED so
// a queued-but-not-yet-drained notification is skipped.
func (e *effectNode) dispose() {
	if e.flags&fDisposed != 0 {
		return
	}
	e.flags = (e.flags | fDisposed) &^ fOutdated

	if e.cleanup != nil {
		c := e.cleanup
		e.cleanup = nil
		c()
	}

	for n := e.depsList.head; n != nil; {
		next := n.nextDep
		n.source.removeSubscriber(n)
		e.depsList.spliceOutDep(n)
		n = next
	}
}

// NewEffect creates and immediately runs an effect body. fn returns
// an optional Cleanup to run before the next rerun or on dispose, and
// an error to capture (spec.md §7: an effect's first error aborts
// effect creation, disposes the effect and is returned directly; a
// later rerun's error is surfaced through Batch or the Signal.SetValue
// call whose drain ran it instead). The returned dispose func is
// idempotent.
func NewEffect(ctx *Context, fn func() (Cleanup, error)) (dispose func(), err error) {
	e := &effectNode{ctx: ctx, fn: fn, flags: fOutdated | fTracking}
	if err := e.callback(ctx); err != nil {
		e.dispose()
		return func() {}, err
	}
	return e.dispose, nil
}
