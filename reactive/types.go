package reactive

// flags is the bitfield carried on every Computed and Effect. The bit
// names match spec.md's flag word exactly.
type flags uint8

const (
	fRunning flags = 1 << iota
	fNotified
	fOutdated
	fDisposed
	fHasError
	fTracking
)

// versionUnset marks a node as "reused from a previous run, not yet
// confirmed this run" (spec.md §3, Node.version == -1 sentinel).
const versionUnset int64 = -1

// node is an intrusive link record representing one (consumer, source)
// dependency edge. It lives simultaneously in two doubly-linked lists:
// the source's subscriber list (prevSub/nextSub) and the target's
// dependency list (prevDep/nextDep).
type node struct {
	source  dependency
	target  consumer
	version int64

	prevSub, nextSub *node
	prevDep, nextDep *node

	// rollback holds the previous value of source.currentNode while
	// this node is the scratch slot during a re-evaluation pass; see
	// prepareSources/cleanupSources.
	rollback *node
}

// depList is the dependency-list head/tail a consumer owns, in
// first-read order (spec.md §3 invariant 1).
type depList struct {
	head, tail *node
}

// subsList is the subscriber-list head/tail a dependency owns.
type subsList struct {
	head, tail *node
}

// dependency is the capability set a consumer sees its sources
// through: version read, refresh, and subscriber-list membership.
// Signal and Computed both satisfy it; the set is closed (spec.md §9:
// "Implement as a tagged variant behind that capability set, not via
// open inheritance").
type dependency interface {
	// refresh brings the dependency's cached value up to date if it
	// is a Computed; trivially true for a plain Signal. Returns false
	// on a detected cycle.
	refresh() bool
	versionNow() int64

	// addSubscriber/removeSubscriber link or unlink n from this
	// dependency's subscriber list. A Computed overrides these to
	// lazily activate or deactivate its own upstream subscriptions
	// when it gains or loses its last subscriber (spec.md §4.3
	// _subscribe/_unsubscribe); a Signal just links the node.
	addSubscriber(n *node)
	removeSubscriber(n *node)

	currentNode() *node
	setCurrentNode(n *node)
}

// consumer is the capability set a source sees its subscribers
// through: the flag word and the dependency list.
type consumer interface {
	getFlags() flags
	setFlags(f flags)
	deps() *depList
	notify()
}

// ErrorFunc is invoked whenever a deferred effect error can't be
// re-raised synchronously to the caller that triggered it (a batch
// drain runs every notified effect regardless of earlier failures;
// only the first captured error is returned from the Batch or
// Signal.SetValue call that ran the drain, the rest are reported here
// if set).
type ErrorFunc func(err error)
