package reactive

// appendDep appends n to the tail of d, linking prevDep/nextDep.
func (d *depList) appendDep(n *node) {
	n.prevDep = d.tail
	n.nextDep = nil
	if d.tail != nil {
		d.tail.nextDep = n
	} else {
		d.head = n
	}
	d.tail = n
}

// spliceOutDep unlinks n from d without touching its subs-list links.
func (d *depList) spliceOutDep(n *node) {
	if n.prevDep != nil {
		n.prevDep.nextDep = n.nextDep
	} else {
		d.head = n.nextDep
	}
	if n.nextDep != nil {
		n.nextDep.prevDep = n.prevDep
	} else {
		d.tail = n.prevDep
	}
	n.prevDep = nil
	n.nextDep = nil
}

// insertSub inserts n at the head of s, guarding against double
// insertion: spec.md §9 design note (3) preserves the teacher's
// "targets != node && node.prevTarget.nil?" guard verbatim.
func (s *subsList) insertSub(n *node) {
	if s.head == n || n.prevSub != nil {
		return
	}
	n.prevSub = nil
	n.nextSub = s.head
	if s.head != nil {
		s.head.prevSub = n
	} else {
		s.tail = n
	}
	s.head = n
}

// removeSub unlinks n from s.
func (s *subsList) removeSub(n *node) {
	if n.prevSub != nil {
		n.prevSub.nextSub = n.nextSub
	} else if s.head == n {
		s.head = n.nextSub
	}
	if n.nextSub != nil {
		n.nextSub.prevSub = n.prevSub
	} else if s.tail == n {
		s.tail = n.prevSub
	}
	n.prevSub = nil
	n.nextSub = nil
}

// addDependency implements spec.md §4.2 add_dependency. ctx.activeConsumer
// is the active consumer; if none, it is a no-op.
func addDependency(ctx *Context, source dependency) {
	target := ctx.activeConsumer
	if target == nil {
		return
	}

	existing := source.currentNode()

	switch {
	case existing == nil || existing.target != target:
		// Fresh edge.
		n := &node{source: source, target: target, version: 0}
		n.rollback = source.currentNode()
		target.deps().appendDep(n)
		source.setCurrentNode(n)
		if target.getFlags()&fTracking != 0 {
			source.addSubscriber(n)
		}

	case existing.version == versionUnset:
		// Reused edge from this run's prepareSources pass.
		existing.version = 0
		if existing != target.deps().tail {
			target.deps().spliceOutDep(existing)
			target.deps().appendDep(existing)
		}

	default:
		// Already current: no-op.
	}
}

// prepareSources implements spec.md §4.3 prepare_sources: primes every
// dependency node so that reads during the upcoming compute pass reuse
// existing nodes rather than allocating fresh ones.
func prepareSources(target consumer) {
	for n := target.deps().head; n != nil; n = n.nextDep {
		n.rollback = n.source.currentNode()
		n.source.setCurrentNode(n)
		n.version = versionUnset
	}
}

// cleanupSources implements spec.md §4.3 cleanup_sources: walks the
// dependency list, dropping any node that was not re-confirmed during
// the compute pass just finished (version still versionUnset means the
// source was not read this run) and restoring every source's scratch
// current-node slot. By the time cleanup runs the list is no longer
// being mutated, so a single forward pass visits every node exactly
// once regardless of how addDependency reordered reused nodes during
// the run.
func cleanupSources(target consumer) {
	n := target.deps().head
	for n != nil {
		next := n.nextDep
		if n.version == versionUnset {
			n.source.removeSubscriber(n)
			target.deps().spliceOutDep(n)
		}
		n.source.setCurrentNode(n.rollback)
		n.rollback = nil
		n = next
	}
}
