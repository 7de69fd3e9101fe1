package signals

import "sort"

type group[F any] struct {
	priority int
	head     *link[F]
}

// proto is the dispatch engine behind every generated signal type. F is the
// callback type of the signal.
type proto[F any] struct {
	// sorted by priority, highest first
	groups []group[F]
	disc   *disconnector
}

// Connect adds fn to the default priority group 0.
func (p *proto[F]) Connect(fn F) Connection {
	return p.ConnectPriority(0, fn)
}

// ConnectPriority adds fn to the given priority group. Higher priorities are
// invoked first; within a group callbacks run in connection order.
func (p *proto[F]) ConnectPriority(priority int, fn F) Connection {
	if p.disc == nil {
		p.disc = &disconnector{owner: p}
	}
	head := p.ensureGroup(priority)
	l := head.addBefore(fn)
	return newConnection(p.disc, &l.linkBase, priority)
}

// NumSlots returns the number of connected callbacks, disabled ones included.
func (p *proto[F]) NumSlots() int {
	count := 0
	for _, g := range p.groups {
		for l := g.head.next; l != g.head; l = l.next {
			if l.hasFn {
				count++
			}
		}
	}
	return count
}

// Close disconnects every callback. Connections issued before Close report
// false from Disconnect afterwards. The signal can be connected to again.
func (p *proto[F]) Close() {
	slots := p.NumSlots()
	for _, g := range p.groups {
		head := g.head
		for head.next != head {
			head.next.unlink()
		}
		if head.refs < 2 {
			panic("signals: priority group head lost its references")
		}
		head.decrRef()
		head.decrRef()
	}
	if p.disc != nil {
		p.disc.owner = nil
		p.disc = nil
	}
	Logger().Debug("signal closed", "groups", len(p.groups), "slots", slots)
	p.groups = nil
}

func (p *proto[F]) search(priority int) int {
	return sort.Search(len(p.groups), func(i int) bool {
		return p.groups[i].priority <= priority
	})
}

func (p *proto[F]) ensureGroup(priority int) *link[F] {
	i := p.search(priority)
	if i < len(p.groups) && p.groups[i].priority == priority {
		return p.groups[i].head
	}

	g := group[F]{priority: priority, head: newHead[F]()}
	p.groups = append(p.groups, group[F]{})
	copy(p.groups[i+1:], p.groups[i:])
	p.groups[i] = g
	Logger().Debug("signal priority group created", "priority", priority, "groups", len(p.groups))
	return g.head
}

func (p *proto[F]) disconnect(target *linkBase, priority int) bool {
	i := p.search(priority)
	if i == len(p.groups) || p.groups[i].priority != priority {
		return false
	}
	return p.groups[i].head.removeSibling(target)
}

// emit walks every group from the highest priority down and hands each
// enabled callback to invoke. Emission stops as soon as invoke returns false.
func (p *proto[F]) emit(invoke func(F) bool) {
	i := 0
	for i < len(p.groups) {
		g := p.groups[i]
		if !emitGroup(g.head, invoke) {
			return
		}
		// groups may have been inserted while g was running, so look the
		// successor up by priority rather than by index
		i = sort.Search(len(p.groups), func(j int) bool {
			return p.groups[j].priority < g.priority
		})
	}
}

func emitGroup[F any](head *link[F], invoke func(F) bool) bool {
	keepGoing := true
	l := head
	l.incrRef()
	for {
		if l.hasFn && l.isEnabled() {
			if keepGoing = invoke(l.fn); !keepGoing {
				break
			}
		}

		old := l
		l = old.advance(head)
		l.incrRef()
		old.decrRef()

		if l == head {
			break
		}
	}
	l.decrRef()
	return keepGoing
}
