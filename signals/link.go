package signals

import "reflect"

// linkBase carries the reference count and enabled flag shared by every
// link, whatever its callback type. Connections point at it.
type linkBase struct {
	refs    int
	enabled bool
}

func (l *linkBase) incrRef() {
	if l.refs <= 0 {
		panic("signals: reference to released link")
	}
	l.refs++
}

func (l *linkBase) decrRef() {
	l.refs--
	if l.refs < 0 {
		panic("signals: link reference count underflow")
	}
}

func (l *linkBase) released() bool {
	return l.refs == 0
}

func (l *linkBase) enable()         { l.enabled = true }
func (l *linkBase) disable()        { l.enabled = false }
func (l *linkBase) isEnabled() bool { return l.enabled }

// link is one node of a priority group's ring. The head of every ring has
// no callback and is never unlinked while its signal is open.
type link[F any] struct {
	linkBase
	next, prev *link[F]
	fn         F
	hasFn      bool
}

func newLink[F any]() *link[F] {
	return &link[F]{linkBase: linkBase{refs: 1, enabled: true}}
}

// newHead returns a ring of one with two references: the ring and the
// group table.
func newHead[F any]() *link[F] {
	head := newLink[F]()
	head.incrRef()
	head.next = head
	head.prev = head
	return head
}

// isNilFunc reports whether fn holds no callback.
func isNilFunc[F any](fn F) bool {
	v := reflect.ValueOf(fn)
	return !v.IsValid() || (v.Kind() == reflect.Func && v.IsNil())
}

// addBefore inserts fn just before l. Called on a head, that is the tail of
// the ring. A nil fn still takes a place in the ring but is never invoked or
// counted.
func (l *link[F]) addBefore(fn F) *link[F] {
	n := newLink[F]()
	n.fn = fn
	n.hasFn = !isNilFunc(fn)

	n.prev = l.prev
	n.next = l
	l.prev.next = n
	l.prev = n
	return n
}

// unlink clears the callback and splices l out of its ring. next and prev
// stay as they are so a cursor parked on l can still move on.
func (l *link[F]) unlink() {
	var zero F
	l.fn = zero
	l.hasFn = false
	if l.next != nil {
		l.next.prev = l.prev
	}
	if l.prev != nil {
		l.prev.next = l.next
	}
	l.decrRef()
}

func (l *link[F]) removeSibling(target *linkBase) bool {
	for n := l.next; n != l; n = n.next {
		if &n.linkBase == target {
			n.unlink()
			return true
		}
	}
	return false
}

// advance returns the link after l, stepping over links released while a
// cursor was parked behind them.
func (l *link[F]) advance(head *link[F]) *link[F] {
	n := l.next
	for n != head && n.released() {
		n = n.next
	}
	return n
}
