package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringFns(head *link[int]) []int {
	fns := []int{}
	for l := head.next; l != head; l = l.next {
		fns = append(fns, l.fn)
	}
	return fns
}

func TestLinkRefCounts(t *testing.T) {
	l := newLink[int]()
	assert.Equal(t, 1, l.refs)
	assert.True(t, l.isEnabled())

	head := newHead[int]()
	assert.Equal(t, 2, head.refs)
	assert.Same(t, head, head.next)
	assert.Same(t, head, head.prev)

	l.decrRef()
	assert.True(t, l.released())
	assert.PanicsWithValue(t, "signals: reference to released link", l.incrRef)
	assert.PanicsWithValue(t, "signals: link reference count underflow", l.decrRef)
}

func TestLinkEnableDisable(t *testing.T) {
	l := newLink[int]()
	l.disable()
	assert.False(t, l.isEnabled())
	l.enable()
	assert.True(t, l.isEnabled())
}

func TestLinkAddBefore(t *testing.T) {
	head := newHead[int]()
	for i := 1; i <= 3; i++ {
		head.addBefore(i)
	}
	assert.Equal(t, []int{1, 2, 3}, ringFns(head))
	assert.Equal(t, 3, head.prev.fn)
	assert.False(t, head.hasFn)
}

func TestLinkUnlinkKeepsNeighbours(t *testing.T) {
	head := newHead[int]()
	a := head.addBefore(1)
	b := head.addBefore(2)
	c := head.addBefore(3)

	b.unlink()
	assert.True(t, b.released())
	assert.False(t, b.hasFn)
	assert.Same(t, c, b.next)
	assert.Same(t, a, b.prev)
	assert.Equal(t, []int{1, 3}, ringFns(head))
}

func TestLinkRemoveSibling(t *testing.T) {
	head := newHead[int]()
	a := head.addBefore(1)
	b := head.addBefore(2)

	assert.True(t, head.removeSibling(&b.linkBase))
	assert.False(t, head.removeSibling(&b.linkBase), "already removed")
	assert.False(t, head.removeSibling(&newLink[int]().linkBase), "not a member")
	assert.Equal(t, []int{1}, ringFns(head))
	assert.Equal(t, 1, a.refs)
}

func TestLinkAdvanceSkipsReleased(t *testing.T) {
	head := newHead[int]()
	a := head.addBefore(1)
	b := head.addBefore(2)
	c := head.addBefore(3)
	d := head.addBefore(4)

	// a cursor parked on a keeps it alive while it is unlinked
	a.incrRef()
	a.unlink()
	require.False(t, a.released())

	b.unlink()
	c.unlink()
	assert.Same(t, b, a.next, "a still points at its old successor")
	assert.Same(t, d, a.advance(head))

	d.unlink()
	assert.Same(t, head, a.advance(head))
}

func TestEmitGroupReleasesCursor(t *testing.T) {
	head := newHead[int]()
	a := head.addBefore(1)
	b := head.addBefore(2)

	seen := []int{}
	ok := emitGroup(head, func(fn int) bool {
		seen = append(seen, fn)
		if fn == 1 {
			a.unlink()
		}
		return true
	})

	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, seen)
	assert.True(t, a.released())
	assert.Equal(t, 1, b.refs)
	assert.Equal(t, 2, head.refs)
}

func TestEmitGroupStops(t *testing.T) {
	head := newHead[int]()
	for i := 1; i <= 3; i++ {
		head.addBefore(i)
	}

	seen := []int{}
	ok := emitGroup(head, func(fn int) bool {
		seen = append(seen, fn)
		return fn < 2
	})

	assert.False(t, ok)
	assert.Equal(t, []int{1, 2}, seen)
	for l := head.next; l != head; l = l.next {
		assert.Equal(t, 1, l.refs)
	}
	assert.Equal(t, 2, head.refs)
}

func TestProtoGroupsStaySorted(t *testing.T) {
	var p proto[func()]
	for _, prio := range []int{0, 5, -3, 5, 2, -3, 10} {
		p.ConnectPriority(prio, func() {})
	}

	prios := []int{}
	for _, g := range p.groups {
		prios = append(prios, g.priority)
	}
	assert.Equal(t, []int{10, 5, 2, 0, -3}, prios)
	assert.Equal(t, 7, p.NumSlots())

	p.Close()
	assert.Nil(t, p.groups)
	assert.Nil(t, p.disc)
}
