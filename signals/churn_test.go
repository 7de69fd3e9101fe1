package signals_test

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotparty/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type churnSlot struct {
	id       int
	priority int
	conn     signals.Connection
}

type churn struct {
	t     *testing.T
	rng   *rand.Rand
	sig   signals.Void0
	slots map[int]*churnSlot
	live  mapset.Set[int]
	off   mapset.Set[int]
	order *xxhash.Digest

	nextID  int
	invoked []int
	quiet   bool
}

func newChurn(t *testing.T, seed int64) *churn {
	return &churn{
		t:     t,
		rng:   rand.New(rand.NewSource(seed)),
		slots: map[int]*churnSlot{},
		live:  mapset.NewThreadUnsafeSet[int](),
		off:   mapset.NewThreadUnsafeSet[int](),
		order: xxhash.New(),
	}
}

func (c *churn) connect() {
	s := &churnSlot{id: c.nextID, priority: c.rng.Intn(5) - 2}
	c.nextID++
	s.conn = c.sig.ConnectPriority(s.priority, func() { c.call(s) })
	c.slots[s.id] = s
	c.live.Add(s.id)
}

func (c *churn) disconnect(id int) {
	assert.Equal(c.t, c.live.Contains(id), c.slots[id].conn.Disconnect())
	c.live.Remove(id)
	c.off.Remove(id)
}

func (c *churn) pick() (int, bool) {
	if c.live.Cardinality() == 0 {
		return 0, false
	}
	ids := c.live.ToSlice()
	lo := ids[0]
	for _, id := range ids {
		if id < lo {
			lo = id
		}
	}
	// set iteration order is random, so pick relative to a stable ordering
	n := c.rng.Intn(len(ids))
	for id := lo; ; id++ {
		if !c.live.Contains(id) {
			continue
		}
		if n == 0 {
			return id, true
		}
		n--
	}
}

func (c *churn) call(s *churnSlot) {
	require.True(c.t, c.live.Contains(s.id), "slot %d invoked after disconnect", s.id)
	require.False(c.t, c.off.Contains(s.id), "slot %d invoked while disabled", s.id)
	c.invoked = append(c.invoked, s.id)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(s.id))
	c.order.Write(buf[:])

	if c.quiet || c.rng.Intn(4) != 0 {
		return
	}
	if id, ok := c.pick(); ok {
		if c.rng.Intn(2) == 0 {
			c.disconnect(id)
		} else {
			c.slots[id].conn.Disable()
			c.off.Add(id)
		}
	}
}

func (c *churn) emit() {
	before := c.live.Difference(c.off)
	c.invoked = c.invoked[:0]
	c.sig.Emit()

	seen := mapset.NewThreadUnsafeSet[int]()
	lastPriority := 1 << 30
	for _, id := range c.invoked {
		assert.False(c.t, seen.Contains(id), "slot %d invoked twice", id)
		seen.Add(id)
		p := c.slots[id].priority
		assert.LessOrEqual(c.t, p, lastPriority, "priority order")
		lastPriority = p
	}

	untouched := before.Intersect(c.live.Difference(c.off))
	assert.True(c.t, untouched.IsSubset(seen), "missed %v", untouched.Difference(seen))
	assert.Equal(c.t, c.live.Cardinality(), c.sig.NumSlots())
}

func (c *churn) run(rounds int) uint64 {
	for i := 0; i < 16; i++ {
		c.connect()
	}
	for round := 0; round < rounds; round++ {
		for n := c.rng.Intn(4); n > 0; n-- {
			c.connect()
		}
		if c.rng.Intn(3) == 0 {
			if id, ok := c.pick(); ok && c.off.Contains(id) {
				c.slots[id].conn.Enable()
				c.off.Remove(id)
			}
		}
		c.emit()
	}
	return c.order.Sum64()
}

func TestChurn(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		first := newChurn(t, seed).run(200)
		second := newChurn(t, seed).run(200)
		assert.Equal(t, first, second, "seed %d is not deterministic", seed)
	}
}

func TestChurnEnableRestoresOrder(t *testing.T) {
	c := newChurn(t, 3)
	c.quiet = true
	for i := 0; i < 8; i++ {
		c.connect()
	}
	for id := range c.slots {
		c.slots[id].conn.Disable()
		c.off.Add(id)
	}
	c.sig.Emit()
	require.Empty(t, c.invoked)

	for id := range c.slots {
		c.slots[id].conn.Enable()
		c.off.Remove(id)
	}
	c.emit()
	assert.Len(t, c.invoked, 8)
}
