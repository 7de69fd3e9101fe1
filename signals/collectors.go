package signals

// Void is the result type seen by collectors of signals whose callbacks
// return nothing.
type Void = struct{}

// Collector receives the result of every invoked callback during one
// emission. Returning false stops the emission.
type Collector[R any] interface {
	Collect(result R) bool
}

// Accumulator is a Collector that also reports a combined result.
type Accumulator[R, T any] interface {
	Collector[R]
	Result() T
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Last keeps the result of the last callback and never stops early.
type Last[R any] struct {
	last R
}

func (c *Last[R]) Collect(r R) bool {
	c.last = r
	return true
}

func (c *Last[R]) Result() R { return c.last }

// Default is the collector used by Emit.
type Default[R any] struct {
	Last[R]
}

// Until0 keeps emitting while callbacks return non-zero values and stops at
// the first zero value, which becomes the result.
type Until0[R comparable] struct {
	result R
}

func (c *Until0[R]) Collect(r R) bool {
	var zero R
	c.result = r
	return r != zero
}

func (c *Until0[R]) Result() R { return c.result }

// While0 keeps emitting while callbacks return zero values and stops at the
// first non-zero value, which becomes the result.
type While0[R comparable] struct {
	result R
}

func (c *While0[R]) Collect(r R) bool {
	var zero R
	c.result = r
	return r == zero
}

func (c *While0[R]) Result() R { return c.result }

// BooleanAnd reports whether every callback returned true. All callbacks
// run; with none connected the result is true.
type BooleanAnd struct {
	failed bool
}

func (c *BooleanAnd) Collect(r bool) bool {
	c.failed = c.failed || !r
	return true
}

func (c *BooleanAnd) Result() bool { return !c.failed }

// BitwiseAnd ANDs every result together, starting from the first one. All
// callbacks run; with none connected the result is 0.
type BitwiseAnd[R Integer] struct {
	result R
	seen   bool
}

func (c *BitwiseAnd[R]) Collect(r R) bool {
	if !c.seen {
		c.seen = true
		c.result = r
	} else {
		c.result &= r
	}
	return true
}

func (c *BitwiseAnd[R]) Result() R { return c.result }

// Vector returns every result in invocation order.
type Vector[R any] struct {
	results []R
}

func (c *Vector[R]) Collect(r R) bool {
	c.results = append(c.results, r)
	return true
}

func (c *Vector[R]) Result() []R { return c.results }

// lastAs backs a CollectedN that was not built by NewCollectedN. It keeps
// the last result and returns it when T is R, the zero T otherwise.
type lastAs[R, T any] struct {
	Last[R]
}

func (c *lastAs[R, T]) Result() T {
	t, _ := any(c.last).(T)
	return t
}

func accumulator[R, T any](newCollector func() Accumulator[R, T]) Accumulator[R, T] {
	if newCollector == nil {
		return &lastAs[R, T]{}
	}
	return newCollector()
}

// Factories for NewCollectedN.

func CollectLast[R any]() Accumulator[R, R] {
	return &Last[R]{}
}

func CollectDefault[R any]() Accumulator[R, R] {
	return &Default[R]{}
}

func CollectUntil0[R comparable]() Accumulator[R, R] {
	return &Until0[R]{}
}

func CollectWhile0[R comparable]() Accumulator[R, R] {
	return &While0[R]{}
}

func CollectBooleanAnd() Accumulator[bool, bool] {
	return &BooleanAnd{}
}

func CollectBitwiseAnd[R Integer]() Accumulator[R, R] {
	return &BitwiseAnd[R]{}
}

func CollectVector[R any]() Accumulator[R, []R] {
	return &Vector[R]{}
}
