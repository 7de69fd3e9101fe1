// Package signals implements typed signal/slot dispatch.
//
// A signal is declared for a callback shape, for example Signal2[float32, int, bool]
// for callbacks of type func(float32, int) bool, or Void1[*MouseEvent] for
// func(*MouseEvent). Callbacks are connected into integer priority groups and
// invoked by Emit in descending priority order; inside a group they run in
// the order they were connected.
//
//	var resized signals.Void2[int, int]
//	conn := resized.Connect(func(w, h int) { log.Printf("%dx%d", w, h) })
//	resized.Emit(800, 600)
//	conn.Disconnect()
//
// Results are combined by a Collector. Emit uses the last result; EmitCollect
// takes any Collector, and CollectedN fixes one at construction:
//
//	all := signals.NewCollected0(signals.CollectVector[int])
//	all.Connect(func() int { return 1 })
//	all.Connect(func() int { return 2 })
//	all.Emit() // []int{1, 2}
//
// Callbacks may connect, disconnect, enable, disable or emit on the signal
// that is currently invoking them. Signals are not safe for concurrent use:
// every call on a signal and its connections must come from one goroutine at
// a time.
package signals
