// Package ticksched provides deterministic, cancellable, frame-aligned
// scheduling on top of a periodic tick signal.
//
// Four primitives are offered: a blocking Wait measured in delivered tick
// deltas, a one-shot Delay with a cancellation handle, an isolated Spawn
// returning the callback's first outcome, and a deferred disposal via
// AddItem that probes the reference's teardown capability at fire time.
// All timer checks run synchronously inside tick handling, in subscription
// order; callback failures are captured and reported to the logging sink
// instead of crashing the tick loop.
package ticksched
