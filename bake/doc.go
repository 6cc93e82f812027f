/*
Package bake computes lookup tables for curves in the background.

A Scheduler debounces bursts of edits: the editing side calls Queue after
every mutation and continues immediately, while a single worker goroutine
waits for the edits to settle and then runs the bake function once. Results
are published into a Cache as immutable Tables; readers pick up the newest
complete table without locking.

	state          event                 next state
	-----          -----                 ----------
	Idle           Queue                 Pending
	Pending        Queue                 Pending (debounce restarts)
	Pending        debounce elapsed      Baking
	Baking         Queue                 BakingPending
	Baking         bake done             Idle
	BakingPending  bake done             Pending

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bake

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'bake'
func tracer() tracing.Trace {
	return tracing.Select("bake")
}
