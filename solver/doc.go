// Package solver drives a chain.Chain to a near-fixed-point stationary
// distribution via teleporting power iteration, subject to an iteration
// cap and a convergence threshold, cooperatively yielding so that a long
// run does not monopolize a single-threaded host.
//
// The iteration itself is single-goroutine and deterministic: the only use
// of concurrency is a github.com/niceyeti/channerics/channels ticker that
// paces when the solver calls runtime.Gosched(), matching the teacher's
// tsp package's periodic wall-clock deadline checks (see two_opt.go's
// checkDeadline) but using a real scheduling hint instead of bailing out.
package solver
