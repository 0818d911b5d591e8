// Package monitor drives the poll loop: fetch the region status, run it
// through the alert state machine, hand at most one event per cycle to the
// notifier, and wait for the next tick. The loop is the sole owner of the
// alert state and the only component with control flow; it continues at the
// configured interval through fetch failures and stops only when its context
// is canceled.
package monitor
