// Package alert contains the core domain types for the alert business logic.
//
// It defines the two-valued alert State, the Event produced by a state
// transition, and the pure Decide function that maps an observed feed status
// to the next state. All I/O lives elsewhere; this package is deliberately
// free of dependencies so the transition rules stay trivially testable.
package alert
