// Package instance guards against running two monitors on one machine by
// scanning the process table for a same-named executable at startup.
package instance
