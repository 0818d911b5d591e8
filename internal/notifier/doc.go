// Package notifier delivers alert transitions to the user.
//
// Each raise or clear event fans out to independent detached actions: audio
// playback, a desktop dialog, and optionally a push message. The contract
// with the poll loop is fire-and-forget: Notify returns immediately, action
// failures are logged inside the notifier's own error boundary, and nothing
// here can block or crash the loop.
package notifier
