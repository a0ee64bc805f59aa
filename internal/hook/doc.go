// Package hook runs one NZBGet queue-script invocation: it checks that the
// process was started by NZBGet for an NZB_ADDED event, looks the new group
// up in the queue, classifies it by size and sets its priority.
//
// A run moves strictly forward through
//
//	Start -> Gated -> Connected -> Located -> Classified -> Commanded -> Done
//
// and ends early in Skipped when the event is not NZB_ADDED, or in Aborted
// on any failure. It makes at most one listgroups call and at most one
// editqueue call, and never retries.
package hook
