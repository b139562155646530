// Package topic provides hierarchical topic names and wildcard matching for
// the gesture event bus.
//
// Topics use dot notation:
//
//	gesture.completed
//	gesture.unmatched
//	gesture.cancelled
//
// Two wildcards are supported in subscription patterns:
//
//   - "*" matches exactly one segment
//   - "**" matches zero or more segments
//
// For example "gesture.*" matches every gesture topic and "**" matches
// everything.
package topic
