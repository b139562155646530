// Package terminal is a tcell viewer that turns terminal mouse input into
// gestures.
//
// The viewer translates tcell mouse reports into mouse.Event values, hands
// them to a Target on the screen's event goroutine, and draws the drag path
// while a gesture is in progress. Terminals report cell positions, so a
// gesture is recognized in character cells.
//
// Keys:
//
//	Esc     abandon the current drag
//	c       clear messages
//	q       quit
//
// Work from other goroutines, such as configuration reloads, must be
// handed to Post so that it runs on the event loop.
package terminal
