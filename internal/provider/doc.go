// Package provider turns a stream of pointer events into dispatched gestures.
//
// A Provider is attached to one viewer through a host.Handle. The host feeds
// it every mouse event from its event loop, one at a time:
//
//	Idle --trigger press--> Dragging --move--> Dragging --release--> Idle
//
// While dragging, each position is appended to the in-flight trajectory.
// On release the trajectory is classified, gesture.completed is published,
// and the registry is consulted. A matching binding is invoked with the live
// viewer. A combo with no binding is published as gesture.unmatched and is
// not an error.
//
// A drag that ends abnormally (focus lost, host shutting down) must be
// abandoned with Abort. The trajectory is then discarded without
// classification and gesture.cancelled is published.
//
// Providers are not safe for concurrent use. All calls must come from the
// host event loop.
//
// # Sessions
//
// A Session remembers the most recently constructed provider so that
// registration helpers can find it without an explicit reference:
//
//	s := provider.NewSession()
//	p := provider.New(handle, provider.WithSession(s))
//	err := s.RegisterGesture(gesture.Text("up-left"), binding)
package provider
