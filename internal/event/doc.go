// Package event provides the gesture notification bus.
//
// The provider publishes an Event for every finished drag. Subscribers
// register a handler for a topic pattern and are invoked synchronously, in
// registration order, on the publisher's goroutine.
//
// # Topics
//
//	gesture.completed   - a drag ended and was classified (always published)
//	gesture.unmatched   - the combo had no binding
//	gesture.dispatched  - a binding callback ran successfully
//	gesture.failed      - a binding callback returned an error
//	gesture.cancelled   - the drag was abandoned before it ended
//
// # Basic Usage
//
//	bus := event.NewBus()
//	sub, err := bus.SubscribeFunc("gesture.*", func(ctx context.Context, evt event.Event) error {
//	    fmt.Println(evt.Topic)
//	    return nil
//	})
//	defer sub.Cancel()
//
//	bus.Publish(ctx, event.NewEvent(event.TopicGestureCompleted, payload, "provider"))
//
// # Errors
//
// Handler errors do not stop delivery to later subscribers. Publish returns
// all of them joined. A panicking handler is recovered and reported as
// ErrHandlerPanic.
//
// # Thread Safety
//
// The Bus is meant to be driven from the host event loop. Subscribe and
// Cancel may be called from inside a handler; the change takes effect on
// the next Publish.
package event
