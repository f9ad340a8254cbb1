// Package session ties the codec, dispatcher and settings aggregate to one
// device connection.
//
// Incoming payloads are queued on a bounded FIFO and consumed by a single
// goroutine, so commands reach listeners and the aggregate in wire order.
// Sessions share only the immutable descriptor table; each owns its own
// dispatcher, aggregate and sequence counters.
//
//	s := session.New(codec, session.DefaultConfig())
//	features.OnPilotingStateFlyingStateChanged(s.Dispatcher(), onState)
//	s.Start(ctx)
//	defer s.Stop()
//
//	for {
//		f, err := conn.ReadFrame()
//		...
//		if ack, err := s.HandleNetworkFrame(ctx, f); err == nil && ack != nil {
//			conn.WriteFrame(*ack)
//		}
//	}
package session
