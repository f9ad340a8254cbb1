package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dronecmd/dronecmd-go/pkg/dispatch"
	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
	"github.com/dronecmd/dronecmd-go/pkg/settings"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// DefaultQueueSize is the default delivery queue capacity.
const DefaultQueueSize = 256

// ErrSessionClosed is returned by Deliver after Stop.
var ErrSessionClosed = errors.New("session closed")

// Config configures a Session.
type Config struct {
	// QueueSize bounds the delivery queue. Deliver blocks when it is full.
	QueueSize int

	// DeviceName tags protocol events.
	DeviceName string

	// Logger is used for operational logging. Nil discards.
	Logger *slog.Logger

	// ProtocolLogger receives frame, command, setting and error events.
	ProtocolLogger log.Logger

	// Metrics records counters. Nil disables.
	Metrics *Metrics

	// UnknownWarnInterval limits how often unknown commands and trailing
	// bytes are logged at warning level. Zero logs every one.
	UnknownWarnInterval time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		QueueSize:           DefaultQueueSize,
		UnknownWarnInterval: 10 * time.Second,
	}
}

// Outcome is the result of processing one payload.
type Outcome struct {
	// Command is nil when decoding failed.
	Command *wire.Command

	// Result is meaningful only when Command is set.
	Result dispatch.Result

	// Err carries the decode error (fatal or the trailing-bytes diagnostic)
	// joined with any listener failure.
	Err error
}

// Session processes the command stream of one device.
type Session struct {
	id         string
	deviceName string

	codec      *wire.Codec
	dispatcher *dispatch.Dispatcher
	aggregate  *settings.Aggregate
	seq        *netframe.Sequencer

	queue   chan []byte
	closing chan struct{}

	// mu guards closed. Deliver holds it for reading while queueing.
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once

	seqMu   sync.Mutex
	lastSeq map[uint8]uint8

	// lifeMu guards the fields below.
	lifeMu  sync.Mutex
	cancel  context.CancelFunc
	running bool
	stopped bool
	wg      sync.WaitGroup

	logger  *slog.Logger
	plog    log.Logger
	metrics *Metrics

	warnEvery time.Duration
	unknown   rate.Sometimes
	trailing  rate.Sometimes
}

// New creates a session over codec. Call Start to begin consuming queued
// payloads; Process may be used directly without starting.
func New(codec *wire.Codec, cfg Config) *Session {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		id:         uuid.New().String(),
		deviceName: cfg.DeviceName,
		codec:      codec,
		aggregate:  settings.NewAggregate(),
		seq:        netframe.NewSequencer(),
		queue:      make(chan []byte, cfg.QueueSize),
		closing:    make(chan struct{}),
		lastSeq:    make(map[uint8]uint8),
		plog:       log.OrNoop(cfg.ProtocolLogger),
		metrics:    cfg.Metrics,
		warnEvery:  cfg.UnknownWarnInterval,
		unknown:    rate.Sometimes{Interval: cfg.UnknownWarnInterval},
		trailing:   rate.Sometimes{Interval: cfg.UnknownWarnInterval},
	}
	s.logger = logger.With("session_id", s.id)

	s.dispatcher = dispatch.New(dispatch.Config{
		Logger:         s.logger,
		ProtocolLogger: s.plog,
		SessionID:      s.id,
		OnFailure: func(*wire.Command, error) {
			s.metrics.listenerFailed()
		},
	})
	s.dispatcher.SetSettingsSink(&settings.Sink{
		Aggregate:      s.aggregate,
		ProtocolLogger: s.plog,
		SessionID:      s.id,
		OnUpdate: func(settings.Field) {
			s.metrics.settingUpdated()
		},
	})
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Codec returns the session codec.
func (s *Session) Codec() *wire.Codec { return s.codec }

// Dispatcher returns the session dispatcher. Register listeners before
// Start to see every command.
func (s *Session) Dispatcher() *dispatch.Dispatcher { return s.dispatcher }

// Aggregate returns the session's settings aggregate.
func (s *Session) Aggregate() *settings.Aggregate { return s.aggregate }

// Start launches the consumer goroutine. It stops when Stop is called or
// ctx is cancelled; either closes the session. Calling Start on a running
// or closed session has no effect.
func (s *Session) Start(ctx context.Context) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.running || s.stopped || s.isClosed() {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true
	s.wg.Add(1)
	go s.consume(ctx)
	s.stateChange("", "RUNNING", "")
}

// Stop rejects further deliveries, processes what is already queued and
// waits for the consumer to exit. Payloads queued on a session that was
// never started are processed by the caller.
func (s *Session) Stop() {
	s.lifeMu.Lock()
	if s.stopped {
		s.lifeMu.Unlock()
		return
	}
	s.stopped = true
	running, cancel := s.running, s.cancel
	s.running = false
	s.lifeMu.Unlock()

	s.shutdown()
	if running {
		s.wg.Wait()
		cancel()
	}
	s.drain()
	s.stateChange("RUNNING", "STOPPED", "")
}

// shutdown closes the session to deliveries. When it returns, no Deliver
// call is in flight and none will succeed again.
func (s *Session) shutdown() {
	s.closeOnce.Do(func() {
		// Unblocks Deliver calls waiting on a full queue, which hold the
		// read lock taken below.
		close(s.closing)
		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})
}

func (s *Session) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Deliver queues a command payload. It blocks while the queue is full,
// until space frees up, ctx is done or the session stops. The session
// takes ownership of frame.
func (s *Session) Deliver(ctx context.Context, frame []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrSessionClosed
	}

	select {
	case s.queue <- frame:
		s.metrics.queued(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-s.closing:
		return ErrSessionClosed
	}
}

// Pending returns the number of queued payloads.
func (s *Session) Pending() int {
	return len(s.queue)
}

func (s *Session) consume(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case frame := <-s.queue:
			s.metrics.queued(-1)
			s.Process(frame)
		case <-s.closing:
			s.drain()
			return
		case <-ctx.Done():
			s.shutdown()
			s.drain()
			s.stateChange("RUNNING", "CLOSED", ctx.Err().Error())
			return
		}
	}
}

func (s *Session) drain() {
	for {
		select {
		case frame := <-s.queue:
			s.metrics.queued(-1)
			s.Process(frame)
		default:
			return
		}
	}
}

// Process decodes and dispatches one payload synchronously. Decode
// failures are logged and counted, never returned as a panic or fatal
// session error.
func (s *Session) Process(frame []byte) Outcome {
	cmd, err := s.codec.Decode(frame)
	if wire.IsFatal(err) {
		s.decodeFailed(frame, err)
		return Outcome{Err: err}
	}
	if err != nil {
		s.metrics.frame(FrameTrailing)
		s.warnLimited(&s.trailing, "trailing bytes after command", "command", cmd.Name(), "error", err)
	} else {
		s.metrics.frame(FrameDecoded)
	}

	result, derr := s.dispatcher.Dispatch(cmd)
	s.metrics.dispatched(result)
	s.logCommand(cmd, log.DirectionIn, result.String())

	return Outcome{Command: cmd, Result: result, Err: errors.Join(err, derr)}
}

func (s *Session) decodeFailed(frame []byte, err error) {
	switch {
	case errors.Is(err, wire.ErrUnknownCommand):
		s.metrics.frame(FrameUnknown)
		// Newer firmware sends commands this table does not know about.
		s.warnLimited(&s.unknown, "unknown command", "error", err)
	case errors.Is(err, wire.ErrTruncatedFrame):
		s.metrics.frame(FrameTruncated)
		s.logger.Warn("truncated command payload", "size", len(frame), "error", err)
	default:
		s.metrics.frame(FrameInvalid)
		s.logger.Warn("invalid command payload", "error", err)
	}

	s.plog.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Direction:  log.DirectionIn,
		Layer:      log.LayerWire,
		Category:   log.CategoryError,
		DeviceName: s.deviceName,
		Error: &log.ErrorEventData{
			Layer:   log.LayerWire,
			Message: err.Error(),
			Context: "decode",
		},
	})
}

// warnLimited logs at warning level at most once per warnEvery, and at
// debug level otherwise.
func (s *Session) warnLimited(limit *rate.Sometimes, msg string, args ...any) {
	if s.warnEvery <= 0 {
		s.logger.Warn(msg, args...)
		return
	}
	warned := false
	limit.Do(func() {
		warned = true
		s.logger.Warn(msg, args...)
	})
	if !warned {
		s.logger.Debug(msg, args...)
	}
}

// HandleNetworkFrame feeds a received network frame into the session.
// Data frames are queued for delivery; the returned frame, when non-nil,
// is the acknowledgement the caller must send back. Retransmitted frames
// are acknowledged again but not delivered twice. A frame that could not be
// queued is not acknowledged and its retransmission is delivered.
func (s *Session) HandleNetworkFrame(ctx context.Context, f netframe.Frame) (*netframe.Frame, error) {
	switch f.Type {
	case netframe.TypeAck:
		if seq, ok := f.AckedSeq(); ok {
			s.logger.Debug("ack received", "buffer_id", netframe.AckedBuffer(f.BufferID), "seq", seq)
		}
		return nil, nil
	case netframe.TypeLowLatency:
		return nil, nil
	case netframe.TypeData, netframe.TypeDataWithAck:
	default:
		return nil, fmt.Errorf("%w: type %d", netframe.ErrInvalidFrame, f.Type)
	}

	if f.NeedsAck() && s.isDuplicate(f) {
		s.metrics.frame(FrameDuplicate)
		ack := f.Ack(s.seq.Next(netframe.AckBuffer(f.BufferID)))
		return &ack, nil
	}

	payload := make([]byte, len(f.Payload))
	copy(payload, f.Payload)
	if err := s.Deliver(ctx, payload); err != nil {
		return nil, err
	}

	if !f.NeedsAck() {
		return nil, nil
	}
	s.recordSeq(f)
	ack := f.Ack(s.seq.Next(netframe.AckBuffer(f.BufferID)))
	return &ack, nil
}

// isDuplicate reports whether f repeats the last frame delivered on its
// buffer.
func (s *Session) isDuplicate(f netframe.Frame) bool {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	last, seen := s.lastSeq[f.BufferID]
	return seen && last == f.Seq
}

// recordSeq marks f as delivered on its buffer.
func (s *Session) recordSeq(f netframe.Frame) {
	s.seqMu.Lock()
	s.lastSeq[f.BufferID] = f.Seq
	s.seqMu.Unlock()
}

// Send encodes cmd into a network frame on the buffer its descriptor names,
// with the next sequence number of that buffer.
func (s *Session) Send(cmd *wire.Command) (netframe.Frame, error) {
	desc := cmd.Descriptor
	if desc == nil {
		var err error
		if desc, err = s.codec.Table().Get(cmd.ID); err != nil {
			return netframe.Frame{}, err
		}
	}
	payload, err := s.codec.Encode(cmd)
	if err != nil {
		return netframe.Frame{}, err
	}

	buffer, typ := netframe.OutboundBuffer(desc.Buffer)
	f := netframe.Frame{
		Type:     typ,
		BufferID: buffer,
		Seq:      s.seq.Next(buffer),
		Payload:  payload,
	}
	s.logCommand(&wire.Command{ID: cmd.ID, Args: cmd.Args, Descriptor: desc}, log.DirectionOut, "")
	return f, nil
}

// Reset clears the settings aggregate and sequence state, as after a
// reconnect. Registered listeners are kept.
func (s *Session) Reset() {
	s.aggregate.Reset()
	s.seq.Reset()
	s.seqMu.Lock()
	s.lastSeq = make(map[uint8]uint8)
	s.seqMu.Unlock()

	s.logger.Info("session reset")
	s.plog.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Layer:      log.LayerSettings,
		Category:   log.CategoryState,
		DeviceName: s.deviceName,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySettings,
			NewState: "RESET",
			Reason:   "reset",
		},
	})
}

func (s *Session) logCommand(cmd *wire.Command, dir log.Direction, result string) {
	args := make([]string, len(cmd.Args))
	for i, v := range cmd.Args {
		args[i] = v.String()
	}
	s.plog.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Direction:  dir,
		Layer:      log.LayerWire,
		Category:   log.CategoryCommand,
		DeviceName: s.deviceName,
		Command: &log.CommandEvent{
			Feature: cmd.ID.Feature,
			Class:   cmd.ID.Class,
			Command: cmd.ID.Command,
			Name:    cmd.Name(),
			Args:    args,
			Result:  result,
		},
	})
}

func (s *Session) stateChange(from, to, reason string) {
	s.logger.Debug("session state", "from", from, "to", to)
	s.plog.Log(log.Event{
		Timestamp:  time.Now(),
		SessionID:  s.id,
		Layer:      log.LayerDispatch,
		Category:   log.CategoryState,
		DeviceName: s.deviceName,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntitySession,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}
