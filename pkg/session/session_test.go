package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dronecmd/dronecmd-go/pkg/dispatch"
	"github.com/dronecmd/dronecmd-go/pkg/enum"
	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
	"github.com/dronecmd/dronecmd-go/pkg/schema"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

const testSchema = `
name: ardrone3
id: 1
enums:
  - name: FlyingState
    values:
      - {name: landed, value: 0}
      - {name: takingoff, value: 1}
      - {name: hovering, value: 2}
classes:
  - name: Piloting
    id: 0
    commands:
      - name: TakeOff
        id: 1
      - name: PCMD
        id: 2
        buffer: nonack
        args:
          - {name: flag, type: u8}
          - {name: roll, type: i8}
          - {name: pitch, type: i8}
          - {name: yaw, type: i8}
          - {name: gaz, type: i8}
          - {name: timestampAndSeqNum, type: u32}
  - name: PilotingState
    id: 4
    commands:
      - name: FlyingStateChanged
        id: 1
        args:
          - {name: state, type: enum, enum: FlyingState}
  - name: PilotingSettingsState
    id: 6
    commands:
      - name: MaxAltitudeChanged
        id: 0
        args:
          - {name: current, type: float}
          - {name: min, type: float}
          - {name: max, type: float}
        setting: {name: maxAltitude, current: current, min: min, max: max}
`

var (
	takeOffID      = model.CommandID{Feature: 1, Class: 0, Command: 1}
	pcmdID         = model.CommandID{Feature: 1, Class: 0, Command: 2}
	flyingStateID  = model.CommandID{Feature: 1, Class: 4, Command: 1}
	maxAltitudeID  = model.CommandID{Feature: 1, Class: 6, Command: 0}
	unknownPayload = []byte{1, 99, 0, 0}
)

type fixture struct {
	codec   *wire.Codec
	reg     *prometheus.Registry
	metrics *Metrics
	events  *eventRecorder
	session *Session
}

type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(layer log.Layer, category log.Category) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Layer == layer && e.Category == category {
			n++
		}
	}
	return n
}

func newFixture(t *testing.T, mutate ...func(*Config)) *fixture {
	t.Helper()
	def, err := schema.ParseFeatureDef([]byte(testSchema))
	require.NoError(t, err)
	table, _, err := model.Build(&schema.Bundle{Features: []*schema.FeatureDef{def}})
	require.NoError(t, err)

	f := &fixture{
		codec:  wire.NewCodec(table),
		reg:    prometheus.NewRegistry(),
		events: &eventRecorder{},
	}
	f.metrics = NewMetrics(f.reg)

	cfg := DefaultConfig()
	cfg.Metrics = f.metrics
	cfg.ProtocolLogger = f.events
	cfg.DeviceName = "test-drone"
	for _, m := range mutate {
		m(&cfg)
	}
	f.session = New(f.codec, cfg)
	return f
}

func (f *fixture) encode(t *testing.T, id model.CommandID, args ...wire.Value) []byte {
	t.Helper()
	data, err := f.codec.Encode(&wire.Command{ID: id, Args: args})
	require.NoError(t, err)
	return data
}

func (f *fixture) pcmd(t *testing.T, seq uint32) []byte {
	return f.encode(t, pcmdID, wire.Uint8(1), wire.Int8(0), wire.Int8(0), wire.Int8(0), wire.Int8(0), wire.Uint32(seq))
}

func TestProcess_Delivered(t *testing.T) {
	f := newFixture(t)
	var got *wire.Command
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(cmd *wire.Command) error {
		got = cmd
		return nil
	}))

	out := f.session.Process(f.encode(t, takeOffID))
	require.NoError(t, out.Err)
	assert.Equal(t, dispatch.ResultDelivered, out.Result)
	require.NotNil(t, got)
	assert.Equal(t, "ardrone3.Piloting.TakeOff", got.Name())

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameDecoded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatch.WithLabelValues("DELIVERED")))
	assert.Equal(t, 1, f.events.count(log.LayerWire, log.CategoryCommand))
}

func TestProcess_Dropped(t *testing.T) {
	f := newFixture(t)
	out := f.session.Process(f.encode(t, takeOffID))
	require.NoError(t, out.Err)
	assert.Equal(t, dispatch.ResultDropped, out.Result)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Dispatch.WithLabelValues("DROPPED")))
}

func TestProcess_DecodeFailures(t *testing.T) {
	tests := []struct {
		name   string
		frame  func(f *fixture, t *testing.T) []byte
		err    error
		result string
	}{
		{
			name:   "unknown command",
			frame:  func(*fixture, *testing.T) []byte { return unknownPayload },
			err:    wire.ErrUnknownCommand,
			result: FrameUnknown,
		},
		{
			name:   "unknown feature",
			frame:  func(*fixture, *testing.T) []byte { return []byte{200, 0, 0, 0} },
			err:    wire.ErrUnknownCommand,
			result: FrameUnknown,
		},
		{
			name: "truncated",
			frame: func(f *fixture, t *testing.T) []byte {
				full := f.pcmd(t, 7)
				return full[:len(full)-1]
			},
			err:    wire.ErrTruncatedFrame,
			result: FrameTruncated,
		},
		{
			name:   "short header",
			frame:  func(*fixture, *testing.T) []byte { return []byte{1} },
			err:    wire.ErrTruncatedFrame,
			result: FrameTruncated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			out := f.session.Process(tt.frame(f, t))
			assert.ErrorIs(t, out.Err, tt.err)
			assert.Nil(t, out.Command)
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(tt.result)))
			assert.Equal(t, 1, f.events.count(log.LayerWire, log.CategoryError))

			// The session keeps working after a bad frame.
			out = f.session.Process(f.encode(t, takeOffID))
			assert.NoError(t, out.Err)
		})
	}
}

func TestProcess_TrailingBytesStillDispatched(t *testing.T) {
	f := newFixture(t)
	called := false
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(*wire.Command) error {
		called = true
		return nil
	}))

	out := f.session.Process(append(f.encode(t, takeOffID), 0xAA, 0xBB))
	assert.True(t, called)
	assert.ErrorIs(t, out.Err, wire.ErrTrailingBytes)
	assert.Equal(t, dispatch.ResultDelivered, out.Result)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameTrailing)))
}

func TestProcess_TrailingBytesLoggedAsWarning(t *testing.T) {
	var logs bytes.Buffer
	f := newFixture(t, func(c *Config) {
		c.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	})
	payload := append(f.encode(t, takeOffID), 0xAA)

	f.session.Process(payload)
	assert.Contains(t, logs.String(), `level=WARN msg="trailing bytes after command"`)

	// Repeats within the interval drop to debug.
	logs.Reset()
	f.session.Process(payload)
	assert.Contains(t, logs.String(), `level=DEBUG msg="trailing bytes after command"`)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameTrailing)))
}

func TestProcess_UnknownWarningsAreRateLimited(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.UnknownWarnInterval = time.Hour })
	for i := 0; i < 50; i++ {
		out := f.session.Process(unknownPayload)
		assert.ErrorIs(t, out.Err, wire.ErrUnknownCommand)
	}
	assert.Equal(t, 50.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameUnknown)))
}

func TestProcess_SettingsAggregate(t *testing.T) {
	f := newFixture(t)
	var listenerSaw bool
	f.session.Dispatcher().Register(maxAltitudeID, dispatch.ListenerFunc(func(*wire.Command) error {
		_, ok := f.session.Aggregate().Current("maxAltitude")
		listenerSaw = ok
		return nil
	}))

	out := f.session.Process(f.encode(t, maxAltitudeID, wire.Float32(30), wire.Float32(0.5), wire.Float32(150)))
	require.NoError(t, out.Err)
	assert.True(t, listenerSaw, "aggregate must be updated before the listener runs")

	cur, ok := f.session.Aggregate().Current("maxAltitude")
	require.True(t, ok)
	assert.InDelta(t, 30, cur.Float(), 1e-6)
	r, ok := f.session.Aggregate().Range("maxAltitude")
	require.True(t, ok)
	assert.InDelta(t, 150, r.Max.Float(), 1e-6)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SettingsUpdates))
	assert.Equal(t, 1, f.events.count(log.LayerSettings, log.CategorySetting))

	f.session.Reset()
	_, ok = f.session.Aggregate().Current("maxAltitude")
	assert.False(t, ok)
	assert.Equal(t, 1, f.events.count(log.LayerSettings, log.CategoryState))
}

func TestProcess_ListenerFailureCounted(t *testing.T) {
	f := newFixture(t)
	f.session.Dispatcher().Register(flyingStateID, dispatch.ListenerFunc(func(*wire.Command) error {
		panic("boom")
	}))

	payload := f.encode(t, flyingStateID, wire.EnumValue(mustVariant(t, f, "hovering")))
	out := f.session.Process(payload)
	assert.Equal(t, dispatch.ResultListenerFailed, out.Result)
	assert.ErrorIs(t, out.Err, dispatch.ErrListenerFailure)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ListenerFailures))

	// Next frame still processed.
	out = f.session.Process(payload)
	assert.Equal(t, dispatch.ResultListenerFailed, out.Result)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.ListenerFailures))
}

func mustVariant(t *testing.T, f *fixture, name string) enum.Variant {
	t.Helper()
	desc, err := f.codec.Table().Get(flyingStateID)
	require.NoError(t, err)
	v, ok := desc.Args[0].Enum.ByName(name)
	require.True(t, ok)
	return v
}

func TestSession_PreservesOrder(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.QueueSize = 8 })

	const n = 500
	var (
		mu  sync.Mutex
		got []uint32
	)
	f.session.Dispatcher().Register(pcmdID, dispatch.ListenerFunc(func(cmd *wire.Command) error {
		v, _ := cmd.Arg("timestampAndSeqNum")
		mu.Lock()
		got = append(got, uint32(v.Uint()))
		mu.Unlock()
		return nil
	}))

	ctx := context.Background()
	f.session.Start(ctx)
	for i := uint32(0); i < n; i++ {
		require.NoError(t, f.session.Deliver(ctx, f.pcmd(t, i)))
	}
	f.session.Stop()

	require.Len(t, got, n)
	for i, v := range got {
		require.Equal(t, uint32(i), v, "command %d out of order", i)
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.QueueDepth))
	assert.Equal(t, 0, f.session.Pending())
}

func TestSession_DeliverAfterStop(t *testing.T) {
	f := newFixture(t)
	f.session.Start(context.Background())
	f.session.Stop()
	f.session.Stop()

	err := f.session.Deliver(context.Background(), f.encode(t, takeOffID))
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_DeliverBlocksWhenFull(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.QueueSize = 1 })
	payload := f.encode(t, takeOffID)

	require.NoError(t, f.session.Deliver(context.Background(), payload))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := f.session.Deliver(ctx, payload)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, f.session.Pending())
}

func TestSession_StopUnblocksDeliver(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.QueueSize = 1 })
	payload := f.encode(t, takeOffID)
	require.NoError(t, f.session.Deliver(context.Background(), payload))

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.session.Deliver(context.Background(), payload)
	}()
	time.Sleep(10 * time.Millisecond)
	f.session.Stop()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrSessionClosed)
	case <-time.After(time.Second):
		t.Fatal("Deliver still blocked after Stop")
	}
}

func TestSession_ContextCancelClosesSession(t *testing.T) {
	f := newFixture(t)
	var (
		mu        sync.Mutex
		delivered int
	)
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(*wire.Command) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	f.session.Start(ctx)
	cancel()

	payload := f.encode(t, takeOffID)
	accepted := 0
	require.Eventually(t, func() bool {
		err := f.session.Deliver(context.Background(), payload)
		if err == nil {
			accepted++
			return false
		}
		return errors.Is(err, ErrSessionClosed)
	}, time.Second, time.Millisecond)

	f.session.Stop()
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, accepted, delivered, "every accepted payload must be dispatched")
	assert.Equal(t, 0, f.session.Pending())

	// Start after the context ended does not reopen the session.
	f.session.Start(context.Background())
	assert.ErrorIs(t, f.session.Deliver(context.Background(), payload), ErrSessionClosed)
}

func TestSession_StopWithoutStartProcessesQueue(t *testing.T) {
	f := newFixture(t)
	count := 0
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(*wire.Command) error {
		count++
		return nil
	}))
	require.NoError(t, f.session.Deliver(context.Background(), f.encode(t, takeOffID)))
	require.NoError(t, f.session.Deliver(context.Background(), f.encode(t, takeOffID)))

	f.session.Stop()
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, f.session.Pending())
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.QueueDepth))
}

func TestSession_ConcurrentStartStop(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			f.session.Start(context.Background())
		}()
		go func() {
			defer wg.Done()
			f.session.Stop()
		}()
		wg.Wait()
		f.session.Stop()

		err := f.session.Deliver(context.Background(), f.encode(t, takeOffID))
		require.ErrorIs(t, err, ErrSessionClosed)
	}
}

func TestHandleNetworkFrame_AcksAndDeduplicates(t *testing.T) {
	f := newFixture(t)
	var count int
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(*wire.Command) error {
		count++
		return nil
	}))

	in := netframe.Frame{
		Type:     netframe.TypeDataWithAck,
		BufferID: netframe.BufferDeviceAck,
		Seq:      17,
		Payload:  f.encode(t, takeOffID),
	}
	ctx := context.Background()

	ack, err := f.session.HandleNetworkFrame(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.Equal(t, netframe.TypeAck, ack.Type)
	assert.Equal(t, netframe.AckBuffer(netframe.BufferDeviceAck), ack.BufferID)
	assert.Equal(t, []byte{17}, ack.Payload)
	assert.Equal(t, uint8(0), ack.Seq)

	// Retransmission: acked again, not delivered again.
	ack, err = f.session.HandleNetworkFrame(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.Equal(t, uint8(1), ack.Seq)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameDuplicate)))

	f.session.Start(ctx)
	f.session.Stop()
	assert.Equal(t, 1, count)
}

func TestHandleNetworkFrame_RetransmitAfterFailedDelivery(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.QueueSize = 1 })
	var (
		mu    sync.Mutex
		count int
	)
	f.session.Dispatcher().Register(takeOffID, dispatch.ListenerFunc(func(*wire.Command) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	}))
	require.NoError(t, f.session.Deliver(context.Background(), f.pcmd(t, 0)))

	in := netframe.Frame{
		Type:     netframe.TypeDataWithAck,
		BufferID: netframe.BufferDeviceAck,
		Seq:      5,
		Payload:  f.encode(t, takeOffID),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	ack, err := f.session.HandleNetworkFrame(ctx, in)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, ack, "a frame that was not queued must not be acked")

	f.session.Start(context.Background())
	ack, err = f.session.HandleNetworkFrame(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, ack)
	assert.Equal(t, []byte{5}, ack.Payload)
	f.session.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, count)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.Frames.WithLabelValues(FrameDuplicate)))
}

func TestHandleNetworkFrame_NonAckAndIgnored(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ack, err := f.session.HandleNetworkFrame(ctx, netframe.Frame{
		Type: netframe.TypeData, BufferID: netframe.BufferDeviceNonAck, Payload: f.encode(t, takeOffID),
	})
	require.NoError(t, err)
	assert.Nil(t, ack)
	assert.Equal(t, 1, f.session.Pending())

	ack, err = f.session.HandleNetworkFrame(ctx, netframe.Frame{Type: netframe.TypeAck, BufferID: 139, Payload: []byte{3}})
	require.NoError(t, err)
	assert.Nil(t, ack)

	ack, err = f.session.HandleNetworkFrame(ctx, netframe.Frame{Type: netframe.TypeLowLatency, BufferID: 125})
	require.NoError(t, err)
	assert.Nil(t, ack)
	assert.Equal(t, 1, f.session.Pending())

	_, err = f.session.HandleNetworkFrame(ctx, netframe.Frame{Type: netframe.Type(9)})
	assert.True(t, errors.Is(err, netframe.ErrInvalidFrame))
}

func TestSend(t *testing.T) {
	f := newFixture(t)

	frame, err := f.session.Send(&wire.Command{ID: takeOffID})
	require.NoError(t, err)
	assert.Equal(t, netframe.TypeDataWithAck, frame.Type)
	assert.Equal(t, netframe.BufferControllerAck, frame.BufferID)
	assert.Equal(t, uint8(0), frame.Seq)
	assert.Equal(t, []byte{1, 0, 1, 0}, frame.Payload)

	frame, err = f.session.Send(&wire.Command{ID: takeOffID})
	require.NoError(t, err)
	assert.Equal(t, uint8(1), frame.Seq)

	frame, err = f.session.Send(&wire.Command{ID: pcmdID, Args: []wire.Value{
		wire.Uint8(1), wire.Int8(0), wire.Int8(0), wire.Int8(0), wire.Int8(0), wire.Uint32(0),
	}})
	require.NoError(t, err)
	assert.Equal(t, netframe.TypeData, frame.Type)
	assert.Equal(t, netframe.BufferControllerNonAck, frame.BufferID)
	assert.Equal(t, uint8(0), frame.Seq)

	_, err = f.session.Send(&wire.Command{ID: model.CommandID{Feature: 1, Class: 0, Command: 99}})
	assert.ErrorIs(t, err, model.ErrCommandNotFound)

	_, err = f.session.Send(&wire.Command{ID: pcmdID})
	assert.ErrorIs(t, err, wire.ErrArgumentMismatch)

	assert.Equal(t, 3, countDirection(f.events, log.DirectionOut))
}

func countDirection(r *eventRecorder, dir log.Direction) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Command != nil && e.Direction == dir {
			n++
		}
	}
	return n
}

func TestNilMetrics(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.Metrics = nil })
	assert.NotPanics(t, func() {
		f.session.Process(unknownPayload)
		f.session.Process(f.encode(t, takeOffID))
	})
}
