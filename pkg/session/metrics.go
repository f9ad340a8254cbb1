package session

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dronecmd/dronecmd-go/pkg/dispatch"
)

// Frame results recorded in dronecmd_frames_total.
const (
	FrameDecoded   = "decoded"
	FrameTrailing  = "trailing"
	FrameUnknown   = "unknown"
	FrameTruncated = "truncated"
	FrameInvalid   = "invalid"
	FrameDuplicate = "duplicate"
)

// Metrics holds the session counters. A nil *Metrics records nothing.
type Metrics struct {
	Frames           *prometheus.CounterVec // labels: result
	Dispatch         *prometheus.CounterVec // labels: result
	ListenerFailures prometheus.Counter
	SettingsUpdates  prometheus.Counter
	QueueDepth       prometheus.Gauge
}

// NewMetrics creates the session metrics and registers them on reg.
// Several sessions may share one Metrics value.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dronecmd_frames_total",
			Help: "Command payloads received, by decode result.",
		}, []string{"result"}),
		Dispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dronecmd_dispatch_total",
			Help: "Decoded commands dispatched, by dispatch result.",
		}, []string{"result"}),
		ListenerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dronecmd_listener_failures_total",
			Help: "Listener errors and recovered panics.",
		}),
		SettingsUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dronecmd_settings_updates_total",
			Help: "Setting notifications applied to the aggregate.",
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dronecmd_queue_depth",
			Help: "Payloads waiting in session delivery queues.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Frames, m.Dispatch, m.ListenerFailures, m.SettingsUpdates, m.QueueDepth)
	}
	return m
}

func (m *Metrics) frame(result string) {
	if m != nil {
		m.Frames.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) dispatched(r dispatch.Result) {
	if m != nil {
		m.Dispatch.WithLabelValues(r.String()).Inc()
	}
}

func (m *Metrics) listenerFailed() {
	if m != nil {
		m.ListenerFailures.Inc()
	}
}

func (m *Metrics) settingUpdated() {
	if m != nil {
		m.SettingsUpdates.Inc()
	}
}

func (m *Metrics) queued(delta float64) {
	if m != nil {
		m.QueueDepth.Add(delta)
	}
}
