package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dronecmd/dronecmd-go/pkg/dispatch"
	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
	"github.com/dronecmd/dronecmd-go/pkg/persistence"
	"github.com/dronecmd/dronecmd-go/pkg/session"
	"github.com/dronecmd/dronecmd-go/pkg/settings"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// ReplayOptions controls Replay.
type ReplayOptions struct {
	Config *Config

	// Logger is the operational logger. Nil discards.
	Logger *slog.Logger

	// SnapshotPath, if set, is where the final settings are saved.
	SnapshotPath string

	// Resume restores the settings saved at SnapshotPath before replaying.
	Resume bool

	// ProtocolLog, if set, is a .dlog file receiving protocol events.
	ProtocolLog string

	// Trace mirrors protocol events to Logger at debug level.
	Trace bool

	// Commands prints every dispatched command.
	Commands bool

	// Metrics prints the session counters after the replay.
	Metrics bool
}

// ReplaySummary describes a finished replay.
type ReplaySummary struct {
	SessionID string
	Frames    int
	Acks      int
	Settings  settings.Snapshot
	Metrics   []MetricSample
}

// MetricSample is one gathered counter or gauge value.
type MetricSample struct {
	Name  string
	Value float64
}

// Replay feeds a capture of network frames through a session and returns
// the resulting settings.
func Replay(ctx context.Context, p *features.Protocol, capture io.Reader, opts ReplayOptions, w io.Writer) (*ReplaySummary, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var file, trace log.Logger
	if opts.ProtocolLog != "" {
		fl, err := log.NewFileLogger(opts.ProtocolLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open protocol log: %w", err)
		}
		defer fl.Close()
		file = fl
	}
	if opts.Trace && opts.Logger != nil {
		trace = log.NewSlogAdapter(opts.Logger)
	}
	var plog log.Logger
	if ml := log.NewMultiLogger(file, trace); ml.Len() > 0 {
		plog = ml
	}

	reg := prometheus.NewRegistry()
	sc := cfg.SessionConfig()
	sc.Logger = opts.Logger
	sc.ProtocolLogger = plog
	sc.Metrics = session.NewMetrics(reg)
	s := session.New(p.Codec, sc)

	var store *persistence.SettingsStore
	if opts.SnapshotPath != "" {
		store = persistence.NewSettingsStore(opts.SnapshotPath)
		if opts.Resume {
			snap, ok, err := store.LoadSnapshot(p.Table)
			if err != nil {
				return nil, fmt.Errorf("failed to load settings: %w", err)
			}
			if ok {
				s.Aggregate().Restore(snap)
			}
		}
	}

	if opts.Commands {
		// Only the consumer goroutine writes to w until Stop returns.
		printCmd := dispatch.ListenerFunc(func(cmd *wire.Command) error {
			fmt.Fprintln(w, cmd.String())
			return nil
		})
		for _, desc := range p.Table.Commands() {
			s.Dispatcher().Register(desc.ID, printCmd)
		}
	}

	reader := netframe.NewReader(capture)
	if cfg.Session.MaxFrameSize > 0 {
		reader.SetMaxFrameSize(cfg.Session.MaxFrameSize)
	}
	if plog != nil {
		reader.SetLogger(plog, s.ID())
	}

	summary := &ReplaySummary{SessionID: s.ID()}
	s.Start(ctx)
	err := feed(ctx, s, reader, summary)
	s.Stop()
	if err != nil {
		return nil, err
	}

	summary.Settings = s.Aggregate().Snapshot()
	if store != nil {
		if err := store.SaveSnapshot(summary.Settings, cfg.DeviceName); err != nil {
			return nil, fmt.Errorf("failed to save settings: %w", err)
		}
	}
	if opts.Metrics {
		if summary.Metrics, err = gather(reg); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func feed(ctx context.Context, s *session.Session, reader *netframe.Reader, summary *ReplaySummary) error {
	for {
		f, err := reader.ReadFrame()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame %d: %w", summary.Frames, err)
		}
		summary.Frames++

		ack, err := s.HandleNetworkFrame(ctx, f)
		if err != nil {
			return fmt.Errorf("frame %d: %w", summary.Frames-1, err)
		}
		if ack != nil {
			summary.Acks++
		}
	}
}

func gather(reg *prometheus.Registry) ([]MetricSample, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}
	var out []MetricSample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				pairs := make([]string, 0, len(labels))
				for _, l := range labels {
					pairs = append(pairs, l.GetName()+"="+l.GetValue())
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			default:
				continue
			}
			out = append(out, MetricSample{Name: name, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RunReplay replays the capture file at path and prints a summary.
func RunReplay(ctx context.Context, p *features.Protocol, path string, opts ReplayOptions, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	summary, err := Replay(ctx, p, f, opts, w)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Session: %s\n", summary.SessionID)
	fmt.Fprintf(w, "Frames:  %d (%d acked)\n", summary.Frames, summary.Acks)
	printSnapshot(w, summary.Settings)
	if len(summary.Metrics) > 0 {
		fmt.Fprintln(w, "Metrics:")
		for _, m := range summary.Metrics {
			fmt.Fprintf(w, "  %-56s %g\n", m.Name, m.Value)
		}
	}
	return nil
}
