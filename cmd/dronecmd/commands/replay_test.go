package commands

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
)

func replayCapture(t *testing.T) *bytes.Buffer {
	t.Helper()
	p := protocol(t)
	maxAlt := netframe.Frame{
		Type:     netframe.TypeDataWithAck,
		BufferID: netframe.BufferDeviceAck,
		Seq:      1,
		Payload:  payload(t, p, "ardrone3.PilotingSettingsState.MaxAltitudeChanged", "50", "2", "150"),
	}
	return capture(t,
		maxAlt,
		netframe.Frame{
			Type:     netframe.TypeData,
			BufferID: netframe.BufferDeviceNonAck,
			Seq:      1,
			Payload:  payload(t, p, "common.SettingsState.ProductNameChanged", "Bebop2"),
		},
		maxAlt, // retransmission
		netframe.Frame{
			Type:     netframe.TypeData,
			BufferID: netframe.BufferDeviceNonAck,
			Seq:      2,
			Payload:  []byte{200, 0, 0, 0},
		},
	)
}

func TestReplay(t *testing.T) {
	var out bytes.Buffer
	summary, err := Replay(context.Background(), protocol(t), replayCapture(t), ReplayOptions{Commands: true, Metrics: true}, &out)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if summary.Frames != 4 || summary.Acks != 2 {
		t.Errorf("frames/acks: got %d/%d, want 4/2", summary.Frames, summary.Acks)
	}

	f, ok := summary.Settings.Get("maxAltitude")
	if !ok {
		t.Fatal("maxAltitude not collected")
	}
	if f.Current.Float() != 50 || f.Range == nil || f.Range.Max.Float() != 150 {
		t.Errorf("maxAltitude: got %+v", f)
	}
	if f.Count != 1 {
		t.Errorf("retransmission applied twice: count %d", f.Count)
	}
	if name, ok := summary.Settings.Get("productName"); !ok || name.Current.Text() != "Bebop2" {
		t.Errorf("productName: got %+v", name)
	}

	mustContain(t, out.String(),
		"ardrone3.PilotingSettingsState.MaxAltitudeChanged(current=50, min=2, max=150)",
		`common.SettingsState.ProductNameChanged(name="Bebop2")`,
	)

	metrics := make(map[string]float64)
	for _, m := range summary.Metrics {
		metrics[m.Name] = m.Value
	}
	for name, want := range map[string]float64{
		"dronecmd_frames_total{result=decoded}":   2,
		"dronecmd_frames_total{result=duplicate}": 1,
		"dronecmd_frames_total{result=unknown}":   1,
		"dronecmd_settings_updates_total":         2,
		"dronecmd_queue_depth":                    0,
	} {
		if got, ok := metrics[name]; !ok || got != want {
			t.Errorf("%s: got %v (present %v), want %v", name, got, ok, want)
		}
	}
}

func TestReplayTruncatedCapture(t *testing.T) {
	data := replayCapture(t).Bytes()
	_, err := Replay(context.Background(), protocol(t), bytes.NewReader(data[:len(data)-2]), ReplayOptions{}, &bytes.Buffer{})
	if err == nil {
		t.Error("expected error for truncated capture")
	}
}

func TestReplaySavesAndResumes(t *testing.T) {
	p := protocol(t)
	path := filepath.Join(t.TempDir(), "bebop.settings")
	cfg := DefaultConfig()
	cfg.DeviceName = "Bebop2-42"

	if _, err := Replay(context.Background(), p, replayCapture(t), ReplayOptions{Config: cfg, SnapshotPath: path}, &bytes.Buffer{}); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	var out bytes.Buffer
	if err := RunSnapshot(p, path, &out); err != nil {
		t.Fatalf("RunSnapshot: %v", err)
	}
	mustContain(t, out.String(), "Device: Bebop2-42", "Settings: 2", "maxAltitude", "= 50 [2, 150] (1 updates)", "productName")

	// An empty capture with -resume keeps what was saved.
	summary, err := Replay(context.Background(), p, &bytes.Buffer{}, ReplayOptions{Config: cfg, SnapshotPath: path, Resume: true}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if _, ok := summary.Settings.Get("maxAltitude"); !ok {
		t.Error("resumed replay lost maxAltitude")
	}
}

func TestRunSnapshotMissing(t *testing.T) {
	var out bytes.Buffer
	if err := RunSnapshot(protocol(t), filepath.Join(t.TempDir(), "none"), &out); err == nil {
		t.Error("expected error when nothing was saved")
	}
}

func TestRunReplayWritesProtocolLog(t *testing.T) {
	dir := t.TempDir()
	capPath := filepath.Join(dir, "capture.bin")
	if err := os.WriteFile(capPath, replayCapture(t).Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "replay"+log.FileExtension)

	var out bytes.Buffer
	if err := RunReplay(context.Background(), protocol(t), capPath, ReplayOptions{ProtocolLog: logPath}, &out); err != nil {
		t.Fatalf("RunReplay: %v", err)
	}
	mustContain(t, out.String(), "Frames:  4 (2 acked)", "Settings: 2")

	reader, err := log.NewReader(logPath)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer reader.Close()
	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	var frames, settingEvents, errorEvents int
	for _, ev := range events {
		switch {
		case ev.Frame != nil:
			frames++
		case ev.Setting != nil:
			settingEvents++
		case ev.Error != nil:
			errorEvents++
		}
	}
	if frames != 4 || settingEvents != 2 || errorEvents != 1 {
		t.Errorf("frames/settings/errors: got %d/%d/%d, want 4/2/1", frames, settingEvents, errorEvents)
	}
}

func TestReplayTrace(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var out bytes.Buffer
	if _, err := Replay(context.Background(), protocol(t), replayCapture(t), ReplayOptions{Logger: logger, Trace: true}, &out); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	mustContain(t, logs.String(), "msg=protocol", "setting=maxAltitude", "layer=NETWORK")
}
