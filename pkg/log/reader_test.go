package log

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func writeEvents(t *testing.T, events ...Event) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger := NewStreamLogger(&buf)
	for _, ev := range events {
		logger.Log(ev)
	}
	return &buf
}

func TestFilterMatches(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Direction: DirectionIn, Layer: LayerNetwork, Category: CategoryAck},
		{Timestamp: base.Add(time.Second), SessionID: "a", Direction: DirectionIn, Layer: LayerWire, Category: CategoryCommand,
			Command: &CommandEvent{Feature: 1, Class: 4, Command: 1, Name: "ardrone3.PilotingState.FlyingStateChanged"}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "b", Direction: DirectionOut, Layer: LayerWire, Category: CategoryCommand,
			Command: &CommandEvent{Feature: 137, Command: 2, Name: "animation.cancel"}, DeviceName: "drone-b"},
		{Timestamp: base.Add(3 * time.Second), SessionID: "a", Layer: LayerSettings, Category: CategorySetting,
			Setting: &SettingEvent{Name: "maxTilt", Current: "10"}},
	}

	in := DirectionIn
	wireLayer := LayerWire
	setting := CategorySetting
	anim := uint8(137)
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"empty", Filter{}, 4},
		{"session", Filter{SessionID: "a"}, 3},
		{"direction", Filter{Direction: &in}, 3},
		{"layer", Filter{Layer: &wireLayer}, 2},
		{"category", Filter{Category: &setting}, 1},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"device", Filter{DeviceName: "drone-b"}, 1},
		{"feature", Filter{Feature: &anim}, 1},
		{"command substring", Filter{Command: "FlyingState"}, 1},
		{"combined", Filter{SessionID: "a", Layer: &wireLayer}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStreamReader(writeEvents(t, events...), tt.filter).ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestReaderEOF(t *testing.T) {
	r := NewStreamReader(writeEvents(t, Event{SessionID: "x"}), Filter{})
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on stream reader: %v", err)
	}
}

func TestNewReaderMissingFile(t *testing.T) {
	if _, err := NewReader("/nonexistent/file.dlog"); err == nil {
		t.Error("expected error for missing file")
	}
}
