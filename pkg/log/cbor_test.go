package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
	lo, hi := "0.5", "150"
	original := Event{
		Timestamp:  ts,
		SessionID:  "abc12345-def6-7890-abcd-ef1234567890",
		Direction:  DirectionIn,
		Layer:      LayerSettings,
		Category:   CategorySetting,
		DeviceName: "Bebop2-123456",
		RemoteAddr: "192.168.42.1:44444",
		Setting: &SettingEvent{
			Name:    "maxAltitude",
			Current: "30",
			Min:     &lo,
			Max:     &hi,
			Count:   2,
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(original.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, original.Timestamp)
	}
	if decoded.SessionID != original.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, original.SessionID)
	}
	if decoded.Layer != LayerSettings || decoded.Category != CategorySetting {
		t.Errorf("Layer/Category: got %v/%v", decoded.Layer, decoded.Category)
	}
	if decoded.DeviceName != original.DeviceName {
		t.Errorf("DeviceName: got %q, want %q", decoded.DeviceName, original.DeviceName)
	}
	if decoded.Setting == nil {
		t.Fatal("Setting is nil")
	}
	if decoded.Setting.Name != "maxAltitude" || decoded.Setting.Current != "30" {
		t.Errorf("Setting: got %+v", decoded.Setting)
	}
	if decoded.Setting.Min == nil || *decoded.Setting.Min != lo {
		t.Errorf("Setting.Min: got %v, want %q", decoded.Setting.Min, lo)
	}
	if decoded.Setting.Count != 2 {
		t.Errorf("Setting.Count: got %d, want 2", decoded.Setting.Count)
	}
	if decoded.Frame != nil || decoded.Command != nil || decoded.Error != nil {
		t.Error("unexpected payloads set")
	}
}

func TestCommandEventCBORRoundTrip(t *testing.T) {
	original := Event{
		Timestamp: time.Now(),
		Layer:     LayerWire,
		Category:  CategoryCommand,
		Command: &CommandEvent{
			Feature: 1,
			Class:   0,
			Command: 2,
			Name:    "ardrone3.Piloting.PCMD",
			Args:    []string{"1", "-10", "20", "0", "-100", "0"},
			Result:  "DELIVERED",
		},
	}

	data, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	c := decoded.Command
	if c == nil {
		t.Fatal("Command is nil")
	}
	if c.Feature != 1 || c.Class != 0 || c.Command != 2 {
		t.Errorf("identity: got %d.%d.%d", c.Feature, c.Class, c.Command)
	}
	if c.Name != original.Command.Name {
		t.Errorf("Name: got %q", c.Name)
	}
	if len(c.Args) != 6 || c.Args[1] != "-10" {
		t.Errorf("Args: got %v", c.Args)
	}
	if c.Result != "DELIVERED" {
		t.Errorf("Result: got %q", c.Result)
	}
}

func TestFrameEventCBORRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, MaxFrameData+10)
	data, truncated := NewFrameData(payload)
	if !truncated || len(data) != MaxFrameData {
		t.Fatalf("NewFrameData: len %d truncated %v", len(data), truncated)
	}

	original := Event{
		Timestamp: time.Now(),
		Direction: DirectionOut,
		Layer:     LayerNetwork,
		Category:  CategoryAck,
		Frame: &FrameEvent{
			Type:      1,
			BufferID:  139,
			Seq:       7,
			Size:      8,
			Data:      data,
			Truncated: truncated,
		},
	}

	enc, err := EncodeEvent(original)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(enc)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	f := decoded.Frame
	if f == nil {
		t.Fatal("Frame is nil")
	}
	if f.Type != 1 || f.BufferID != 139 || f.Seq != 7 || f.Size != 8 {
		t.Errorf("Frame header: got %+v", f)
	}
	if !bytes.Equal(f.Data, data) || !f.Truncated {
		t.Error("Frame data mismatch")
	}
}

func TestNewFrameDataCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	data, truncated := NewFrameData(src)
	if truncated {
		t.Error("short frame reported truncated")
	}
	src[0] = 9
	if data[0] != 1 {
		t.Error("NewFrameData must copy")
	}
}

func TestEventUsesIntegerKeys(t *testing.T) {
	data, err := EncodeEvent(Event{SessionID: "s"})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	if bytes.Contains(data, []byte("SessionID")) {
		t.Error("field names must not appear in encoded events")
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error for invalid CBOR")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerNetwork.String(), "NETWORK"},
		{LayerDispatch.String(), "DISPATCH"},
		{Layer(9).String(), "UNKNOWN"},
		{CategoryAck.String(), "ACK"},
		{CategorySetting.String(), "SETTING"},
		{Category(9).String(), "UNKNOWN"},
		{StateEntitySettings.String(), "SETTINGS"},
		{StateEntity(9).String(), "UNKNOWN"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
