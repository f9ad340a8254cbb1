package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
)

func protocol(t *testing.T) *features.Protocol {
	t.Helper()
	p, err := features.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return p
}

func mustContain(t *testing.T, output string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(output, w) {
			t.Errorf("expected %q in output:\n%s", w, output)
		}
	}
}

func payload(t *testing.T, p *features.Protocol, name string, args ...string) []byte {
	t.Helper()
	_, b, err := Encode(p, name, args)
	if err != nil {
		t.Fatalf("Encode(%s): %v", name, err)
	}
	return b
}

// capture writes frames as a raw network stream.
func capture(t *testing.T, frames ...netframe.Frame) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	w := netframe.NewWriter(&buf)
	for _, f := range frames {
		if err := w.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame: %v", err)
		}
	}
	return &buf
}

// writeLog writes events to a .dlog file in a temp dir and returns its path.
func writeLog(t *testing.T, events ...log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+log.FileExtension)
	l, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	for _, ev := range events {
		l.Log(ev)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}
