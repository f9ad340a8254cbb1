package commands

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/dronecmd/dronecmd-go/pkg/session"
)

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewShell(protocol(t), session.DefaultConfig(), &out), &out
}

func TestShellEncodeAndSend(t *testing.T) {
	sh, out := newTestShell(t)

	if !sh.Exec("encode ardrone3.Piloting.TakeOff") {
		t.Fatal("encode ended the shell")
	}
	mustContain(t, out.String(), "01000100")

	out.Reset()
	sh.Exec("send ardrone3.Piloting.TakeOff")
	sh.Exec("send ardrone3.Piloting.TakeOff")
	mustContain(t, out.String(),
		"DATA_WITH_ACK buffer=11 seq=0\n040b000b00000001000100",
		"DATA_WITH_ACK buffer=11 seq=1\n040b010b00000001000100",
	)
}

func TestShellDecodeFeedsSettings(t *testing.T) {
	sh, out := newTestShell(t)
	p := protocol(t)

	sh.Exec("decode " + hex.EncodeToString(payload(t, p, "ardrone3.SpeedSettingsState.MaxVerticalSpeedChanged", "1.5", "0.5", "2.5")))
	mustContain(t, out.String(), "MaxVerticalSpeedChanged(current=1.5, min=0.5, max=2.5) -> DELIVERED")

	out.Reset()
	sh.Exec("settings")
	mustContain(t, out.String(), "Settings: 1", "maxVerticalSpeed", "= 1.5 [0.5, 2.5]")

	out.Reset()
	sh.Exec("decode 01 00 01 00")
	mustContain(t, out.String(), "ardrone3.Piloting.TakeOff() -> DROPPED")

	out.Reset()
	sh.Exec("reset")
	sh.Exec("settings")
	mustContain(t, out.String(), "Session reset.", "Settings: 0")
}

func TestShellErrors(t *testing.T) {
	sh, out := newTestShell(t)

	sh.Exec("decode c8000000")
	mustContain(t, out.String(), "Error: unknown command")

	out.Reset()
	sh.Exec("encode")
	mustContain(t, out.String(), "Error: usage: encode")

	out.Reset()
	sh.Exec("fly away")
	mustContain(t, out.String(), "Unknown command: fly")
}

func TestShellHelpAndQuit(t *testing.T) {
	sh, out := newTestShell(t)
	if !sh.Exec("") {
		t.Error("empty line ended the shell")
	}
	sh.Exec("help")
	mustContain(t, out.String(), "Drone Command Shell:", "settings")

	out.Reset()
	sh.Exec("describe common")
	mustContain(t, out.String(), "common (0)", "enum common.DisconnectionCause")

	for _, q := range []string{"quit", "exit", "Q"} {
		if sh.Exec(q) {
			t.Errorf("%q did not end the shell", q)
		}
	}
}
