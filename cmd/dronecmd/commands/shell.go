package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/session"
)

// Shell is an interactive session over a protocol. Payloads decoded in the
// shell are dispatched and feed its settings aggregate.
type Shell struct {
	proto *features.Protocol
	sess  *session.Session
	out   io.Writer
}

// NewShell creates a shell writing to out.
func NewShell(p *features.Protocol, cfg session.Config, out io.Writer) *Shell {
	return &Shell{proto: p, sess: session.New(p.Codec, cfg), out: out}
}

// Session returns the shell's session.
func (sh *Shell) Session() *session.Session { return sh.sess }

// Exec runs one input line. It returns false when the shell should exit.
func (sh *Shell) Exec(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		sh.printHelp()
	case "describe", "d":
		opts := DescribeOptions{Enums: true}
		if len(args) > 0 {
			opts.Feature = args[0]
		}
		err = RunDescribe(sh.proto, opts, sh.out)
	case "encode", "e":
		if len(args) < 1 {
			err = fmt.Errorf("usage: encode <command> [args...]")
			break
		}
		err = RunEncode(sh.proto, args[0], args[1:], EncodeOptions{}, sh.out)
	case "send", "s":
		err = sh.cmdSend(args)
	case "decode", "dec":
		err = sh.cmdDecode(args)
	case "settings":
		printSnapshot(sh.out, sh.sess.Aggregate().Snapshot())
	case "reset":
		sh.sess.Reset()
		fmt.Fprintln(sh.out, "Session reset.")
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(sh.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	if err != nil {
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
	return true
}

// cmdSend frames a command on its buffer with the next sequence number.
func (sh *Shell) cmdSend(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: send <command> [args...]")
	}
	cmd, _, err := Encode(sh.proto, args[0], args[1:])
	if err != nil {
		return err
	}
	f, err := sh.sess.Send(cmd)
	if err != nil {
		return err
	}
	raw, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "%s buffer=%d seq=%d\n%s\n", f.Type, f.BufferID, f.Seq, hex.EncodeToString(raw))
	return nil
}

// cmdDecode decodes and dispatches a payload.
func (sh *Shell) cmdDecode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: decode <hex>")
	}
	payload, err := ParseHex(strings.Join(args, ""))
	if err != nil {
		return err
	}
	out := sh.sess.Process(payload)
	if out.Command == nil {
		return out.Err
	}
	fmt.Fprintf(sh.out, "%s -> %s\n", out.Command, out.Result)
	if out.Err != nil {
		fmt.Fprintf(sh.out, "warning: %v\n", out.Err)
	}
	return nil
}

func (sh *Shell) printHelp() {
	fmt.Fprintln(sh.out, `
Drone Command Shell:
  describe [feature]       - List commands (and enums) of the protocol
  encode <cmd> [args...]   - Encode a command payload as hex
  send <cmd> [args...]     - Encode a command into a network frame
  decode <hex>             - Decode and dispatch a command payload
  settings                 - Show the settings collected so far
  reset                    - Clear settings and sequence numbers
  help                     - Show this help
  quit                     - Exit

Commands are named feature.Class.command, e.g. ardrone3.Piloting.TakeOff.`)
}

// Run reads lines from the terminal until EOF, quit or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dronecmd> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	sh.out = rl.Stdout()
	sh.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if !sh.Exec(line) {
			return nil
		}
	}
}
