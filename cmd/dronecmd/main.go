// Command dronecmd inspects and exercises the drone command protocol.
//
// Usage:
//
//	dronecmd <command> [flags] [args]
//
// Commands:
//
//	describe  List the features, commands and enums of the protocol
//	encode    Encode a command to hex
//	decode    Decode a hex payload or network datagram
//	replay    Replay a capture of network frames through a session
//	snapshot  Show settings saved by replay
//	view      View a protocol log file in human-readable format
//	export    Export a protocol log file to JSON or CSV format
//	stats     Show statistics about a protocol log file
//	discover  Browse the network for drones
//	shell     Interactive command shell
//
// Examples:
//
//	# Encode a piloting command wrapped in a network frame
//	dronecmd encode -netframe ardrone3.Piloting.PCMD 1 -10 20 0 -100 0x01020304
//
//	# Decode a payload
//	dronecmd decode 01000100
//
//	# Replay a capture, saving the final settings
//	dronecmd replay -snapshot bebop.settings -protocol-log bebop.dlog capture.bin
//
//	# View only settings events of the log
//	dronecmd view -category setting bebop.dlog
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dronecmd/dronecmd-go/cmd/dronecmd/commands"
	"github.com/dronecmd/dronecmd-go/pkg/discovery"
	"github.com/dronecmd/dronecmd-go/pkg/features"
)

const usage = `dronecmd - Drone Command Protocol Tool

Usage:
  dronecmd <command> [flags] [args]

Commands:
  describe  List the features, commands and enums of the protocol
  encode    Encode a command to hex
  decode    Decode a hex payload or network datagram
  replay    Replay a capture of network frames through a session
  snapshot  Show settings saved by replay
  view      View a protocol log file in human-readable format
  export    Export a protocol log file to JSON or CSV format
  stats     Show statistics about a protocol log file
  discover  Browse the network for drones
  shell     Interactive command shell

Use "dronecmd <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "describe":
		runDescribe(args)
	case "encode":
		runEncode(args)
	case "decode":
		runDecode(args)
	case "replay":
		runReplay(args)
	case "snapshot":
		runSnapshot(args)
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "discover":
		runDiscover(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// env is what protocol commands share: configuration, protocol and logger.
type env struct {
	cfg    *commands.Config
	proto  *features.Protocol
	logger *slog.Logger
	closer io.Closer
}

type envFlags struct {
	config *string
	schema *string
}

func addEnvFlags(fs *flag.FlagSet) envFlags {
	return envFlags{
		config: fs.String("config", "", "YAML configuration file"),
		schema: fs.String("schema", "", "Schema directory (default: built-in schema)"),
	}
}

func (f envFlags) load() *env {
	cfg, err := commands.LoadConfig(*f.config)
	if err != nil {
		fail(err)
	}
	if *f.schema != "" {
		cfg.Schema = *f.schema
	}
	logger, closer, err := commands.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		fail(err)
	}
	proto, err := commands.LoadProtocol(cfg.Schema)
	if err != nil {
		closer.Close()
		fail(fmt.Errorf("loading schema: %w", err))
	}
	return &env{cfg: cfg, proto: proto, logger: logger, closer: closer}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runDescribe(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd describe - List the features, commands and enums of the protocol

Usage:
  dronecmd describe [flags]

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	feature := fs.String("feature", "", "Only describe this feature")
	enums := fs.Bool("enums", false, "Also list enums")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	e := ef.load()
	defer e.closer.Close()
	if err := commands.RunDescribe(e.proto, commands.DescribeOptions{Feature: *feature, Enums: *enums}, os.Stdout); err != nil {
		fail(err)
	}
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd encode - Encode a command to hex

Usage:
  dronecmd encode [flags] <feature.Class.command> [args...]

Enum arguments take a variant name or number, bitfields take a number or
bit names joined by '|'.

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	framed := fs.Bool("netframe", false, "Wrap the payload in a network frame")
	seq := fs.Uint("seq", 0, "Sequence number of the network frame")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: command name required")
		fs.Usage()
		os.Exit(1)
	}

	e := ef.load()
	defer e.closer.Close()
	opts := commands.EncodeOptions{Framed: *framed, Seq: uint8(*seq)}
	if err := commands.RunEncode(e.proto, fs.Arg(0), fs.Args()[1:], opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd decode - Decode a hex payload or network datagram

Usage:
  dronecmd decode [flags] <hex>

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	framed := fs.Bool("netframe", false, "Input is a datagram of network frames")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: hex input required")
		fs.Usage()
		os.Exit(1)
	}

	data, err := commands.ParseHex(strings.Join(fs.Args(), ""))
	if err != nil {
		fail(err)
	}
	e := ef.load()
	defer e.closer.Close()
	if err := commands.RunDecode(e.proto, data, *framed, os.Stdout); err != nil {
		fail(err)
	}
}

func runReplay(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd replay - Replay a capture of network frames through a session

Usage:
  dronecmd replay [flags] <capture>

The capture is a raw stream of network frames as received from a drone.

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	snapshot := fs.String("snapshot", "", "Save the final settings to this file")
	resume := fs.Bool("resume", false, "Start from the settings saved in -snapshot")
	protocolLog := fs.String("protocol-log", "", "Write protocol events to this .dlog file")
	trace := fs.Bool("trace", false, "Log protocol events at debug level")
	printCommands := fs.Bool("commands", false, "Print every dispatched command")
	metrics := fs.Bool("metrics", false, "Print session metrics")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: capture file path required")
		fs.Usage()
		os.Exit(1)
	}

	e := ef.load()
	defer e.closer.Close()
	ctx, cancel := signalContext()
	defer cancel()

	opts := commands.ReplayOptions{
		Config:       e.cfg,
		Logger:       e.logger,
		SnapshotPath: *snapshot,
		Resume:       *resume,
		ProtocolLog:  *protocolLog,
		Trace:        *trace,
		Commands:     *printCommands,
		Metrics:      *metrics,
	}
	if err := commands.RunReplay(ctx, e.proto, fs.Arg(0), opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runSnapshot(args []string) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd snapshot - Show settings saved by replay

Usage:
  dronecmd snapshot [flags] <file>

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: settings file path required")
		fs.Usage()
		os.Exit(1)
	}

	e := ef.load()
	defer e.closer.Close()
	if err := commands.RunSnapshot(e.proto, fs.Arg(0), os.Stdout); err != nil {
		fail(err)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd view - View log file in human-readable format

Usage:
  dronecmd view [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}

	layer := fs.String("layer", "", "Filter by layer (network, wire, dispatch, settings)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (command, ack, state, error, setting)")
	command := fs.String("command", "", "Only show commands whose name contains this text")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := commands.ViewFilter{Command: *command}
	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			fail(err)
		}
		filter.Layer = &l
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fail(err)
		}
		filter.Direction = &d
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd export - Export log file to JSON or CSV format

Usage:
  dronecmd export [flags] <file.dlog>

Flags:
`)
		fs.PrintDefaults()
	}
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd stats - Show statistics about the log file

Usage:
  dronecmd stats <file.dlog>
`)
	}
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fail(err)
	}
}

func runDiscover(args []string) {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd discover - Browse the network for drones

Usage:
  dronecmd discover [flags]

Flags:
`)
		fs.PrintDefaults()
	}
	timeout := fs.Duration("timeout", 5*time.Second, "How long to browse")
	iface := fs.String("interface", "", "Network interface (default: all)")
	verbose := fs.Bool("v", false, "Log browsing details")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := discovery.DefaultBrowserConfig()
	cfg.Interface = *iface
	if *verbose {
		cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	ctx, cancel := signalContext()
	defer cancel()
	if _, err := commands.RunDiscover(ctx, discovery.NewBrowser(cfg), *timeout, os.Stdout); err != nil {
		fail(err)
	}
}

func runShell(args []string) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `dronecmd shell - Interactive command shell

Usage:
  dronecmd shell [flags]

Flags:
`)
		fs.PrintDefaults()
	}
	ef := addEnvFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	e := ef.load()
	defer e.closer.Close()
	ctx, cancel := signalContext()
	defer cancel()

	sc := e.cfg.SessionConfig()
	sc.Logger = e.logger
	if err := commands.NewShell(e.proto, sc, os.Stdout).Run(ctx); err != nil {
		fail(err)
	}
}
