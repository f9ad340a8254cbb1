package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category

	// Command keeps command events whose name contains this substring.
	Command string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Layer:     f.Layer,
		Direction: f.Direction,
		Category:  f.Category,
		Command:   f.Command,
	}
}

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format(timestampFormat)
	sessID := shortenSessionID(event.SessionID)

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s\n", ts, sessID, event.Direction.String(), event.Layer.String(), eventType(event))

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.Setting != nil:
		formatSettingDetails(w, event.Setting)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}
	if event.DeviceName != "" {
		fmt.Fprintf(w, "  Device: %s\n", event.DeviceName)
	}

	fmt.Fprintln(w)
}

// eventType returns the label of the event's payload.
func eventType(event log.Event) string {
	switch {
	case event.Frame != nil:
		if event.Category == log.CategoryAck {
			return "Ack"
		}
		return "Frame"
	case event.Command != nil:
		return "Command"
	case event.Setting != nil:
		return "Setting"
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Type: %s  Buffer: %d  Seq: %d\n", netframe.Type(frame.Type).String(), frame.BufferID, frame.Seq)
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	name := cmd.Name
	if name == "" {
		name = "?"
	}
	fmt.Fprintf(w, "  Command: %s [%d.%d.%d]\n", name, cmd.Feature, cmd.Class, cmd.Command)
	if len(cmd.Args) > 0 {
		fmt.Fprintf(w, "  Args: %s\n", strings.Join(cmd.Args, ", "))
	}
	if cmd.Result != "" {
		fmt.Fprintf(w, "  Result: %s\n", cmd.Result)
	}
}

func formatSettingDetails(w io.Writer, s *log.SettingEvent) {
	fmt.Fprintf(w, "  Setting: %s = %s\n", s.Name, s.Current)
	if s.Min != nil && s.Max != nil {
		fmt.Fprintf(w, "  Range: [%s, %s]\n", *s.Min, *s.Max)
	}
	if s.Count > 0 {
		fmt.Fprintf(w, "  Updates: %d\n", s.Count)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "network":
		return log.LayerNetwork, nil
	case "wire":
		return log.LayerWire, nil
	case "dispatch":
		return log.LayerDispatch, nil
	case "settings":
		return log.LayerSettings, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be network, wire, dispatch, or settings)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "ack":
		return log.CategoryAck, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	case "setting":
		return log.CategorySetting, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, ack, state, error, or setting)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
