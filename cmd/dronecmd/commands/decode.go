package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// ParseHex decodes a hex dump. Whitespace, ':' separators and a leading
// "0x" are ignored.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// RunDecode decodes a command payload, or with framed set, a datagram of
// network frames, and prints the result.
func RunDecode(p *features.Protocol, data []byte, framed bool, w io.Writer) error {
	if !framed {
		return decodePayload(p.Codec, data, w)
	}

	frames, perr := netframe.ParseAll(data)
	var errs []error
	for _, f := range frames {
		fmt.Fprintf(w, "frame %s buffer=%d seq=%d size=%d\n", f.Type, f.BufferID, f.Seq, f.Size())
		switch f.Type {
		case netframe.TypeAck:
			if seq, ok := f.AckedSeq(); ok {
				fmt.Fprintf(w, "  ack of buffer %d seq %d\n", netframe.AckedBuffer(f.BufferID), seq)
			}
		case netframe.TypeData, netframe.TypeDataWithAck:
			if err := decodePayload(p.Codec, f.Payload, indent{w}); err != nil {
				errs = append(errs, err)
			}
		default:
			fmt.Fprintf(w, "  %d payload bytes\n", len(f.Payload))
		}
	}
	if perr != nil {
		errs = append(errs, perr)
	}
	return errors.Join(errs...)
}

func decodePayload(codec *wire.Codec, payload []byte, w io.Writer) error {
	cmd, err := codec.Decode(payload)
	if wire.IsFatal(err) {
		return err
	}
	fmt.Fprintln(w, cmd.String())
	if err != nil {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
	return nil
}

// indent prefixes every write with two spaces. Callers write whole lines.
type indent struct{ w io.Writer }

func (i indent) Write(b []byte) (int, error) {
	if _, err := io.WriteString(i.w, "  "); err != nil {
		return 0, err
	}
	return i.w.Write(b)
}
