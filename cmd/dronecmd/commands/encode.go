package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/dronecmd/dronecmd-go/pkg/features"
	"github.com/dronecmd/dronecmd-go/pkg/netframe"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// EncodeOptions controls RunEncode.
type EncodeOptions struct {
	// Framed wraps the payload in a network frame on the command's buffer.
	Framed bool

	// Seq is the sequence number of the frame.
	Seq uint8
}

// Encode builds the payload of the named command from textual arguments.
func Encode(p *features.Protocol, name string, args []string) (*wire.Command, []byte, error) {
	desc, err := p.Table.LookupByName(name)
	if err != nil {
		return nil, nil, err
	}
	values, err := wire.ParseArgs(desc, args)
	if err != nil {
		return nil, nil, err
	}
	cmd := &wire.Command{ID: desc.ID, Args: values, Descriptor: desc}
	payload, err := p.Codec.Encode(cmd)
	if err != nil {
		return nil, nil, err
	}
	return cmd, payload, nil
}

// RunEncode encodes the named command and prints it as hex.
func RunEncode(p *features.Protocol, name string, args []string, opts EncodeOptions, w io.Writer) error {
	cmd, payload, err := Encode(p, name, args)
	if err != nil {
		return err
	}
	if opts.Framed {
		buffer, typ := netframe.OutboundBuffer(cmd.Descriptor.Buffer)
		f := netframe.Frame{Type: typ, BufferID: buffer, Seq: opts.Seq, Payload: payload}
		if payload, err = f.MarshalBinary(); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, hex.EncodeToString(payload))
	return nil
}
