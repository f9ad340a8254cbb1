// Package features carries the built-in drone protocol schema and the typed
// API generated from it.
//
// The schema lives in schema/*.yaml and is embedded into the binary. Default
// builds the descriptor table, enum registry and codec from it once:
//
//	p := features.MustDefault()
//	d := dispatch.New(dispatch.Config{})
//
//	features.OnPilotingStateFlyingStateChanged(d, func(c *features.PilotingStateFlyingStateChanged) error {
//	    if c.State == features.Ardrone3FlyingStateHovering {
//	        // ...
//	    }
//	    return nil
//	})
//
//	cmd, err := p.Codec.Decode(payload)
//	...
//	d.Dispatch(cmd)
//
// Outgoing commands are built as typed structs and converted with Command:
//
//	payload, err := p.Codec.Encode((&features.PilotingPCMD{Flag: 1, Pitch: 20}).Command())
//
// The *_gen.go files are produced by cmd/dronecmd-gen. Values a peer sends
// that the schema does not declare decode to the enum's Unknown constant.
package features

//go:generate go run ../../cmd/dronecmd-gen -schema schema -output . -package features
