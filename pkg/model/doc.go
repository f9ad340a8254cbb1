// Package model provides the command descriptor table: static metadata that
// describes the wire shape of every command in the protocol.
//
// A command is identified by a (feature, class, command) triple. Features
// either group commands into classes, in which case the class id is carried
// on the wire, or list them directly and the class is always zero. Each
// command has an ordered list of argument descriptors; argument order is the
// wire layout.
//
// Tables are built once from a schema bundle with Build and are read-only
// afterwards:
//
//	bundle, _ := schema.LoadDir("schema")
//	table, enums, err := model.Build(bundle)
//	desc, err := table.Lookup(1, 0, 2) // ardrone3.Piloting.PCMD
package model
