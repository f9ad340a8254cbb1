// Package schema loads the YAML protocol description that drives the codec.
//
// A protocol is a set of feature documents, one per file, plus an optional
// shared.yaml carrying enums referenced by several features. A feature either
// groups its commands into classes (the class id is then part of the wire
// identity) or lists commands directly:
//
//	name: ardrone3
//	id: 1
//	enums:
//	  - name: FlyingState
//	    values:
//	      - {name: landed, value: 0}
//	classes:
//	  - name: PilotingState
//	    id: 4
//	    commands:
//	      - name: FlyingStateChanged
//	        id: 1
//	        args:
//	          - {name: state, type: enum, enum: FlyingState}
//
// The package only parses and validates; package model turns a Bundle into
// lookup tables.
package schema
