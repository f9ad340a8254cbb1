package model

import (
	"fmt"
	"sort"
	"strings"
)

// Table is the immutable command descriptor table. Lookups are safe for
// concurrent use.
type Table struct {
	features       map[uint8]*FeatureDescriptor
	featuresByName map[string]*FeatureDescriptor
	commands       map[CommandID]*CommandDescriptor
	byName         map[string]*CommandDescriptor
	sorted         []*CommandDescriptor
}

// NewTable indexes features and commands. Every command must reference one
// of the given features and identities must be unique.
func NewTable(features []*FeatureDescriptor, commands []*CommandDescriptor) (*Table, error) {
	t := &Table{
		features:       make(map[uint8]*FeatureDescriptor, len(features)),
		featuresByName: make(map[string]*FeatureDescriptor, len(features)),
		commands:       make(map[CommandID]*CommandDescriptor, len(commands)),
		byName:         make(map[string]*CommandDescriptor, len(commands)),
	}
	for _, f := range features {
		if _, ok := t.features[f.ID]; ok {
			return nil, fmt.Errorf("feature id %d registered twice", f.ID)
		}
		t.features[f.ID] = f
		t.featuresByName[f.Name] = f
	}
	for _, c := range commands {
		if c.Feature == nil || t.features[c.ID.Feature] != c.Feature {
			return nil, fmt.Errorf("command %s: feature %d not in table", c.Name, c.ID.Feature)
		}
		if !c.Feature.HasClasses && c.ID.Class != 0 {
			return nil, fmt.Errorf("command %s: class %d on a feature without classes", c.FullName(), c.ID.Class)
		}
		if prev, ok := t.commands[c.ID]; ok {
			return nil, fmt.Errorf("command %s: identity %s already used by %s", c.FullName(), c.ID, prev.FullName())
		}
		t.commands[c.ID] = c
		t.byName[c.FullName()] = c
		t.sorted = append(t.sorted, c)
	}
	sort.Slice(t.sorted, func(i, j int) bool { return t.sorted[i].ID.Less(t.sorted[j].ID) })
	return t, nil
}

// Lookup returns the descriptor for an identity triple.
func (t *Table) Lookup(feature, class uint8, command uint16) (*CommandDescriptor, error) {
	return t.Get(CommandID{Feature: feature, Class: class, Command: command})
}

// Get returns the descriptor for id.
func (t *Table) Get(id CommandID) (*CommandDescriptor, error) {
	if d, ok := t.commands[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, id)
}

// LookupByName resolves "feature.Class.command" (or "feature.command").
// Matching is case-insensitive when no exact match exists.
func (t *Table) LookupByName(name string) (*CommandDescriptor, error) {
	if d, ok := t.byName[name]; ok {
		return d, nil
	}
	for full, d := range t.byName {
		if strings.EqualFold(full, name) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
}

// Commands returns every descriptor ordered by identity.
func (t *Table) Commands() []*CommandDescriptor {
	out := make([]*CommandDescriptor, len(t.sorted))
	copy(out, t.sorted)
	return out
}

// FeatureCommands returns the descriptors of one feature ordered by identity.
func (t *Table) FeatureCommands(id uint8) []*CommandDescriptor {
	var out []*CommandDescriptor
	for _, c := range t.sorted {
		if c.ID.Feature == id {
			out = append(out, c)
		}
	}
	return out
}

// Feature returns the feature with the given wire id.
func (t *Table) Feature(id uint8) (*FeatureDescriptor, bool) {
	f, ok := t.features[id]
	return f, ok
}

// FeatureByName returns the feature with the given name.
func (t *Table) FeatureByName(name string) (*FeatureDescriptor, bool) {
	f, ok := t.featuresByName[name]
	return f, ok
}

// Features returns all features ordered by id.
func (t *Table) Features() []*FeatureDescriptor {
	out := make([]*FeatureDescriptor, 0, len(t.features))
	for _, f := range t.features {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.commands)
}
