package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/settings"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// ErrVersionMismatch is returned when a state file has an unsupported version.
var ErrVersionMismatch = errors.New("unsupported state version")

var (
	stateEncMode cbor.EncMode
	stateDecMode cbor.DecMode
)

func init() {
	var err error
	stateEncMode, err = cbor.EncOptions{
		Sort: cbor.SortCanonical,
		Time: cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create state CBOR encoder mode: %v", err))
	}
	stateDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create state CBOR decoder mode: %v", err))
	}
}

// SettingsState is the persisted form of a settings snapshot.
type SettingsState struct {
	// Version is the state file format version.
	Version int `cbor:"1,keyasint"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `cbor:"2,keyasint"`

	// DeviceName identifies the device the settings belong to.
	DeviceName string `cbor:"3,keyasint,omitempty"`

	// TakenAt is when the snapshot was taken.
	TakenAt time.Time `cbor:"4,keyasint"`

	// Fields are sorted by name.
	Fields []FieldRecord `cbor:"5,keyasint,omitempty"`
}

// FieldRecord is one persisted setting.
type FieldRecord struct {
	Name string `cbor:"1,keyasint"`

	// Feature, Class and Command identify the notification that wrote it.
	Feature uint8  `cbor:"2,keyasint"`
	Class   uint8  `cbor:"3,keyasint"`
	Command uint16 `cbor:"4,keyasint"`

	// Payload holds every argument of that notification.
	Payload []ValueRecord `cbor:"5,keyasint"`

	UpdatedAt time.Time `cbor:"6,keyasint"`
	Count     uint64    `cbor:"7,keyasint"`
}

// ValueRecord is a tagged argument value. Enums keep their raw integer in
// Int.
type ValueRecord struct {
	Kind  uint8   `cbor:"1,keyasint"`
	Int   int64   `cbor:"2,keyasint,omitempty"`
	Uint  uint64  `cbor:"3,keyasint,omitempty"`
	Float float64 `cbor:"4,keyasint,omitempty"`
	Text  string  `cbor:"5,keyasint,omitempty"`
}

// NewSettingsState converts a snapshot to its persisted form.
func NewSettingsState(s settings.Snapshot, deviceName string) *SettingsState {
	st := &SettingsState{
		Version:    StateVersion,
		DeviceName: deviceName,
		TakenAt:    s.TakenAt,
	}
	for _, name := range s.Names() {
		f := s.Fields[name]
		rec := FieldRecord{
			Name:      f.Name,
			Feature:   f.Source.Feature,
			Class:     f.Source.Class,
			Command:   f.Source.Command,
			Payload:   make([]ValueRecord, len(f.Payload)),
			UpdatedAt: f.UpdatedAt,
			Count:     f.Count,
		}
		for i, v := range f.Payload {
			rec.Payload[i] = valueRecord(v)
		}
		st.Fields = append(st.Fields, rec)
	}
	return st
}

func valueRecord(v wire.Value) ValueRecord {
	r := ValueRecord{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case wire.KindInt, wire.KindEnum:
		r.Int = v.Int()
	case wire.KindUint, wire.KindBits:
		r.Uint = v.Uint()
	case wire.KindFloat:
		r.Float = v.Float()
	case wire.KindString:
		r.Text = v.Text()
	}
	return r
}

// Snapshot rebuilds a settings snapshot, resolving each field's source
// command in table.
func (st *SettingsState) Snapshot(table *model.Table) (settings.Snapshot, error) {
	s := settings.Snapshot{TakenAt: st.TakenAt, Fields: make(map[string]settings.Field, len(st.Fields))}
	for _, rec := range st.Fields {
		f, err := rec.field(table)
		if err != nil {
			return settings.Snapshot{}, fmt.Errorf("setting %s: %w", rec.Name, err)
		}
		s.Fields[f.Name] = f
	}
	return s, nil
}

func (rec FieldRecord) field(table *model.Table) (settings.Field, error) {
	id := model.CommandID{Feature: rec.Feature, Class: rec.Class, Command: rec.Command}
	desc, err := table.Get(id)
	if err != nil {
		return settings.Field{}, err
	}
	b := desc.Setting
	if b == nil {
		return settings.Field{}, fmt.Errorf("command %s is not a setting notification", desc.FullName())
	}
	if len(rec.Payload) != len(desc.Args) {
		return settings.Field{}, fmt.Errorf("command %s: %d values for %d arguments", desc.FullName(), len(rec.Payload), len(desc.Args))
	}

	payload := make([]wire.Value, len(rec.Payload))
	for i, r := range rec.Payload {
		v, err := r.value(&desc.Args[i])
		if err != nil {
			return settings.Field{}, fmt.Errorf("argument %s: %w", desc.Args[i].Name, err)
		}
		payload[i] = v
	}

	f := settings.Field{
		Name:      rec.Name,
		Current:   payload[b.Current],
		Payload:   payload,
		Source:    id,
		UpdatedAt: rec.UpdatedAt,
		Count:     rec.Count,
	}
	if b.HasRange() {
		f.Range = &settings.Range{Min: payload[b.Min], Max: payload[b.Max]}
	}
	return f, nil
}

func (r ValueRecord) value(arg *model.ArgDescriptor) (wire.Value, error) {
	switch wire.Kind(r.Kind) {
	case wire.KindInt:
		return wire.Int64(r.Int), nil
	case wire.KindUint:
		return wire.Uint64(r.Uint), nil
	case wire.KindFloat:
		return wire.Float64(r.Float), nil
	case wire.KindString:
		return wire.Str(r.Text), nil
	case wire.KindBits:
		return wire.Bits(r.Uint), nil
	case wire.KindEnum:
		if arg.Enum == nil {
			return wire.Value{}, fmt.Errorf("enum value for non-enum argument")
		}
		return wire.ResolveEnum(arg.Enum, r.Int), nil
	default:
		return wire.Value{}, fmt.Errorf("invalid value kind %d", r.Kind)
	}
}

// SettingsStore manages persistence of settings state to a CBOR file.
type SettingsStore struct {
	mu   sync.Mutex
	path string
}

// NewSettingsStore creates a store backed by path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the backing file path.
func (s *SettingsStore) Path() string { return s.path }

// Save persists state to disk. The file is replaced atomically.
func (s *SettingsStore) Save(state *SettingsState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}
	sort.Slice(state.Fields, func(i, j int) bool { return state.Fields[i].Name < state.Fields[j].Name })

	data, err := stateEncMode.Marshal(state)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the state from disk.
// Returns nil, nil if the file doesn't exist.
func (s *SettingsStore) Load() (*SettingsState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &SettingsState{}
	if err := stateDecMode.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.Version != StateVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersionMismatch, state.Version)
	}
	return state, nil
}

// Clear removes the state file.
func (s *SettingsStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SaveSnapshot converts and saves an aggregate snapshot.
func (s *SettingsStore) SaveSnapshot(snap settings.Snapshot, deviceName string) error {
	return s.Save(NewSettingsState(snap, deviceName))
}

// LoadSnapshot loads the state and rebuilds it against table. ok is false
// when no state has been saved.
func (s *SettingsStore) LoadSnapshot(table *model.Table) (settings.Snapshot, bool, error) {
	st, err := s.Load()
	if err != nil || st == nil {
		return settings.Snapshot{}, false, err
	}
	snap, err := st.Snapshot(table)
	if err != nil {
		return settings.Snapshot{}, false, err
	}
	return snap, true, nil
}
