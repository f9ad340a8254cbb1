package settings

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// Range holds the bounds carried by notifications such as MaxTiltChanged.
type Range struct {
	Min wire.Value
	Max wire.Value
}

// Field is one setting as last reported by the device.
type Field struct {
	Name    string
	Current wire.Value

	// Range is nil when the notification carries no bounds.
	Range *Range

	// Payload holds every argument of the last notification in wire order.
	Payload []wire.Value

	// Source is the command that last wrote the field.
	Source    model.CommandID
	UpdatedAt time.Time

	// Count is the number of notifications applied to this field.
	Count uint64
}

func (f Field) clone() Field {
	out := f
	if f.Range != nil {
		r := *f.Range
		out.Range = &r
	}
	if f.Payload != nil {
		out.Payload = append([]wire.Value(nil), f.Payload...)
	}
	return out
}

// Aggregate is the settings view of one session.
type Aggregate struct {
	mu     sync.RWMutex
	fields map[string]Field
	now    func() time.Time
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{fields: make(map[string]Field), now: time.Now}
}

// Apply records a notification for binding. Current, Range and Payload are
// replaced unconditionally.
func (a *Aggregate) Apply(binding *model.SettingBinding, cmd *wire.Command) (Field, error) {
	if binding == nil {
		return Field{}, fmt.Errorf("command %s has no setting binding", cmd.Name())
	}
	n := len(cmd.Args)
	if binding.Current >= n || binding.Min >= n || binding.Max >= n {
		return Field{}, fmt.Errorf("setting %s: command %s has %d arguments", binding.Name, cmd.Name(), n)
	}

	f := Field{
		Name:    binding.Name,
		Current: cmd.Args[binding.Current],
		Payload: append([]wire.Value(nil), cmd.Args...),
		Source:  cmd.ID,
	}
	if binding.HasRange() {
		f.Range = &Range{Min: cmd.Args[binding.Min], Max: cmd.Args[binding.Max]}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	f.UpdatedAt = a.now()
	f.Count = a.fields[binding.Name].Count + 1
	a.fields[binding.Name] = f
	return f.clone(), nil
}

// Get returns a copy of the named field. ok is false until the device has
// reported the setting.
func (a *Aggregate) Get(name string) (Field, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f, ok := a.fields[name]
	if !ok {
		return Field{}, false
	}
	return f.clone(), true
}

// Current returns the current value of the named setting.
func (a *Aggregate) Current(name string) (wire.Value, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f, ok := a.fields[name]
	return f.Current, ok
}

// Range returns the bounds of the named setting. ok is false when the
// setting is unset or was reported without bounds.
func (a *Aggregate) Range(name string) (Range, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f, ok := a.fields[name]
	if !ok || f.Range == nil {
		return Range{}, false
	}
	return *f.Range, true
}

// Names returns the names of all reported settings, sorted.
func (a *Aggregate) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := make([]string, 0, len(a.fields))
	for name := range a.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of reported settings.
func (a *Aggregate) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.fields)
}

// Reset clears every field. Only session teardown or reconnect calls it.
func (a *Aggregate) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fields = make(map[string]Field)
}

// Snapshot is a point-in-time deep copy of an aggregate.
type Snapshot struct {
	TakenAt time.Time
	Fields  map[string]Field
}

// Get returns the named field of the snapshot.
func (s Snapshot) Get(name string) (Field, bool) {
	f, ok := s.Fields[name]
	return f, ok
}

// Names returns the field names, sorted.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot copies the aggregate.
func (a *Aggregate) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := Snapshot{TakenAt: a.now(), Fields: make(map[string]Field, len(a.fields))}
	for name, f := range a.fields {
		s.Fields[name] = f.clone()
	}
	return s
}

// Restore replaces the aggregate's fields with those of s.
func (a *Aggregate) Restore(s Snapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fields = make(map[string]Field, len(s.Fields))
	for name, f := range s.Fields {
		a.fields[name] = f.clone()
	}
}
