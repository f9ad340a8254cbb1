package dispatch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/log"
	"github.com/dronecmd/dronecmd-go/pkg/model"
	"github.com/dronecmd/dronecmd-go/pkg/wire"
)

// ErrListenerFailure wraps errors and panics raised by listeners.
var ErrListenerFailure = errors.New("listener failure")

// Listener receives decoded commands. The command is only valid for the
// duration of the call; copy out what must be kept.
type Listener interface {
	OnCommand(cmd *wire.Command) error
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(cmd *wire.Command) error

// OnCommand calls f(cmd).
func (f ListenerFunc) OnCommand(cmd *wire.Command) error { return f(cmd) }

// Result is the outcome of a Dispatch call.
type Result uint8

const (
	// ResultDelivered means every recipient handled the command.
	ResultDelivered Result = iota
	// ResultDropped means nothing was registered for the command.
	ResultDropped
	// ResultListenerFailed means a recipient returned an error or panicked.
	ResultListenerFailed
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case ResultDelivered:
		return "DELIVERED"
	case ResultDropped:
		return "DROPPED"
	case ResultListenerFailed:
		return "LISTENER_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Config configures a Dispatcher.
type Config struct {
	// Logger is used for operational logging. Nil discards.
	Logger *slog.Logger

	// ProtocolLogger receives listener failure events. Nil disables.
	ProtocolLogger log.Logger

	// SessionID tags protocol events.
	SessionID string

	// OnFailure, if set, is called after each listener failure.
	OnFailure func(cmd *wire.Command, err error)
}

// Dispatcher maps command identities to listeners.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[model.CommandID]Listener
	sink      Listener

	logger    *slog.Logger
	plog      log.Logger
	sessionID string
	onFailure func(cmd *wire.Command, err error)
}

// New creates a dispatcher.
func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{
		listeners: make(map[model.CommandID]Listener),
		logger:    logger,
		plog:      log.OrNoop(cfg.ProtocolLogger),
		sessionID: cfg.SessionID,
		onFailure: cfg.OnFailure,
	}
}

// Register installs l for id and returns the listener it replaced, if any.
// A nil listener unregisters.
func (d *Dispatcher) Register(id model.CommandID, l Listener) Listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.listeners[id]
	if l == nil {
		delete(d.listeners, id)
	} else {
		d.listeners[id] = l
	}
	return prev
}

// RegisterName resolves a "feature.Class.command" name in table and
// registers l for it.
func (d *Dispatcher) RegisterName(table *model.Table, name string, l Listener) (Listener, error) {
	desc, err := table.LookupByName(name)
	if err != nil {
		return nil, err
	}
	return d.Register(desc.ID, l), nil
}

// Unregister removes the listener for id and returns it.
func (d *Dispatcher) Unregister(id model.CommandID) Listener {
	return d.Register(id, nil)
}

// Listener returns the listener registered for id.
func (d *Dispatcher) Listener(id model.CommandID) (Listener, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	l, ok := d.listeners[id]
	return l, ok
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// SetSettingsSink installs the recipient of setting notifications. It runs
// before the command's own listener. Nil removes it.
func (d *Dispatcher) SetSettingsSink(l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = l
}

// Dispatch delivers cmd synchronously. No lock is held while recipients run,
// so listeners may register or unregister. The returned error wraps
// ErrListenerFailure and is informational: the dispatcher stays usable.
func (d *Dispatcher) Dispatch(cmd *wire.Command) (Result, error) {
	d.mu.RLock()
	listener := d.listeners[cmd.ID]
	var sink Listener
	if cmd.Descriptor != nil && cmd.Descriptor.Setting != nil {
		sink = d.sink
	}
	d.mu.RUnlock()

	if listener == nil && sink == nil {
		d.logger.Debug("no listener, dropping command", "command", cmd.Name())
		return ResultDropped, nil
	}

	var errs []error
	if sink != nil {
		if err := d.invoke(sink, cmd); err != nil {
			errs = append(errs, err)
		}
	}
	if listener != nil {
		if err := d.invoke(listener, cmd); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return ResultListenerFailed, errors.Join(errs...)
	}
	return ResultDelivered, nil
}

// invoke runs l, converting a returned error or a panic into a wrapped
// ErrListenerFailure.
func (d *Dispatcher) invoke(l Listener, cmd *wire.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: panic: %v", ErrListenerFailure, cmd.Name(), r)
		}
		if err != nil {
			d.reportFailure(cmd, err)
		}
	}()

	if lerr := l.OnCommand(cmd); lerr != nil {
		return fmt.Errorf("%w: %s: %w", ErrListenerFailure, cmd.Name(), lerr)
	}
	return nil
}

func (d *Dispatcher) reportFailure(cmd *wire.Command, err error) {
	d.logger.Warn("listener failed", "command", cmd.Name(), "error", err)
	d.plog.Log(log.Event{
		Timestamp: time.Now(),
		SessionID: d.sessionID,
		Direction: log.DirectionIn,
		Layer:     log.LayerDispatch,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerDispatch,
			Message: err.Error(),
			Context: cmd.Name(),
		},
	})
	if d.onFailure != nil {
		d.onFailure(cmd, err)
	}
}
