package log

import "time"

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// DeviceName identifies the peer, when known.
	DeviceName string `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address (IP:port).
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // Network layer
	Command     *CommandEvent     `cbor:"11,keyasint,omitempty"` // Wire layer (decoded)
	Setting     *SettingEvent     `cbor:"12,keyasint,omitempty"` // Settings aggregate
	StateChange *StateChangeEvent `cbor:"13,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerNetwork is the network frame layer (buffer ids, sequence numbers).
	LayerNetwork Layer = 0
	// LayerWire is the command codec layer.
	LayerWire Layer = 1
	// LayerDispatch is the listener dispatch layer.
	LayerDispatch Layer = 2
	// LayerSettings is the settings aggregate.
	LayerSettings Layer = 3
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerNetwork:
		return "NETWORK"
	case LayerWire:
		return "WIRE"
	case LayerDispatch:
		return "DISPATCH"
	case LayerSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates a protocol command.
	CategoryCommand Category = 0
	// CategoryAck indicates an acknowledgement frame.
	CategoryAck Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
	// CategorySetting indicates a settings update.
	CategorySetting Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryAck:
		return "ACK"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	case CategorySetting:
		return "SETTING"
	default:
		return "UNKNOWN"
	}
}

// MaxFrameData is the number of frame bytes kept in a FrameEvent.
const MaxFrameData = 256

// FrameEvent captures a network frame.
type FrameEvent struct {
	// Type is the network frame type.
	Type uint8 `cbor:"1,keyasint"`

	// BufferID is the network buffer the frame travels on.
	BufferID uint8 `cbor:"2,keyasint"`

	// Seq is the per-buffer sequence number.
	Seq uint8 `cbor:"3,keyasint"`

	// Size is the frame size in bytes (including header).
	Size int `cbor:"4,keyasint"`

	// Data is the raw frame bytes (may be truncated for large frames).
	Data []byte `cbor:"5,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"6,keyasint,omitempty"`
}

// NewFrameData copies data, keeping at most MaxFrameData bytes.
func NewFrameData(data []byte) ([]byte, bool) {
	n := len(data)
	truncated := n > MaxFrameData
	if truncated {
		n = MaxFrameData
	}
	out := make([]byte, n)
	copy(out, data)
	return out, truncated
}

// CommandEvent captures a decoded command.
type CommandEvent struct {
	// Feature, Class and Command form the wire identity.
	Feature uint8  `cbor:"1,keyasint"`
	Class   uint8  `cbor:"2,keyasint"`
	Command uint16 `cbor:"3,keyasint"`

	// Name is the schema name, e.g. "ardrone3.Piloting.PCMD".
	Name string `cbor:"4,keyasint,omitempty"`

	// Args holds the formatted arguments in declared order.
	Args []string `cbor:"5,keyasint,omitempty"`

	// Result is the dispatch outcome (incoming commands only).
	Result string `cbor:"6,keyasint,omitempty"`
}

// SettingEvent captures a settings aggregate update.
type SettingEvent struct {
	// Name is the setting name.
	Name string `cbor:"1,keyasint"`

	// Current is the formatted current value.
	Current string `cbor:"2,keyasint"`

	// Min and Max are set when the notification carries a range.
	Min *string `cbor:"3,keyasint,omitempty"`
	Max *string `cbor:"4,keyasint,omitempty"`

	// Count is how many times the setting has been written this session.
	Count uint64 `cbor:"5,keyasint,omitempty"`
}

// StateChangeEvent captures session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntitySession indicates a session state change.
	StateEntitySession StateEntity = 0
	// StateEntitySettings indicates the settings aggregate was reset.
	StateEntitySettings StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntitySession:
		return "SESSION"
	case StateEntitySettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the error code (if applicable).
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
