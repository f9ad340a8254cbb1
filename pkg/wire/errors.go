package wire

import (
	"errors"
	"fmt"

	"github.com/dronecmd/dronecmd-go/pkg/model"
)

// Codec errors.
var (
	ErrUnknownCommand       = errors.New("unknown command")
	ErrTruncatedFrame       = errors.New("truncated frame")
	ErrTrailingBytes        = errors.New("trailing bytes")
	ErrInvalidEnumForEncode = errors.New("invalid enum value for encode")
	ErrArgumentMismatch     = errors.New("argument mismatch")
	ErrValueOutOfRange      = errors.New("value out of range")
)

// TrailingBytesError reports bytes left after the last declared argument.
// It accompanies a successfully decoded Command.
type TrailingBytesError struct {
	ID    model.CommandID
	Count int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("command %s: %d trailing bytes ignored", e.ID, e.Count)
}

// Unwrap makes errors.Is(err, ErrTrailingBytes) hold.
func (e *TrailingBytesError) Unwrap() error {
	return ErrTrailingBytes
}

// IsFatal reports whether a Decode error means no Command was produced.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrTrailingBytes)
}
