package netframe

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dronecmd/dronecmd-go/pkg/log"
)

// Writer writes frames to an underlying writer.
type Writer struct {
	w       io.Writer
	maxSize int
	mu      sync.Mutex
	buf     []byte

	logger    log.Logger
	sessionID string
}

// NewWriter creates a frame writer with the default maximum frame size.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, maxSize: DefaultMaxFrameSize}
}

// SetLogger configures protocol logging for this writer.
// Pass nil to disable logging.
func (fw *Writer) SetLogger(logger log.Logger, sessionID string) {
	fw.logger = logger
	fw.sessionID = sessionID
}

// WriteFrame encodes f and writes it in a single Write call.
// Safe for concurrent use.
func (fw *Writer) WriteFrame(f Frame) error {
	if f.Size() > fw.maxSize {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, f.Size(), fw.maxSize)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	buf, err := f.AppendBinary(fw.buf[:0])
	if err != nil {
		return err
	}
	fw.buf = buf
	if _, err := fw.w.Write(buf); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	if fw.logger != nil {
		fw.logger.Log(frameEvent(f, buf, log.DirectionOut, fw.sessionID))
	}
	return nil
}

// Reader reads frames from an underlying reader.
type Reader struct {
	r       io.Reader
	maxSize int
	hdr     [HeaderSize]byte

	logger    log.Logger
	sessionID string
}

// NewReader creates a frame reader with the default maximum frame size.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, maxSize: DefaultMaxFrameSize}
}

// SetLogger configures protocol logging for this reader.
// Pass nil to disable logging.
func (fr *Reader) SetLogger(logger log.Logger, sessionID string) {
	fr.logger = logger
	fr.sessionID = sessionID
}

// SetMaxFrameSize updates the maximum accepted frame size.
func (fr *Reader) SetMaxFrameSize(size int) {
	fr.maxSize = size
}

// ReadFrame reads the next frame. It returns io.EOF only when the stream
// ends cleanly between frames.
func (fr *Reader) ReadFrame() (Frame, error) {
	if _, err := io.ReadFull(fr.r, fr.hdr[:]); err != nil {
		if err == io.EOF {
			return Frame{}, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrFrameTruncated
		}
		return Frame{}, fmt.Errorf("failed to read frame header: %w", err)
	}

	h, err := parseHeader(fr.hdr[:])
	if err != nil {
		return Frame{}, err
	}
	if uint64(h.size) > uint64(fr.maxSize) {
		return Frame{}, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, h.size, fr.maxSize)
	}

	raw := make([]byte, h.size)
	copy(raw, fr.hdr[:])
	if _, err := io.ReadFull(fr.r, raw[HeaderSize:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || err == io.EOF {
			return Frame{}, ErrFrameTruncated
		}
		return Frame{}, fmt.Errorf("failed to read frame payload: %w", err)
	}

	f := Frame{
		Type:     h.typ,
		BufferID: h.bufferID,
		Seq:      h.seq,
		Payload:  raw[HeaderSize:],
	}
	if fr.logger != nil {
		fr.logger.Log(frameEvent(f, raw, log.DirectionIn, fr.sessionID))
	}
	return f, nil
}

func frameEvent(f Frame, raw []byte, direction log.Direction, sessionID string) log.Event {
	data, truncated := log.NewFrameData(raw)
	category := log.CategoryCommand
	if f.IsAck() {
		category = log.CategoryAck
	}
	return log.Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: direction,
		Layer:     log.LayerNetwork,
		Category:  category,
		Frame: &log.FrameEvent{
			Type:      uint8(f.Type),
			BufferID:  f.BufferID,
			Seq:       f.Seq,
			Size:      f.Size(),
			Data:      data,
			Truncated: truncated,
		},
	}
}

// Conn combines frame reading and writing over one stream.
type Conn struct {
	*Reader
	*Writer
}

// NewConn creates a framed connection over rw.
func NewConn(rw io.ReadWriter) *Conn {
	return &Conn{
		Reader: NewReader(rw),
		Writer: NewWriter(rw),
	}
}

// SetLogger configures protocol logging for both directions.
func (c *Conn) SetLogger(logger log.Logger, sessionID string) {
	c.Reader.SetLogger(logger, sessionID)
	c.Writer.SetLogger(logger, sessionID)
}

