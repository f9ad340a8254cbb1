package netframe

import "sync"

// Sequencer hands out per-buffer sequence numbers. Each buffer counts
// independently and wraps at 255.
type Sequencer struct {
	mu   sync.Mutex
	next map[uint8]uint8
}

// NewSequencer creates a sequencer with every buffer starting at zero.
func NewSequencer() *Sequencer {
	return &Sequencer{next: make(map[uint8]uint8)}
}

// Next returns the sequence number for the next frame on buffer.
func (s *Sequencer) Next(buffer uint8) uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := s.next[buffer]
	s.next[buffer] = seq + 1
	return seq
}

// Reset restarts every buffer at zero.
func (s *Sequencer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = make(map[uint8]uint8)
}
