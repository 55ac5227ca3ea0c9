package buffer

import (
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidArgument is returned when a caller passes a structurally invalid
// value: a negative capacity, a negative max length, or a finish amount that
// is negative or exceeds what the buffer can account for.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIllegalState is returned on a session protocol violation: beginning a
// session while one of the same kind is open, finishing a session that was
// never begun, or clearing the buffer while any session is open.
var ErrIllegalState = errors.New("illegal state")

// RingBuffer is a fixed-capacity circular byte buffer shared between exactly
// one writer and one reader. It never blocks, sleeps or waits; see the
// package documentation for the session protocol.
//
// The mutex guards index, size and the session flags only. The storage bytes
// themselves are handed out raw through Storage and session ranges; the
// disjointness of concurrently open write and read windows is what makes
// that safe.
type RingBuffer struct {
	mu      sync.Mutex
	buf     []byte
	index   int // start of valid data, always in [0, len(buf))
	size    int // valid byte count, always in [0, len(buf)]
	writing bool
	reading bool
}

// New creates a ring buffer with the given capacity in bytes. A zero
// capacity is legal: the buffer is then permanently both empty and full, and
// every session receives an invalid range.
func New(capacity int) (*RingBuffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("buffer: capacity %d is negative: %w", capacity, ErrInvalidArgument)
	}
	return &RingBuffer{buf: make([]byte, capacity)}, nil
}

// BeginWriting opens a write session and returns the range of storage the
// writer may fill, at most maxLength bytes long. The range is invalid when
// the buffer is full or maxLength is 0. The returned range never wraps past
// the physical end of storage; a second session continues from index 0.
//
// It fails with ErrIllegalState if a write session is already open; no new
// session is opened in that case. With any other error the session HAS been
// opened and the caller must still pair a FinishWriting call, exactly as on
// success.
func (rb *RingBuffer) BeginWriting(maxLength int) (Range, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.writing {
		return invalidRange(), fmt.Errorf("buffer: begin writing before previous finished: %w", ErrIllegalState)
	}
	rb.writing = true

	if maxLength < 0 {
		return invalidRange(), fmt.Errorf("buffer: max length %d is negative: %w", maxLength, ErrInvalidArgument)
	}
	if rb.size == len(rb.buf) || maxLength == 0 {
		return invalidRange(), nil
	}

	start := (rb.index + rb.size) % len(rb.buf)
	bound := len(rb.buf)
	if start < rb.index {
		// Free space has wrapped; the writer may fill up to, but not
		// into, the unread data.
		bound = rb.index
	}
	return Range{Start: start, End: min(start+maxLength, bound) - 1}, nil
}

// FinishWriting closes the current write session, accounting for the number
// of bytes the writer actually filled in. written may be anything from 0 up
// to the length of the range BeginWriting returned.
//
// It fails with ErrIllegalState if no write session is open and with
// ErrInvalidArgument if written is negative or exceeds the remaining
// capacity. The session is closed on every exit path, including errors.
func (rb *RingBuffer) FinishWriting(written int) error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	defer func() { rb.writing = false }()

	if !rb.writing {
		return fmt.Errorf("buffer: finish writing without begin: %w", ErrIllegalState)
	}
	if written < 0 {
		return fmt.Errorf("buffer: written amount %d is negative: %w", written, ErrInvalidArgument)
	}
	if rb.size+written > len(rb.buf) {
		return fmt.Errorf("buffer: written amount %d exceeds free space %d: %w",
			written, len(rb.buf)-rb.size, ErrInvalidArgument)
	}
	rb.size += written
	return nil
}

// BeginReading opens a read session and returns the range of storage holding
// data the reader may consume, at most maxLength bytes long. The range is
// invalid when the buffer is empty or maxLength is 0, and never wraps past
// the physical end of storage.
//
// Error behavior mirrors BeginWriting: ErrIllegalState leaves no session
// open, any other error still requires a paired FinishReading.
func (rb *RingBuffer) BeginReading(maxLength int) (Range, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.reading {
		return invalidRange(), fmt.Errorf("buffer: begin reading before previous finished: %w", ErrIllegalState)
	}
	rb.reading = true

	if maxLength < 0 {
		return invalidRange(), fmt.Errorf("buffer: max length %d is negative: %w", maxLength, ErrInvalidArgument)
	}
	if rb.size == 0 || maxLength == 0 {
		return invalidRange(), nil
	}

	end := min(rb.index+maxLength, rb.index+rb.size, len(rb.buf)) - 1
	return Range{Start: rb.index, End: end}, nil
}

// FinishReading closes the current read session, consuming read bytes from
// the front of the valid data. read may be anything from 0 up to the length
// of the range BeginReading returned.
//
// It fails with ErrIllegalState if no read session is open and with
// ErrInvalidArgument if read is negative or exceeds the buffered data. The
// session is closed on every exit path, including errors.
func (rb *RingBuffer) FinishReading(read int) error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	defer func() { rb.reading = false }()

	if !rb.reading {
		return fmt.Errorf("buffer: finish reading without begin: %w", ErrIllegalState)
	}
	if read < 0 {
		return fmt.Errorf("buffer: read amount %d is negative: %w", read, ErrInvalidArgument)
	}
	if read > rb.size {
		return fmt.Errorf("buffer: read amount %d exceeds data size %d: %w", read, rb.size, ErrInvalidArgument)
	}
	rb.size -= read
	if read > 0 {
		rb.index = (rb.index + read) % len(rb.buf)
	}
	return nil
}

// Clear marks the buffer empty and rewinds the data index to 0. The storage
// bytes are left untouched. It fails with ErrIllegalState while a session of
// either kind is open, since the outstanding range would become meaningless.
func (rb *RingBuffer) Clear() error {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.reading {
		return fmt.Errorf("buffer: cannot clear while a read session is open: %w", ErrIllegalState)
	}
	if rb.writing {
		return fmt.Errorf("buffer: cannot clear while a write session is open: %w", ErrIllegalState)
	}
	rb.index = 0
	rb.size = 0
	return nil
}

// IsEmpty reports whether the buffer holds no data.
func (rb *RingBuffer) IsEmpty() bool {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.size == 0
}

// IsFull reports whether the buffer has no free space.
func (rb *RingBuffer) IsFull() bool {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.size == len(rb.buf)
}

// DataIndex returns the storage index of the first valid data byte. It is
// meaningful only together with DataSize: the valid bytes are the DataSize
// bytes starting at DataIndex, modulo TotalSize.
func (rb *RingBuffer) DataIndex() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.index
}

// DataSize returns the number of valid bytes currently buffered.
func (rb *RingBuffer) DataSize() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.size
}

// TotalSize returns the capacity of the underlying storage, occupied and
// free bytes alike.
func (rb *RingBuffer) TotalSize() int {
	return len(rb.buf)
}

// Storage returns the underlying byte array itself, not a copy. Callers must
// only touch bytes inside a range obtained from their currently open
// session; everything else belongs to the other side or to no one.
func (rb *RingBuffer) Storage() []byte {
	return rb.buf
}
