package buffer

// Write copies up to len(p) bytes from p into the buffer's free space. It
// never blocks: when the buffer is full it returns a short (possibly zero)
// count with a nil error. Internally it runs a write session per contiguous
// run of free space - at least two when the free region wraps past the end
// of storage - and stops at the first session with nothing to offer.
//
// It fails with ErrIllegalState if a manual write session is currently open.
func (rb *RingBuffer) Write(p []byte) (int, error) {
	wn := 0
	for wn < len(p) {
		r, err := rb.BeginWriting(len(p) - wn)
		if err != nil {
			// Begin failed with the session left closed; there is
			// nothing to pair.
			return wn, err
		}
		if !r.IsValid() {
			if err := rb.FinishWriting(0); err != nil {
				return wn, err
			}
			break
		}
		n := copy(rb.buf[r.Start:r.End+1], p[wn:])
		if err := rb.FinishWriting(n); err != nil {
			return wn, err
		}
		wn += n
	}
	return wn, nil
}

// Read copies up to len(p) buffered bytes into p. It never blocks: when the
// buffer is empty it returns (0, nil). Internally it runs a read session per
// contiguous run of data - at least two when the data window wraps - and
// stops at the first session with nothing to offer.
//
// It fails with ErrIllegalState if a manual read session is currently open.
func (rb *RingBuffer) Read(p []byte) (int, error) {
	rn := 0
	for rn < len(p) {
		r, err := rb.BeginReading(len(p) - rn)
		if err != nil {
			return rn, err
		}
		if !r.IsValid() {
			if err := rb.FinishReading(0); err != nil {
				return rn, err
			}
			break
		}
		n := copy(p[rn:], rb.buf[r.Start:r.End+1])
		if err := rb.FinishReading(n); err != nil {
			return rn, err
		}
		rn += n
	}
	return rn, nil
}

// Discard drops up to n buffered bytes without copying them anywhere and
// returns how many were dropped. Like Read it never blocks and stops early
// when the buffer runs empty.
func (rb *RingBuffer) Discard(n int) (int, error) {
	dn := 0
	for dn < n {
		r, err := rb.BeginReading(n - dn)
		if err != nil {
			return dn, err
		}
		if !r.IsValid() {
			if err := rb.FinishReading(0); err != nil {
				return dn, err
			}
			break
		}
		if err := rb.FinishReading(r.Length()); err != nil {
			return dn, err
		}
		dn += r.Length()
	}
	return dn, nil
}

// Bytes returns a copy of the valid data window in order, oldest byte first.
// The bounds are consistent; the byte contents race with a concurrently open
// write session only for bytes that session has not yet committed.
func (rb *RingBuffer) Bytes() []byte {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	out := make([]byte, rb.size)
	if rb.size == 0 {
		return out
	}
	n := copy(out, rb.buf[rb.index:])
	copy(out[n:], rb.buf[:rb.size-n])
	return out
}
