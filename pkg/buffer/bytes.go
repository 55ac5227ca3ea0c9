package buffer

// Ring16KB creates a new RingBuffer with 16KB capacity.
func Ring16KB() *RingBuffer {
	return mustRing(1 << 14)
}

// Ring4KB creates a new RingBuffer with 4KB capacity.
func Ring4KB() *RingBuffer {
	return mustRing(1 << 12)
}

// Ring1KB creates a new RingBuffer with 1KB capacity.
func Ring1KB() *RingBuffer {
	return mustRing(1 << 10)
}

// Ring256B creates a new RingBuffer with 256 bytes capacity.
func Ring256B() *RingBuffer {
	return mustRing(1 << 8)
}

func mustRing(size int) *RingBuffer {
	rb, err := New(size)
	if err != nil {
		panic(err) // unreachable, size is a positive constant
	}
	return rb
}
