// Package buffer provides a fixed-capacity circular byte buffer for one
// writer and one reader running concurrently without ever blocking each
// other.
//
// Unlike a pipe or a blocking queue, RingBuffer never waits: every request
// for space or data returns immediately. When the buffer is momentarily full
// or empty the returned Range is invalid (see Range.IsValid) rather than the
// call stalling or failing. This makes it suitable for producer/consumer
// pipelines - a network reader feeding a decoder, for example - where neither
// side may be allowed to stall the other.
//
// Access follows a two-phase session protocol. A writer calls BeginWriting to
// obtain a Range describing storage it may fill, copies bytes into
// Storage()[r.Start : r.End+1], then calls FinishWriting with the amount
// actually written. Reading is symmetric through BeginReading/FinishReading.
// Begin and finish calls must always be paired, even when a call returns an
// error:
//
//	r, err := rb.BeginWriting(len(p))
//	if err == nil {
//		var n int
//		if r.IsValid() {
//			n = copy(rb.Storage()[r.Start:r.End+1], p)
//		}
//		err = rb.FinishWriting(n)
//	}
//
// The buffer does not overwrite data when full: a write session on a full
// buffer simply receives an invalid range. A single session never wraps
// around the physical end of storage; after filling up to the end, a second
// begin/finish pair continues from index 0.
//
// One write session and one read session may be open at the same time - that
// is the point - but never two sessions of the same kind. The internal lock
// covers only the cursor and session bookkeeping, not the storage bytes:
// the regions handed to a concurrently open writer and reader are disjoint by
// construction, so each side copies without synchronization.
//
// For callers that do not need zero-copy access, Write, Read and Discard wrap
// the session protocol into non-blocking copying calls that may make partial
// (or zero) progress.
package buffer
