package buffer

import (
	"errors"
	"testing"
)

func TestFinishWritingNegativeAmount(t *testing.T) {
	rb, _ := New(10)

	r := beginWrite(t, rb, 10)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	if err := rb.FinishWriting(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}

	// The failed finish still closed the session; a fresh pair works.
	r = beginWrite(t, rb, 10)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	finishWrite(t, rb, 10)
}

func TestFinishReadingNegativeAmount(t *testing.T) {
	rb, _ := New(10)

	r := beginWrite(t, rb, 1)
	rb.Storage()[r.Start] = 123
	finishWrite(t, rb, r.Length())

	r = beginRead(t, rb, 1)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	if err := rb.FinishReading(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}

	r = beginRead(t, rb, 1)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	finishRead(t, rb, 1)
}

func TestBeginWritingNegativeMaxLength(t *testing.T) {
	rb, _ := New(10)

	// The session opens before validation fails, so the finish must still
	// be paired.
	r, err := rb.BeginWriting(-2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}
	if r.IsValid() {
		t.Errorf("range=%v", r)
	}
	finishWrite(t, rb, 0)

	r = beginWrite(t, rb, 10)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	finishWrite(t, rb, 10)
}

func TestBeginReadingNegativeMaxLength(t *testing.T) {
	rb, _ := New(10)

	r := beginWrite(t, rb, 1)
	rb.Storage()[r.Start] = 123
	finishWrite(t, rb, r.Length())

	r, err := rb.BeginReading(-2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}
	if r.IsValid() {
		t.Errorf("range=%v", r)
	}
	finishRead(t, rb, 0)

	r = beginRead(t, rb, 1)
	if !r.IsValid() {
		t.Fatalf("range=%v", r)
	}
	finishRead(t, rb, 1)
}

func TestFinishWritingTooMuch(t *testing.T) {
	rb, _ := New(3)

	r := beginWrite(t, rb, 3)
	checkRange(t, r, 0, 2)
	if r.Length() != 3 {
		t.Errorf("length=%d", r.Length())
	}
	if err := rb.FinishWriting(r.Length() + 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}
}

func TestFinishReadingTooMuch(t *testing.T) {
	rb, _ := New(3)

	r := beginWrite(t, rb, 3)
	finishWrite(t, rb, r.Length())

	r = beginRead(t, rb, 2)
	checkRange(t, r, 0, 1)
	if err := rb.FinishReading(10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err=%v", err)
	}
}

func TestFinishWithoutBegin(t *testing.T) {
	rb, _ := New(3)

	if err := rb.FinishWriting(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("finish writing err=%v", err)
	}
	if err := rb.FinishReading(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("finish reading err=%v", err)
	}
}

func TestFinishTwice(t *testing.T) {
	rb, _ := New(3)

	beginWrite(t, rb, 1)
	finishWrite(t, rb, 1)
	if err := rb.FinishWriting(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("finish writing err=%v", err)
	}

	beginRead(t, rb, 1)
	finishRead(t, rb, 1)
	if err := rb.FinishReading(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("finish reading err=%v", err)
	}
}

func TestBeginWhileSessionOpen(t *testing.T) {
	rb, _ := New(3)

	beginWrite(t, rb, 1)
	if _, err := rb.BeginWriting(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}
	// The rejected begin did not open a second session and must not have
	// closed the first one either.
	finishWrite(t, rb, 1)
	if err := rb.FinishWriting(0); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}

	beginRead(t, rb, 1)
	if _, err := rb.BeginReading(1); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}
	finishRead(t, rb, 1)
	if err := rb.FinishReading(0); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}
}

func TestClearWhileWriting(t *testing.T) {
	rb, _ := New(3)

	beginWrite(t, rb, 1)
	if err := rb.Clear(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}
	finishWrite(t, rb, 0)

	if err := rb.Clear(); err != nil {
		t.Errorf("clear with error: %v", err)
	}
}

func TestClearWhileReading(t *testing.T) {
	rb, _ := New(3)

	beginWrite(t, rb, 1)
	finishWrite(t, rb, 1)

	beginRead(t, rb, 1)
	if err := rb.Clear(); !errors.Is(err, ErrIllegalState) {
		t.Errorf("err=%v", err)
	}
	finishRead(t, rb, 0)

	if err := rb.Clear(); err != nil {
		t.Errorf("clear with error: %v", err)
	}
}

func TestConcurrentSessionsAreLegal(t *testing.T) {
	rb, _ := New(4)

	wr := beginWrite(t, rb, 2)
	checkRange(t, wr, 0, 1)

	// A read session alongside an open write session is the intended use.
	rr, err := rb.BeginReading(2)
	if err != nil {
		t.Fatalf("begin reading with error: %v", err)
	}
	checkRange(t, rr, InvalidIndex, InvalidIndex)

	finishRead(t, rb, 0)
	finishWrite(t, rb, 2)
	checkBuffer(t, rb, 0, 2)
}
