package fixed

import (
	"testing"
)

func assertRingBufferEqual(t *testing.T, rb *RingBuffer, expected []float64, msg string) {
	t.Helper()
	if rb.Size() != len(expected) {
		t.Errorf("%s: size mismatch - got %d, want %d", msg, rb.Size(), len(expected))
		return
	}

	for i, exp := range expected {
		got := rb.Get(i)
		want := FromFloat64(exp)
		if !got.Eq(want) {
			t.Errorf("%s: at index %d - got %v, want %v", msg, i, got, want)
		}
	}
}

func TestFixedRingBuffer_NewRingBuffer(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		wantPanic bool
	}{
		{"positive capacity", 10, false},
		{"capacity of 1", 1, false},
		{"zero capacity", 0, true},
		{"negative capacity", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("expected panic for capacity %d", tt.capacity)
					}
				}()
			}

			rb := NewRingBuffer(tt.capacity)

			if !tt.wantPanic {
				if rb.Capacity() != tt.capacity {
					t.Errorf("capacity: got %d, want %d", rb.Capacity(), tt.capacity)
				}
				if !rb.IsEmpty() {
					t.Error("new buffer should be empty")
				}
			}
		})
	}
}

func TestFixedRingBuffer_AddAndOverwrite(t *testing.T) {
	rb := NewRingBuffer(3)

	rb.Add(FromFloat64(1))
	rb.Add(FromFloat64(2))
	assertRingBufferEqual(t, rb, []float64{2, 1}, "partial fill")

	rb.Add(FromFloat64(3))
	if !rb.IsFull() {
		t.Error("buffer should be full")
	}
	assertRingBufferEqual(t, rb, []float64{3, 2, 1}, "full")

	// Oldest entry is evicted on overflow.
	rb.Add(FromFloat64(4))
	assertRingBufferEqual(t, rb, []float64{4, 3, 2}, "after overwrite")

	if got := rb.Latest(); !got.Eq(FromFloat64(4)) {
		t.Errorf("Latest: got %v, want 4", got)
	}
	if got := rb.Oldest(); !got.Eq(FromFloat64(2)) {
		t.Errorf("Oldest: got %v, want 2", got)
	}
}

func TestFixedRingBuffer_ToSliceFifo(t *testing.T) {
	rb := NewRingBuffer(4)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		rb.Add(FromFloat64(v))
	}

	got := rb.ToSliceFifo()
	want := []float64{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Eq(FromFloat64(want[i])) {
			t.Errorf("at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFixedRingBuffer_Statistics(t *testing.T) {
	rb := NewRingBuffer(5)
	for _, v := range []float64{2, 4, 4, 4, 6} {
		rb.Add(FromFloat64(v))
	}

	if got := rb.Sum(); !got.Eq(FromFloat64(20)) {
		t.Errorf("Sum: got %v, want 20", got)
	}
	if got := rb.Mean(); !got.Eq(FromFloat64(4)) {
		t.Errorf("Mean: got %v, want 4", got)
	}
	if got := rb.Min(); !got.Eq(FromFloat64(2)) {
		t.Errorf("Min: got %v, want 2", got)
	}
	if got := rb.Max(); !got.Eq(FromFloat64(6)) {
		t.Errorf("Max: got %v, want 6", got)
	}

	// Sample variance of {2,4,4,4,6} is 2, stddev sqrt(2).
	want := FromFloat64(2).Sqrt()
	if got := rb.SampleStdDev(); !got.Eq(want) {
		t.Errorf("SampleStdDev: got %v, want %v", got, want)
	}
}

func TestFixedRingBuffer_Clear(t *testing.T) {
	rb := NewRingBuffer(3)
	rb.Add(FromFloat64(1))
	rb.Add(FromFloat64(2))

	rb.Clear()
	if !rb.IsEmpty() {
		t.Error("buffer should be empty after Clear")
	}
	if rb.Size() != 0 {
		t.Errorf("size after Clear: got %d, want 0", rb.Size())
	}
}
