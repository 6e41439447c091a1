package circular

import "testing"

func TestCircularBuffer_PushGet(t *testing.T) {
	b := NewBuffer[int](3)

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	b.Push(1)
	b.Push(2)
	b.Push(3)

	if !b.IsFull() {
		t.Error("buffer should be full")
	}
	if got := b.Latest(); got != 3 {
		t.Errorf("Latest: got %d, want 3", got)
	}
	if got := b.Get(2); got != 1 {
		t.Errorf("Get(2): got %d, want 1", got)
	}

	// Overflow evicts the oldest entry.
	b.Push(4)
	if got := b.Get(2); got != 2 {
		t.Errorf("Get(2) after overflow: got %d, want 2", got)
	}
	if got := b.Latest(); got != 4 {
		t.Errorf("Latest after overflow: got %d, want 4", got)
	}
}

func TestCircularBuffer_PanicOnZeroCapacity(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for zero capacity")
		}
	}()
	NewBuffer[int](0)
}

func TestCircularBuffer_PanicOnOutOfRange(t *testing.T) {
	b := NewBuffer[int](2)
	b.Push(1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out of range index")
		}
	}()
	b.Get(1)
}
