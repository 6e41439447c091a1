package circular

// Queue is a fixed-capacity FIFO queue. Pushing onto a full queue evicts the
// oldest entry to make room.
type Queue[T any] struct {
	capacity uint

	head uint
	size uint
	data []T
}

func NewQueue[T any](capacity uint) *Queue[T] {
	if capacity == 0 {
		panic("capacity must > 0")
	}
	return &Queue[T]{
		capacity: capacity,
		data:     make([]T, capacity),
	}
}

func (q *Queue[T]) Capacity() uint {
	return q.capacity
}

func (q *Queue[T]) Size() uint {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue[T]) IsFull() bool {
	return q.size == q.capacity
}

func (q *Queue[T]) Push(value T) {
	q.data[(q.head+q.size)%q.capacity] = value
	if q.size < q.capacity {
		q.size++
	} else {
		// Full: the oldest entry was just overwritten, advance past it.
		q.head = (q.head + 1) % q.capacity
	}
}

// Front returns the oldest entry without removing it.
func (q *Queue[T]) Front() T {
	if q.size == 0 {
		panic("queue is empty")
	}
	return q.data[q.head]
}

// Pop removes and returns the oldest entry.
func (q *Queue[T]) Pop() T {
	if q.size == 0 {
		panic("queue is empty")
	}
	value := q.data[q.head]
	var zero T
	q.data[q.head] = zero
	q.head = (q.head + 1) % q.capacity
	q.size--
	return value
}
