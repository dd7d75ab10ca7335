package queue

// Ring is a fixed capacity FIFO queue. It is not safe for concurrent use.
type Ring[T any] struct {
	head  int
	tail  int
	count int
	buf   []T
}

func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Ring[T]{
		buf: make([]T, capacity),
	}
}

func (q *Ring[T]) Len() int {
	return q.count
}

func (q *Ring[T]) Cap() int {
	return len(q.buf)
}

func (q *Ring[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *Ring[T]) Push(item T) error {
	if q.count == len(q.buf) {
		return ErrOverflow
	}

	q.buf[q.head] = item
	q.head = q.next(q.head)
	q.count++

	return nil
}

func (q *Ring[T]) Peek() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return q.buf[q.tail], nil
}

func (q *Ring[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}

	result := q.buf[q.tail]
	// drop the reference so popped pointers can be collected
	q.buf[q.tail] = zero
	q.tail = q.next(q.tail)
	q.count--

	return result, nil
}

func (q *Ring[T]) next(i int) int {
	if i == len(q.buf)-1 {
		return 0
	}
	return i + 1
}
