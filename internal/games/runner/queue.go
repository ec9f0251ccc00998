package runner

// ObstacleQueue is a fixed-capacity ring of obstacles ordered oldest first.
// Once full, Recycle keeps the length constant: it drops the oldest
// obstacle and appends the new one.
type ObstacleQueue struct {
	buf  []Obstacle
	head int // index of the oldest obstacle
	n    int
}

// NewObstacleQueue creates an empty queue. Capacity is at least 1.
func NewObstacleQueue(capacity int) *ObstacleQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &ObstacleQueue{buf: make([]Obstacle, capacity)}
}

// Len returns the number of obstacles in the queue.
func (q *ObstacleQueue) Len() int {
	return q.n
}

// Cap returns the fixed capacity.
func (q *ObstacleQueue) Cap() int {
	return len(q.buf)
}

// Full reports whether the queue holds Cap obstacles.
func (q *ObstacleQueue) Full() bool {
	return q.n == len(q.buf)
}

// Reset empties the queue.
func (q *ObstacleQueue) Reset() {
	q.head = 0
	q.n = 0
}

// Push appends an obstacle. Returns false when the queue is full.
func (q *ObstacleQueue) Push(o Obstacle) bool {
	if q.Full() {
		return false
	}
	q.buf[(q.head+q.n)%len(q.buf)] = o
	q.n++
	return true
}

// Recycle discards the oldest obstacle and appends o.
// On a queue that is not full it behaves like Push.
func (q *ObstacleQueue) Recycle(o Obstacle) {
	if !q.Full() {
		q.Push(o)
		return
	}
	q.buf[q.head] = o
	q.head = (q.head + 1) % len(q.buf)
}

// At returns the i-th obstacle, 0 being the oldest.
// It panics if i is out of range, like a slice index.
func (q *ObstacleQueue) At(i int) *Obstacle {
	if i < 0 || i >= q.n {
		panic("runner: obstacle index out of range")
	}
	return &q.buf[(q.head+i)%len(q.buf)]
}

// Oldest returns the obstacle spawned first, or nil when empty.
func (q *ObstacleQueue) Oldest() *Obstacle {
	if q.n == 0 {
		return nil
	}
	return q.At(0)
}

// Newest returns the obstacle spawned last, or nil when empty.
func (q *ObstacleQueue) Newest() *Obstacle {
	if q.n == 0 {
		return nil
	}
	return q.At(q.n - 1)
}
