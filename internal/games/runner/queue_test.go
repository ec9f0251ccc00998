package runner

import "testing"

func TestObstacleQueue(t *testing.T) {
	q := NewObstacleQueue(3)
	if q.Oldest() != nil || q.Newest() != nil {
		t.Fatal("empty queue should have no oldest or newest")
	}

	for i := 0; i < 3; i++ {
		if !q.Push(Obstacle{X: float64(i)}) {
			t.Fatalf("push %d rejected", i)
		}
	}
	if q.Push(Obstacle{X: 99}) {
		t.Error("push onto a full queue should be rejected")
	}

	for i := 10; i < 15; i++ {
		q.Recycle(Obstacle{X: float64(i)})
		if q.Len() != 3 {
			t.Fatalf("Len after recycle = %d, expected 3", q.Len())
		}
	}

	// Oldest first
	for i, want := range []float64{12, 13, 14} {
		if got := q.At(i).X; got != want {
			t.Errorf("At(%d).X = %v, expected %v", i, got, want)
		}
	}
	if q.Oldest().X != 12 || q.Newest().X != 14 {
		t.Errorf("Oldest/Newest = %v/%v", q.Oldest().X, q.Newest().X)
	}

	// At returns a pointer into the ring
	q.At(1).X = -1
	if q.At(1).X != -1 {
		t.Error("At should allow in-place updates")
	}

	q.Reset()
	if q.Len() != 0 || q.Cap() != 3 {
		t.Errorf("after Reset Len=%d Cap=%d", q.Len(), q.Cap())
	}
}

func TestObstacleQueueMinimumCapacity(t *testing.T) {
	q := NewObstacleQueue(0)
	if q.Cap() != 1 {
		t.Errorf("Cap = %d, expected 1", q.Cap())
	}

	// Recycle on a non-full queue appends
	q.Recycle(Obstacle{X: 5})
	if q.Len() != 1 || q.Oldest().X != 5 {
		t.Errorf("Recycle on empty queue: Len=%d", q.Len())
	}
}

func TestObstacleQueueAtOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("At past Len should panic")
		}
	}()
	q := NewObstacleQueue(2)
	q.Push(Obstacle{})
	q.At(1)
}
