// Package taskqueue is a single-threaded timed task queue. Tasks run only
// from Advance, which the frame driver calls once per frame, so they never
// race the rest of the frame.
package taskqueue

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled task. The zero Handle is never issued.
type Handle uint64

type task struct {
	handle   Handle
	due      time.Duration
	interval time.Duration
	seq      uint64
	once     func()
	repeat   func() bool
	canceled bool
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }
func (h taskHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *taskHeap) Push(x any)   { *h = append(*h, x.(*task)) }
func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Queue holds tasks ordered by due time. Ties run in scheduling order.
type Queue struct {
	now   time.Duration
	seq   uint64
	tasks taskHeap
	live  map[Handle]*task
}

// New returns an empty queue at time zero.
func New() *Queue {
	return &Queue{live: make(map[Handle]*task)}
}

// Now returns the time of the last Advance.
func (q *Queue) Now() time.Duration {
	return q.now
}

// After schedules fn to run once, delay after the current time.
func (q *Queue) After(delay time.Duration, fn func()) Handle {
	return q.push(&task{due: q.now + clampDelay(delay), once: fn})
}

// Every schedules fn to run every interval, first after one interval. The
// task stops when fn returns false or it is canceled.
func (q *Queue) Every(interval time.Duration, fn func() bool) Handle {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return q.push(&task{due: q.now + interval, interval: interval, repeat: fn})
}

// Cancel removes a pending task. It reports whether the task was pending.
func (q *Queue) Cancel(h Handle) bool {
	t, ok := q.live[h]
	if !ok {
		return false
	}
	t.canceled = true
	delete(q.live, h)
	return true
}

// Pending reports whether h is still scheduled.
func (q *Queue) Pending(h Handle) bool {
	_, ok := q.live[h]
	return ok
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.live)
}

// Advance moves the queue clock to now and runs every task due at or before
// it, in due order. It returns the number of task runs.
func (q *Queue) Advance(now time.Duration) int {
	if now > q.now {
		q.now = now
	}
	ran := 0
	for len(q.tasks) > 0 && q.tasks[0].due <= q.now {
		t := heap.Pop(&q.tasks).(*task)
		if t.canceled {
			continue
		}
		ran++
		if t.once != nil {
			delete(q.live, t.handle)
			t.once()
			continue
		}
		if !t.repeat() || t.canceled {
			delete(q.live, t.handle)
			continue
		}
		t.due += t.interval
		t.seq = q.nextSeq()
		heap.Push(&q.tasks, t)
	}
	return ran
}

// Clear cancels every pending task.
func (q *Queue) Clear() {
	for h := range q.live {
		q.Cancel(h)
	}
}

func (q *Queue) push(t *task) Handle {
	t.seq = q.nextSeq()
	t.handle = Handle(t.seq)
	q.live[t.handle] = t
	heap.Push(&q.tasks, t)
	return t.handle
}

func (q *Queue) nextSeq() uint64 {
	q.seq++
	return q.seq
}

func clampDelay(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
