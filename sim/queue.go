// Implements the WaitQueue, which holds all calls waiting for a free agent.
// Calls are enqueued when they arrive and no agent is available.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of calls waiting for an agent.
// In the simulator, this models customers on hold: they keep their place
// in line until the agent pool grants them a freed agent.
type WaitQueue struct {
	queue []*Call
}

// Enqueue adds a call to the back of the wait queue.
func (wq *WaitQueue) Enqueue(c *Call) {
	wq.queue = append(wq.queue, c)
}

// Dequeue removes and returns the call at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Call {
	if len(wq.queue) == 0 {
		return nil
	}
	head := wq.queue[0]
	wq.queue = wq.queue[1:]
	return head
}

// Peek returns the call at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Call {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of calls in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (wq *WaitQueue) Items() []*Call {
	return wq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// The QueueDiscipline.OrderQueue method is the primary consumer:
//
//	wq.Reorder(func(calls []*Call) {
//	    discipline.OrderQueue(calls, now)
//	})
//
// fn receives the underlying slice and may sort it in-place.
// fn MUST NOT change the slice length (no append/delete).
func (wq *WaitQueue) Reorder(fn func([]*Call)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(wq.queue)
	fn(wq.queue)
	if len(wq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(wq.queue)))
	}
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
