package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

type readyQueue struct {
	q []*core.Process
}

func newReadyQueue() *readyQueue {
	return &readyQueue{q: make([]*core.Process, 0)}
}

func (q *readyQueue) enq(p *core.Process) {
	q.q = append(q.q, p)
}

func (q *readyQueue) deq() *core.Process {
	if len(q.q) == 0 {
		return nil
	}
	procSelected := q.q[0]
	q.q = q.q[1:]
	return procSelected
}

// deqShortest removes the process with the least remaining time. Ties go to
// the earliest arrival, then the lowest process id.
func (q *readyQueue) deqShortest() *core.Process {
	if len(q.q) == 0 {
		return nil
	}
	best := 0
	for i, p := range q.q[1:] {
		if shorterRemaining(p, q.q[best]) {
			best = i + 1
		}
	}
	procSelected := q.q[best]
	q.q = append(q.q[:best], q.q[best+1:]...)
	return procSelected
}

func (q *readyQueue) qlen() int {
	return len(q.q)
}

func shorterRemaining(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessId < b.ProcessId
}

// sortedByArrival returns pointers into processes ordered by arrival time.
// Equal arrivals keep their input order.
func sortedByArrival(processes []core.Process) []*core.Process {
	pending := make([]*core.Process, len(processes))
	for i := range processes {
		pending[i] = &processes[i]
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})
	return pending
}
