package schedulers

import (
	"fmt"
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type RoundRobin struct {
	TimeQuantum int
}

func (RoundRobin) Algorithm() Algorithm { return AlgorithmRoundRobin }

func (r RoundRobin) Schedule(processes []core.Process) (responses.ScheduleResponse, error) {
	return ScheduleRoundRobin(processes, r.TimeQuantum)
}

func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: time quantum must be > 0, got %d", core.ErrInvalidParameter, timeQuantum)
	}
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	cpu := core.NewCpu()
	pending := sortedByArrival(core.CopyProcesses(processes))
	roundRobinQueue := newReadyQueue()

	admitArrived := func() {
		for len(pending) > 0 && pending[0].ArrivalTime <= cpu.Clock {
			roundRobinQueue.enq(pending[0])
			pending = pending[1:]
		}
	}

	for len(pending) > 0 || roundRobinQueue.qlen() > 0 {
		admitArrived()
		if roundRobinQueue.qlen() == 0 {
			cpu.WaitUntil(pending[0].ArrivalTime)
			continue
		}

		proccess := roundRobinQueue.deq()
		cpu.Execute(proccess, timeQuantum)

		// arrivals during the slice go ahead of the process that was just preempted
		admitArrived()
		if proccess.RemainingTime > 0 {
			roundRobinQueue.enq(proccess)
		}
	}

	return generateResponse(AlgorithmRoundRobin, processes, cpu), nil
}
