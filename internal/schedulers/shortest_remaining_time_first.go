package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Algorithm() Algorithm { return AlgorithmSRTF }

func (ShortestRemainingTimeFirst) Schedule(processes []core.Process) (responses.ScheduleResponse, error) {
	return ScheduleShortestRemainingTimeFirst(processes)
}

func ScheduleShortestRemainingTimeFirst(processes []core.Process) (responses.ScheduleResponse, error) {
	state := newSrtfState(processes)
	for !state.done() {
		state.step()
	}
	state.cpu.Schedule = state.cpu.Schedule.Merge()
	return generateResponse(AlgorithmSRTF, processes, state.cpu), nil
}

// srtfState is the unit-time simulation of preemptive shortest job first.
type srtfState struct {
	cpu     *core.Cpu
	pending []*core.Process
	ready   *readyQueue
	current *core.Process
}

func newSrtfState(processes []core.Process) *srtfState {
	return &srtfState{
		cpu:     core.NewCpu(),
		pending: sortedByArrival(core.CopyProcesses(processes)),
		ready:   newReadyQueue(),
	}
}

func (s *srtfState) done() bool {
	return len(s.pending) == 0 && s.ready.qlen() == 0 && s.current == nil
}

// admit moves every arrived process into the ready queue. An arrival with
// strictly less remaining time than the running process preempts it.
func (s *srtfState) admit() {
	for len(s.pending) > 0 && s.pending[0].ArrivalTime <= s.cpu.Clock {
		arrived := s.pending[0]
		s.pending = s.pending[1:]
		s.ready.enq(arrived)

		if s.current != nil && arrived.RemainingTime < s.current.RemainingTime {
			s.ready.enq(s.current)
			s.current = nil
		}
	}
}

// step advances the simulation by one time unit, or jumps the clock to the
// next arrival when there is nothing to run.
func (s *srtfState) step() {
	s.admit()
	if s.current == nil {
		s.current = s.ready.deqShortest()
	}

	if s.current != nil {
		s.cpu.Execute(s.current, 1)
		if s.current.RemainingTime == 0 {
			s.current = nil
		}
		return
	}

	if len(s.pending) > 0 {
		s.cpu.WaitUntil(s.pending[0].ArrivalTime)
	}
}
