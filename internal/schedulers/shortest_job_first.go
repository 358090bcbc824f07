package schedulers

import (
	"log"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type ShortestJobFirst struct {
	Preemptive bool
}

func (s ShortestJobFirst) Algorithm() Algorithm {
	if s.Preemptive {
		return AlgorithmSRTF
	}
	return AlgorithmSJF
}

func (s ShortestJobFirst) Schedule(processes []core.Process) (responses.ScheduleResponse, error) {
	return ScheduleShortestJobFirst(processes, s.Preemptive)
}

// ScheduleShortestJobFirst orders the whole workload by burst time, then
// arrival time, and runs it without preemption. With preemptive set it
// schedules by shortest remaining time instead.
func ScheduleShortestJobFirst(processes []core.Process, preemptive bool) (responses.ScheduleResponse, error) {
	if preemptive {
		return ScheduleShortestRemainingTimeFirst(processes)
	}
	log.Println("running sjf algorithm ...")

	jobs := core.CopyProcesses(processes)
	sortShortestJob(jobs)
	return runToCompletion(AlgorithmSJF, processes, jobs), nil
}

func sortShortestJob(processes []core.Process) {
	sort.SliceStable(processes, func(i, j int) bool {
		if processes[i].BurstTime != processes[j].BurstTime {
			return processes[i].BurstTime < processes[j].BurstTime
		}
		return processes[i].ArrivalTime < processes[j].ArrivalTime
	})
}
