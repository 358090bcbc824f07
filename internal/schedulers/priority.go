package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type PriorityScheduling struct{}

func (PriorityScheduling) Algorithm() Algorithm { return AlgorithmPriority }

func (PriorityScheduling) Schedule(processes []core.Process) (responses.ScheduleResponse, error) {
	return SchedulePriority(processes)
}

// SchedulePriority runs processes without preemption, lowest priority value
// first. Arrival time breaks ties.
func SchedulePriority(processes []core.Process) (responses.ScheduleResponse, error) {
	jobs := core.CopyProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		if jobs[i].Priority != jobs[j].Priority {
			return jobs[i].Priority < jobs[j].Priority
		}
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
	return runToCompletion(AlgorithmPriority, processes, jobs), nil
}
