package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Algorithm() Algorithm { return AlgorithmFCFS }

func (FirstComeFirstServe) Schedule(processes []core.Process) (responses.ScheduleResponse, error) {
	return ScheduleFirstComeFirstServe(processes)
}

func ScheduleFirstComeFirstServe(processes []core.Process) (responses.ScheduleResponse, error) {
	// sort jobs by arrival time
	jobs := core.CopyProcesses(processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	return runToCompletion(AlgorithmFCFS, processes, jobs), nil
}

// runToCompletion dispatches ordered back to back, each process running its
// whole burst once it has arrived.
func runToCompletion(algorithm Algorithm, processes, ordered []core.Process) responses.ScheduleResponse {
	cpu := core.NewCpu()
	for _, process := range ordered {
		cpu.Run(process)
	}
	return generateResponse(algorithm, processes, cpu)
}
