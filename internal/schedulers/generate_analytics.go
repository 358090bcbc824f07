package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// WaitingTimes sums, per process, every gap between its arrival (or the end of
// its previous interval) and the start of its next interval. Processes that
// were never scheduled are left out.
func WaitingTimes(processes []core.Process, schedule core.Schedule) map[int]int {
	waitingTimes := make(map[int]int, len(processes))
	for _, process := range processes {
		executions := schedule.ForProcess(process.ProcessId)
		if len(executions) == 0 {
			continue
		}
		sort.SliceStable(executions, func(i, j int) bool {
			return executions[i].StartTime < executions[j].StartTime
		})

		waitingTime := 0
		lastTime := process.ArrivalTime
		for _, execution := range executions {
			if execution.StartTime > lastTime {
				waitingTime += execution.StartTime - lastTime
			}
			if execution.EndTime > lastTime {
				lastTime = execution.EndTime
			}
		}
		waitingTimes[process.ProcessId] = waitingTime
	}
	return waitingTimes
}

// TurnaroundTimes is the latest end of a process's intervals minus its arrival.
// Processes that were never scheduled are left out.
func TurnaroundTimes(processes []core.Process, schedule core.Schedule) map[int]int {
	turnaroundTimes := make(map[int]int, len(processes))
	for _, process := range processes {
		executions := schedule.ForProcess(process.ProcessId)
		if len(executions) == 0 {
			continue
		}
		lastEnd := executions[0].EndTime
		for _, execution := range executions[1:] {
			if execution.EndTime > lastEnd {
				lastEnd = execution.EndTime
			}
		}
		turnaroundTimes[process.ProcessId] = lastEnd - process.ArrivalTime
	}
	return turnaroundTimes
}

func generateResponse(algorithm Algorithm, processes []core.Process, cpu *core.Cpu) responses.ScheduleResponse {
	waitingTimes := WaitingTimes(processes, cpu.Schedule)
	turnaroundTimes := TurnaroundTimes(processes, cpu.Schedule)
	proccessDetails := generateProcessDetails(processes, cpu.Schedule, waitingTimes, turnaroundTimes)
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	var utilization, throughput float64
	if cpu.Metric.TotalTime > 0 {
		utilization = float64(cpu.Metric.UtilizationTime) / float64(cpu.Metric.TotalTime)
		throughput = float64(len(proccessDetails)) / float64(cpu.Metric.TotalTime)
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm.String(),
		Schedule:              cpu.Schedule,
		WaitingTimes:          waitingTimes,
		TurnaroundTimes:       turnaroundTimes,
		Complexity:            ComplexityOf(algorithm),
		TotalTime:             cpu.Metric.TotalTime,
		IdleTime:              cpu.Metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
	}
}

// generateProcessDetails reports scheduled processes in workload order.
func generateProcessDetails(processes []core.Process, schedule core.Schedule, waitingTimes, turnaroundTimes map[int]int) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		turnAroundTime, ok := turnaroundTimes[process.ProcessId]
		if !ok {
			continue
		}
		firstStart := -1
		for _, execution := range schedule.ForProcess(process.ProcessId) {
			if firstStart < 0 || execution.StartTime < firstStart {
				firstStart = execution.StartTime
			}
		}
		details = append(details, responses.ProcessResponse{
			ProcessId:      process.ProcessId,
			ResponseTime:   firstStart - process.ArrivalTime,
			TurnAroundTime: turnAroundTime,
			WaitingTime:    waitingTimes[process.ProcessId],
		})
	}
	return details
}
