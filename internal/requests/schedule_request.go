package requests

import (
	"fmt"

	"github.com/markphelps/optional"

	"os-scheduler/internal/core"
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job         `json:"jobs"`
	TimeQuantum optional.Int  `json:"time_quantum"`
	Preemptive  optional.Bool `json:"preemptive"`
}

// Validate rejects malformed jobs before any scheduling is attempted.
func (r *ScheduleRequests) Validate() error {
	seen := make(map[int]bool, len(r.Jobs))
	for i, job := range r.Jobs {
		if seen[job.ProcessId] {
			return fmt.Errorf("%w: job %d: duplicate process_id %d", core.ErrInvalidInput, i, job.ProcessId)
		}
		seen[job.ProcessId] = true
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: job %d: arrival_time must be >= 0, got %d", core.ErrInvalidInput, i, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: job %d: burst_time must be > 0, got %d", core.ErrInvalidInput, i, job.BurstTime)
		}
	}
	if q, err := r.TimeQuantum.Get(); err == nil && q <= 0 {
		return fmt.Errorf("%w: time_quantum must be > 0, got %d", core.ErrInvalidParameter, q)
	}
	return nil
}

// Processes converts the jobs into engine input, preserving order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process{
			ProcessId:   job.ProcessId,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return processes
}
