package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type TimeComplexity struct {
	Best    string `json:"best"`
	Average string `json:"average"`
	Worst   string `json:"worst"`
}

// Complexity is descriptive metadata attached to every CPU result.
type Complexity struct {
	Time        TimeComplexity `json:"time"`
	Space       string         `json:"space"`
	Description string         `json:"description"`
}

type ScheduleResponse struct {
	Algorithm       string        `json:"algorithm"`
	Schedule        core.Schedule `json:"schedule"`
	WaitingTimes    map[int]int   `json:"waiting_times"`
	TurnaroundTimes map[int]int   `json:"turnaround_times"`
	Complexity      Complexity    `json:"complexity"`

	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}

type DiskScheduleResponse struct {
	Algorithm     string `json:"algorithm"`
	Head          int    `json:"head"`
	Sequence      []int  `json:"sequence"`
	TotalMovement int    `json:"total_movement"`
	Direction     string `json:"direction"`
}
