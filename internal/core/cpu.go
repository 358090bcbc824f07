package core

// Process is the private working copy of a workload entry. RemainingTime is
// only touched by the preemptive policies.
type Process struct {
	ProcessId     int `json:"process_id"`
	ArrivalTime   int `json:"arrival_time"`
	BurstTime     int `json:"burst_time"`
	Priority      int `json:"priority"`
	RemainingTime int `json:"-"`
}

// CopyProcesses returns fresh copies with RemainingTime reset to BurstTime,
// so a run never mutates the caller's workload.
func CopyProcesses(processes []Process) []Process {
	copies := make([]Process, len(processes))
	copy(copies, processes)
	for i := range copies {
		copies[i].RemainingTime = copies[i].BurstTime
	}
	return copies
}

type ExecutionInterval struct {
	ProcessId int `json:"process_id"`
	StartTime int `json:"start_time"`
	EndTime   int `json:"end_time"`
}

type Schedule []ExecutionInterval

// Merge joins consecutive intervals of the same process whose boundaries touch.
func (s Schedule) Merge() Schedule {
	merged := make(Schedule, 0, len(s))
	for _, interval := range s {
		last := len(merged) - 1
		if last >= 0 && merged[last].ProcessId == interval.ProcessId && merged[last].EndTime == interval.StartTime {
			merged[last].EndTime = interval.EndTime
			continue
		}
		merged = append(merged, interval)
	}
	return merged
}

// ForProcess returns the intervals that belong to pid, in schedule order.
func (s Schedule) ForProcess(pid int) Schedule {
	var intervals Schedule
	for _, interval := range s {
		if interval.ProcessId == pid {
			intervals = append(intervals, interval)
		}
	}
	return intervals
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core. It owns the clock and the schedule being
// built, and accounts busy and idle time as the clock moves.
type Cpu struct {
	Clock    int
	Schedule Schedule
	Metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{Schedule: make(Schedule, 0)}
}

// WaitUntil moves the clock forward to t if the core would otherwise sit idle.
// No interval is emitted for the gap.
func (c *Cpu) WaitUntil(t int) {
	if t <= c.Clock {
		return
	}
	c.Metric.IdleTime += t - c.Clock
	c.Clock = t
	c.Metric.TotalTime = c.Clock
}

// Run executes process to completion without preemption. The process record
// is left untouched.
func (c *Cpu) Run(process Process) ExecutionInterval {
	c.WaitUntil(process.ArrivalTime)
	return c.occupy(process.ProcessId, process.BurstTime)
}

// Execute runs process for at most units of time starting at the current
// clock, charges the time against its RemainingTime and returns the interval
// it occupied.
func (c *Cpu) Execute(process *Process, units int) ExecutionInterval {
	if units > process.RemainingTime {
		units = process.RemainingTime
	}
	process.RemainingTime -= units
	return c.occupy(process.ProcessId, units)
}

func (c *Cpu) occupy(pid, units int) ExecutionInterval {
	interval := ExecutionInterval{
		ProcessId: pid,
		StartTime: c.Clock,
		EndTime:   c.Clock + units,
	}
	c.Schedule = append(c.Schedule, interval)

	c.Clock = interval.EndTime
	c.Metric.UtilizationTime += units
	c.Metric.TotalTime = c.Clock
	return interval
}
