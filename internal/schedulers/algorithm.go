package schedulers

import (
	"fmt"
	"log"
	"strings"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type Algorithm int

const (
	AlgorithmFCFS Algorithm = iota
	AlgorithmRoundRobin
	AlgorithmSJF
	AlgorithmPriority
	AlgorithmSRTF
)

// DefaultTimeQuantum is the Round Robin quantum used when none is configured.
const DefaultTimeQuantum = 2

func (a Algorithm) String() string {
	switch a {
	case AlgorithmFCFS:
		return "FCFS"
	case AlgorithmRoundRobin:
		return "Round Robin"
	case AlgorithmSJF:
		return "SJF"
	case AlgorithmPriority:
		return "Priority"
	case AlgorithmSRTF:
		return "SRTF"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every CPU policy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmRoundRobin, AlgorithmSJF, AlgorithmPriority, AlgorithmSRTF}
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve":
		return AlgorithmFCFS, nil
	case "rr", "round robin", "round-robin", "roundrobin":
		return AlgorithmRoundRobin, nil
	case "sjf", "shortest-job-first":
		return AlgorithmSJF, nil
	case "priority":
		return AlgorithmPriority, nil
	case "srtf", "shortest-remaining-time-first":
		return AlgorithmSRTF, nil
	}
	return 0, fmt.Errorf("%w: unknown cpu algorithm %q", core.ErrInvalidParameter, name)
}

// Scheduler turns a workload into an execution schedule with metrics.
// Implementations never modify the slice they are given.
type Scheduler interface {
	Algorithm() Algorithm
	Schedule(processes []core.Process) (responses.ScheduleResponse, error)
}

type Options struct {
	TimeQuantum int
	Preemptive  bool
}

func New(algorithm Algorithm, options Options) (Scheduler, error) {
	switch algorithm {
	case AlgorithmFCFS:
		return FirstComeFirstServe{}, nil
	case AlgorithmRoundRobin:
		return RoundRobin{TimeQuantum: options.TimeQuantum}, nil
	case AlgorithmSJF:
		return ShortestJobFirst{Preemptive: options.Preemptive}, nil
	case AlgorithmPriority:
		return PriorityScheduling{}, nil
	case AlgorithmSRTF:
		return ShortestRemainingTimeFirst{}, nil
	}
	return nil, fmt.Errorf("%w: unknown cpu algorithm %v", core.ErrInvalidParameter, algorithm)
}

// Run schedules processes with a single policy.
func Run(algorithm Algorithm, processes []core.Process, options Options) (responses.ScheduleResponse, error) {
	scheduler, err := New(algorithm, options)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return scheduler.Schedule(processes)
}

// RunAll schedules the same workload with every policy, keyed by algorithm name.
func RunAll(processes []core.Process, timeQuantum int) (map[string]responses.ScheduleResponse, error) {
	log.Println("running all algorithms on", len(processes), "processes")
	results := make(map[string]responses.ScheduleResponse, len(Algorithms()))
	for _, algorithm := range Algorithms() {
		response, err := Run(algorithm, processes, Options{TimeQuantum: timeQuantum})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		results[algorithm.String()] = response
	}
	return results, nil
}
