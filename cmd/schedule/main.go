package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/disk"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

var ErrInvalidArgs = errors.New("invalid args")

const usage = `usage:
  schedule cpu  [--algo=fcfs|rr|sjf|priority|srtf|all] [--quantum=N] [--preemptive] <input-file>
  schedule disk [--algo=look|clook] --head=N [--direction=right|left] [--requests=a,b,c | <input-file>]
`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, ErrInvalidArgs) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrInvalidArgs)
	}
	cfg, err := config.Load("./")
	if err != nil {
		return err
	}

	switch args[0] {
	case "cpu":
		return runCpu(args[1:], w, cfg)
	case "disk":
		return runDisk(args[1:], w, cfg)
	}
	return fmt.Errorf("%w: unknown command %q", ErrInvalidArgs, args[0])
}

func runCpu(args []string, w io.Writer, cfg *config.SchedulerConfig) error {
	flags := pflag.NewFlagSet("cpu", pflag.ContinueOnError)
	algo := flags.String("algo", "fcfs", "scheduling algorithm: fcfs, rr, sjf, priority, srtf or all")
	quantum := flags.Int("quantum", cfg.RoundRobinTimeQuantum, "round robin time quantum")
	preemptive := flags.Bool("preemptive", false, "schedule sjf preemptively (srtf)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	processes, err := loadProcessesFile(flags.Arg(0))
	if err != nil {
		return err
	}

	if *algo == "all" {
		for _, algorithm := range schedulers.Algorithms() {
			response, err := schedulers.Run(algorithm, processes, schedulers.Options{TimeQuantum: *quantum})
			if err != nil {
				return err
			}
			report.CPU(w, processes, response)
			_, _ = fmt.Fprintln(w)
		}
		return nil
	}

	algorithm, err := schedulers.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}
	response, err := schedulers.Run(algorithm, processes, schedulers.Options{TimeQuantum: *quantum, Preemptive: *preemptive})
	if err != nil {
		return err
	}
	report.CPU(w, processes, response)
	return nil
}

func runDisk(args []string, w io.Writer, cfg *config.SchedulerConfig) error {
	flags := pflag.NewFlagSet("disk", pflag.ContinueOnError)
	algo := flags.String("algo", "look", "disk algorithm: look or clook")
	head := flags.Int("head", 0, "initial head position")
	direction := flags.String("direction", cfg.DiskDirection, "initial sweep direction: right or left")
	inline := flags.String("requests", "", "comma separated track requests")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	var tracks []int
	var err error
	switch {
	case *inline != "" && flags.NArg() == 0:
		tracks, err = workload.ParseTracks(*inline)
	case *inline == "" && flags.NArg() == 1:
		tracks, err = loadTracksFile(flags.Arg(0))
	default:
		return fmt.Errorf("%w: give either --requests or one input file", ErrInvalidArgs)
	}
	if err != nil {
		return err
	}

	request := requests.DiskScheduleRequest{Requests: tracks, Head: *head}
	if err := request.Validate(); err != nil {
		return err
	}
	algorithm, err := disk.ParseAlgorithm(*algo)
	if err != nil {
		return err
	}
	response, err := disk.Schedule(algorithm, request.Requests, request.Head, disk.Direction(*direction))
	if err != nil {
		return err
	}
	report.Disk(w, response)
	return nil
}

func loadProcessesFile(path string) ([]core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer f.Close()
	return workload.LoadProcesses(f)
}

func loadTracksFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v: error opening request file", err)
	}
	defer f.Close()
	return workload.LoadTracks(f)
}
