package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScheduleMerge(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		want     Schedule
	}{
		{
			name:     "empty",
			schedule: Schedule{},
			want:     Schedule{},
		},
		{
			name: "abutting same process",
			schedule: Schedule{
				{ProcessId: 1, StartTime: 0, EndTime: 1},
				{ProcessId: 1, StartTime: 1, EndTime: 2},
				{ProcessId: 2, StartTime: 2, EndTime: 3},
				{ProcessId: 2, StartTime: 3, EndTime: 5},
				{ProcessId: 1, StartTime: 5, EndTime: 6},
			},
			want: Schedule{
				{ProcessId: 1, StartTime: 0, EndTime: 2},
				{ProcessId: 2, StartTime: 2, EndTime: 5},
				{ProcessId: 1, StartTime: 5, EndTime: 6},
			},
		},
		{
			name: "gap keeps intervals apart",
			schedule: Schedule{
				{ProcessId: 1, StartTime: 0, EndTime: 1},
				{ProcessId: 1, StartTime: 3, EndTime: 4},
			},
			want: Schedule{
				{ProcessId: 1, StartTime: 0, EndTime: 1},
				{ProcessId: 1, StartTime: 3, EndTime: 4},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.schedule.Merge()); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCpuAccounting(t *testing.T) {
	cpu := NewCpu()
	first := Process{ProcessId: 1, ArrivalTime: 2, BurstTime: 3}
	second := Process{ProcessId: 2, ArrivalTime: 4, BurstTime: 4, RemainingTime: 4}

	cpu.Run(first)
	cpu.WaitUntil(1) // already past, no effect
	cpu.Execute(&second, 3)
	cpu.WaitUntil(10)
	cpu.Execute(&second, 5)

	want := Schedule{
		{ProcessId: 1, StartTime: 2, EndTime: 5},
		{ProcessId: 2, StartTime: 5, EndTime: 8},
		{ProcessId: 2, StartTime: 10, EndTime: 11},
	}
	if diff := cmp.Diff(want, cpu.Schedule); diff != "" {
		t.Errorf("schedule mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(CpuMetric{TotalTime: 11, UtilizationTime: 7, IdleTime: 4}, cpu.Metric); diff != "" {
		t.Errorf("metric mismatch (-want +got):\n%s", diff)
	}
	if second.RemainingTime != 0 {
		t.Errorf("remaining time = %d, want 0", second.RemainingTime)
	}
	if first.RemainingTime != 0 {
		t.Errorf("Run touched remaining time of a non-preemptive process")
	}
}

func TestCopyProcesses(t *testing.T) {
	original := []Process{{ProcessId: 1, BurstTime: 5}, {ProcessId: 2, BurstTime: 3}}
	copies := CopyProcesses(original)
	copies[0].RemainingTime--
	copies[1].BurstTime = 99

	if diff := cmp.Diff([]Process{{ProcessId: 1, BurstTime: 5}, {ProcessId: 2, BurstTime: 3}}, original); diff != "" {
		t.Errorf("original mutated (-want +got):\n%s", diff)
	}
	if copies[0].RemainingTime != 4 {
		t.Errorf("remaining time = %d, want 4", copies[0].RemainingTime)
	}
}
