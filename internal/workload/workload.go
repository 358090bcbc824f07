// Package workload reads CPU and disk workloads from text input.
package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
)

// LoadProcesses reads CSV rows of id,burst,arrival[,priority]. Blank lines
// and lines starting with # are skipped; priority defaults to 0.
func LoadProcesses(r io.Reader) ([]core.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", core.ErrInvalidInput, err)
	}

	request := requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d: want id,burst,arrival[,priority], got %d fields", core.ErrInvalidInput, i+1, len(row))
		}
		fields := make([]int, 4)
		for j, field := range row {
			if j == 3 && strings.TrimSpace(field) == "" {
				continue
			}
			fields[j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", core.ErrInvalidInput, i+1, err)
			}
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   fields[0],
			BurstTime:   fields[1],
			ArrivalTime: fields[2],
			Priority:    fields[3],
		})
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request.Processes(), nil
}

// LoadTracks reads track numbers separated by commas or whitespace.
func LoadTracks(r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseTracks(string(data))
}

func ParseTracks(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	tracks := make([]int, 0, len(fields))
	for _, field := range fields {
		track, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: track %q: %v", core.ErrInvalidInput, field, err)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}
