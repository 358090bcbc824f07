// Package disk orders track requests for a single disk head and reports the
// total distance the head travels.
package disk

import (
	"fmt"
	"sort"
	"strings"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type Direction string

const (
	Right Direction = "right"
	Left  Direction = "left"
)

func ParseDirection(name string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(name))) {
	case Right:
		return Right, nil
	case Left:
		return Left, nil
	}
	return "", fmt.Errorf("%w: direction must be %q or %q, got %q", core.ErrInvalidInput, Right, Left, name)
}

type Algorithm int

const (
	AlgorithmLook Algorithm = iota
	AlgorithmCLook
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmLook:
		return "LOOK"
	case AlgorithmCLook:
		return "C-LOOK"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "look":
		return AlgorithmLook, nil
	case "c-look", "clook", "c_look":
		return AlgorithmCLook, nil
	}
	return 0, fmt.Errorf("%w: unknown disk algorithm %q", core.ErrInvalidParameter, name)
}

// Scheduler decides the order in which the head services requests.
type Scheduler interface {
	Algorithm() Algorithm
	Order(requests []int, head int, direction Direction) []int
}

func New(algorithm Algorithm) (Scheduler, error) {
	switch algorithm {
	case AlgorithmLook:
		return Look{}, nil
	case AlgorithmCLook:
		return CLook{}, nil
	}
	return nil, fmt.Errorf("%w: unknown disk algorithm %v", core.ErrInvalidParameter, algorithm)
}

// Schedule runs algorithm over requests starting at head. At least one
// request is required.
func Schedule(algorithm Algorithm, requests []int, head int, direction Direction) (responses.DiskScheduleResponse, error) {
	if len(requests) == 0 {
		return responses.DiskScheduleResponse{}, fmt.Errorf("%w: %w: at least one track request is required", core.ErrInvalidInput, core.ErrEmptyWorkload)
	}
	direction, err := ParseDirection(string(direction))
	if err != nil {
		return responses.DiskScheduleResponse{}, err
	}
	scheduler, err := New(algorithm)
	if err != nil {
		return responses.DiskScheduleResponse{}, err
	}

	diskHead := core.NewDiskHead(head)
	diskHead.SeekAll(scheduler.Order(requests, head, direction))

	return responses.DiskScheduleResponse{
		Algorithm:     algorithm.String(),
		Head:          head,
		Sequence:      diskHead.Visited,
		TotalMovement: diskHead.Movement,
		Direction:     string(direction),
	}, nil
}

// partition splits requests around head into ascending copies. Requests equal
// to head belong to the upper half.
func partition(requests []int, head int) (lower, upper []int) {
	lower = make([]int, 0, len(requests))
	upper = make([]int, 0, len(requests))
	for _, track := range requests {
		if track < head {
			lower = append(lower, track)
		} else {
			upper = append(upper, track)
		}
	}
	sort.Ints(lower)
	sort.Ints(upper)
	return lower, upper
}

func reversed(tracks []int) []int {
	out := make([]int, len(tracks))
	for i, track := range tracks {
		out[len(tracks)-1-i] = track
	}
	return out
}
