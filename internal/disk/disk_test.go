package disk

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"os-scheduler/internal/core"
)

var textbookRequests = []int{98, 183, 37, 122, 14, 124, 65, 67}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name         string
		algorithm    Algorithm
		direction    Direction
		wantSequence []int
		wantMovement int
	}{
		{
			name:         "look right",
			algorithm:    AlgorithmLook,
			direction:    Right,
			wantSequence: []int{65, 67, 98, 122, 124, 183, 37, 14},
			wantMovement: 299,
		},
		{
			name:         "look left",
			algorithm:    AlgorithmLook,
			direction:    Left,
			wantSequence: []int{37, 14, 65, 67, 98, 122, 124, 183},
			wantMovement: 16 + 23 + 169,
		},
		{
			name:         "c-look right",
			algorithm:    AlgorithmCLook,
			direction:    Right,
			wantSequence: []int{65, 67, 98, 122, 124, 183, 14, 37},
			wantMovement: 322,
		},
		{
			name:         "c-look left",
			algorithm:    AlgorithmCLook,
			direction:    Left,
			wantSequence: []int{37, 14, 183, 124, 122, 98, 67, 65},
			wantMovement: 16 + 23 + 169 + 118,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response, err := Schedule(tt.algorithm, textbookRequests, 53, tt.direction)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.wantSequence, response.Sequence); diff != "" {
				t.Errorf("sequence mismatch (-want +got):\n%s", diff)
			}
			if response.TotalMovement != tt.wantMovement {
				t.Errorf("total movement = %d, want %d", response.TotalMovement, tt.wantMovement)
			}
			if response.Direction != string(tt.direction) || response.Head != 53 || response.Algorithm != tt.algorithm.String() {
				t.Errorf("response metadata = %+v", response)
			}
		})
	}
}

func TestScheduleIsPermutation(t *testing.T) {
	requests := []int{10, 40, 40, 3, 99, 50, 0, 50}
	for _, algorithm := range []Algorithm{AlgorithmLook, AlgorithmCLook} {
		for _, direction := range []Direction{Right, Left} {
			response, err := Schedule(algorithm, requests, 40, direction)
			if err != nil {
				t.Fatal(err)
			}
			got := append([]int(nil), response.Sequence...)
			want := append([]int(nil), requests...)
			sort.Ints(got)
			sort.Ints(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s %s: sequence is not a permutation (-want +got):\n%s", algorithm, direction, diff)
			}
		}
	}
	if diff := cmp.Diff([]int{10, 40, 40, 3, 99, 50, 0, 50}, requests); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestScheduleReflectionSymmetry(t *testing.T) {
	head := 53
	reflected := make([]int, len(textbookRequests))
	for i, track := range textbookRequests {
		reflected[i] = 2*head - track
	}

	for _, algorithm := range []Algorithm{AlgorithmLook, AlgorithmCLook} {
		right, err := Schedule(algorithm, textbookRequests, head, Right)
		if err != nil {
			t.Fatal(err)
		}
		left, err := Schedule(algorithm, reflected, head, Left)
		if err != nil {
			t.Fatal(err)
		}
		if right.TotalMovement != left.TotalMovement {
			t.Errorf("%s: movement %d to the right, %d reflected to the left", algorithm, right.TotalMovement, left.TotalMovement)
		}
	}
}

func TestScheduleRequestAtHead(t *testing.T) {
	response, err := Schedule(AlgorithmLook, []int{53, 20, 60}, 53, Left)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{20, 53, 60}, response.Sequence); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if response.TotalMovement != 33+33+7 {
		t.Errorf("total movement = %d, want %d", response.TotalMovement, 33+33+7)
	}
}

func TestScheduleErrors(t *testing.T) {
	_, err := Schedule(AlgorithmLook, nil, 53, Right)
	if !errors.Is(err, core.ErrInvalidInput) || !errors.Is(err, core.ErrEmptyWorkload) {
		t.Errorf("empty requests err = %v, want ErrInvalidInput and ErrEmptyWorkload", err)
	}
	if _, err := Schedule(AlgorithmCLook, textbookRequests, 53, "up"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("bad direction err = %v, want ErrInvalidInput", err)
	}
	if _, err := Schedule(Algorithm(7), textbookRequests, 53, Right); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("unknown algorithm err = %v, want ErrInvalidParameter", err)
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]Algorithm{"look": AlgorithmLook, "LOOK": AlgorithmLook, "c-look": AlgorithmCLook, "CLOOK": AlgorithmCLook} {
		got, err := ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseAlgorithm("sstf"); !errors.Is(err, core.ErrInvalidParameter) {
		t.Errorf("ParseAlgorithm(sstf) err = %v", err)
	}
	if d, err := ParseDirection(" Left "); err != nil || d != Left {
		t.Errorf("ParseDirection(Left) = %v, %v", d, err)
	}
}
