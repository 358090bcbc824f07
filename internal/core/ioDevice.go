package core

import "golang.org/x/exp/constraints"

// DiskHead is the read/write head of a one-dimensional disk. It records every
// track it seeks to and the distance travelled to get there.
type DiskHead struct {
	Start    int
	Position int
	Movement int
	Visited  []int
}

func NewDiskHead(position int) *DiskHead {
	return &DiskHead{Start: position, Position: position, Visited: make([]int, 0)}
}

// Seek moves the head to track and returns the distance covered.
func (h *DiskHead) Seek(track int) int {
	distance := abs(track - h.Position)
	h.Movement += distance
	h.Position = track
	h.Visited = append(h.Visited, track)
	return distance
}

// SeekAll services tracks in the given order.
func (h *DiskHead) SeekAll(tracks []int) {
	for _, track := range tracks {
		h.Seek(track)
	}
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
