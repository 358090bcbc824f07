package disk

// Look sweeps toward the farthest request in the current direction, then
// reverses and sweeps back.
type Look struct{}

func (Look) Algorithm() Algorithm { return AlgorithmLook }

func (Look) Order(requests []int, head int, direction Direction) []int {
	lower, upper := partition(requests, head)
	lower = reversed(lower)

	sequence := make([]int, 0, len(requests))
	if direction == Left {
		sequence = append(sequence, lower...)
		return append(sequence, upper...)
	}
	sequence = append(sequence, upper...)
	return append(sequence, lower...)
}
