package disk

// CLook sweeps in one direction only. After the last request ahead of it the
// head jumps to the far end of the remaining requests and sweeps the same way
// again.
type CLook struct{}

func (CLook) Algorithm() Algorithm { return AlgorithmCLook }

func (CLook) Order(requests []int, head int, direction Direction) []int {
	lower, upper := partition(requests, head)

	sequence := make([]int, 0, len(requests))
	if direction == Left {
		sequence = append(sequence, reversed(lower)...)
		return append(sequence, reversed(upper)...)
	}
	sequence = append(sequence, upper...)
	return append(sequence, lower...)
}
