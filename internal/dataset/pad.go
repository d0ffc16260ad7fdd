package dataset

// PadSequence maps a sequence to exactly maxLen tokens. Short
// sequences keep their original order and are padded on the right
// with PadToken; long sequences are truncated from the front so
// the tail survives. Which side to pad or cut is a convention the
// upstream benchmark loader never fixed, so it is fixed here.
func PadSequence(seq []int, maxLen int) []int {
	padded := make([]int, maxLen)

	if len(seq) >= maxLen {
		copy(padded, seq[len(seq)-maxLen:])
		return padded
	}

	copy(padded, seq)
	// the remaining maxLen-len(seq) entries stay PadToken
	return padded
}

func PadAll(seqs [][]int, maxLen int) [][]int {
	padded := make([][]int, len(seqs))
	for i, seq := range seqs {
		padded[i] = PadSequence(seq, maxLen)
	}

	return padded
}
