// Package dataset prepares the sentiment review corpus: tokens are
// frequency ranks, reviews are variable length integer sequences
// with a binary label. Two ids are reserved across the package:
// PadToken fills short sequences, OOVToken replaces every token
// whose rank falls outside the vocabulary cap. Real tokens start
// at 2, so capping never renumbers a kept token.
package dataset

import "github.com/jixinwang95/mban-orientation/logging"

const (
	PadToken = 0
	OOVToken = 1
)

var log = logging.Get()

// CapVocabulary maps every token with rank above vocabSize to
// OOVToken and leaves the rest untouched. The input is not
// modified.
func CapVocabulary(seq []int, vocabSize int) []int {
	capped := make([]int, len(seq))
	for i, token := range seq {
		if token > vocabSize {
			capped[i] = OOVToken
		} else {
			capped[i] = token
		}
	}

	return capped
}

func CapAll(seqs [][]int, vocabSize int) [][]int {
	capped := make([][]int, len(seqs))
	for i, seq := range seqs {
		capped[i] = CapVocabulary(seq, vocabSize)
	}

	return capped
}
