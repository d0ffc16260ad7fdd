package dataset

import (
	"testing"
)

func TestPadSequence(t *testing.T) {
	t.Run("ShortSequence", func(t *testing.T) {
		got := PadSequence([]int{5, 9, 3}, 500)

		if len(got) != 500 {
			t.Fatalf("padded length is %d, want 500", len(got))
		}
		for i, want := range []int{5, 9, 3} {
			if got[i] != want {
				t.Fatalf("token %d is %d, want %d", i, got[i], want)
			}
		}

		pads := 0
		for _, token := range got[3:] {
			if token != PadToken {
				t.Fatalf("found non-pad token %d after the sequence", token)
			}
			pads++
		}
		if pads != 497 {
			t.Fatalf("got %d pad tokens, want 497", pads)
		}
	})

	t.Run("ExactLength", func(t *testing.T) {
		seq := []int{2, 3, 4}
		got := PadSequence(seq, 3)

		for i := range seq {
			if got[i] != seq[i] {
				t.Fatalf("token %d changed from %d to %d", i, seq[i], got[i])
			}
		}
	})

	t.Run("LongSequenceKeepsTail", func(t *testing.T) {
		got := PadSequence([]int{10, 11, 12, 13, 14}, 3)

		for i, want := range []int{12, 13, 14} {
			if got[i] != want {
				t.Fatalf("token %d is %d, want %d", i, got[i], want)
			}
		}
	})

	t.Run("InputNotModified", func(t *testing.T) {
		seq := []int{7, 8}
		_ = PadSequence(seq, 4)

		if seq[0] != 7 || seq[1] != 8 {
			t.Fatalf("input sequence was modified: %v", seq)
		}
	})
}

func TestPadAll(t *testing.T) {
	got := PadAll([][]int{{2}, {3, 4}, {}}, 4)

	if len(got) != 3 {
		t.Fatalf("got %d sequences, want 3", len(got))
	}
	for i, seq := range got {
		if len(seq) != 4 {
			t.Fatalf("sequence %d has length %d, want 4", i, len(seq))
		}
	}
	if got[2][0] != PadToken {
		t.Fatalf("empty sequence should pad to all PadToken, got %v", got[2])
	}
}
