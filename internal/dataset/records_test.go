package dataset

import "testing"

func TestFlatten(t *testing.T) {
	records := Flatten([][]int{{2, 3}, {3}})

	want := []TokenRecord{
		{Sample: 0, Token: 2},
		{Sample: 0, Token: 3},
		{Sample: 1, Token: 3},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d is %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestCountTokens(t *testing.T) {
	counts := CountTokens(Flatten([][]int{{2, 3, 3}, {3, 4}}))

	if counts[2] != 1 || counts[3] != 3 || counts[4] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestTopTokens(t *testing.T) {
	counts := map[int]int{2: 5, 3: 7, 4: 5, 5: 1}

	t.Run("OrderedByCount", func(t *testing.T) {
		top := TopTokens(counts, 3)

		// count ties break on the smaller token id
		want := []TokenCount{{3, 7}, {2, 5}, {4, 5}}
		for i := range want {
			if top[i] != want[i] {
				t.Fatalf("entry %d is %+v, want %+v", i, top[i], want[i])
			}
		}
	})

	t.Run("NLargerThanDistinct", func(t *testing.T) {
		top := TopTokens(counts, 100)

		if len(top) != 4 {
			t.Fatalf("got %d entries, want 4", len(top))
		}
	})
}
