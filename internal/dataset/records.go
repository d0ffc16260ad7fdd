package dataset

import "sort"

// TokenRecord is one (review, token) observation in long format.
// It replaces the loosely typed frame the original analysis used
// for token frequency plots.
type TokenRecord struct {
	Sample int
	Token  int
}

// Flatten expands sequences into long-format records, sample ids
// following input order.
func Flatten(seqs [][]int) []TokenRecord {
	var records []TokenRecord
	for sample, seq := range seqs {
		for _, token := range seq {
			records = append(records, TokenRecord{Sample: sample, Token: token})
		}
	}

	return records
}

// CountTokens aggregates records into per-token occurrence counts.
func CountTokens(records []TokenRecord) map[int]int {
	counts := make(map[int]int)
	for _, rec := range records {
		counts[rec.Token]++
	}

	return counts
}

type TokenCount struct {
	Token int
	Count int
}

// TopTokens returns the n most frequent tokens, ties broken by
// token id for deterministic output.
func TopTokens(counts map[int]int, n int) []TokenCount {
	all := make([]TokenCount, 0, len(counts))
	for token, count := range counts {
		all = append(all, TokenCount{Token: token, Count: count})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Token < all[j].Token
	})

	if n > len(all) {
		n = len(all)
	}

	return all[:n]
}
