package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// reviewRecord is one JSONL line of the corpus file.
type reviewRecord struct {
	Split  string `json:"split"`
	Label  int    `json:"label"`
	Tokens []int  `json:"tokens"`
}

type Split struct {
	Sequences [][]int
	Labels    []float64
}

func (s *Split) Len() int {
	return len(s.Sequences)
}

type Corpus struct {
	Train Split
	Test  Split
}

type LoadOptions struct {
	// VocabSize caps token ranks; 0 keeps the full vocabulary.
	VocabSize int
	// MaxLen truncates longer reviews on load; 0 keeps full length.
	MaxLen int
}

// Load reads a review corpus from a JSONL file, one record per
// line with a split tag, a binary label and the token rank list.
func Load(path string, opts LoadOptions) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus: %w", err)
	}
	defer file.Close()

	corpus := &Corpus{}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec reviewRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("bad record on line %d: %w", lineNo, err)
		}

		if rec.Label != 0 && rec.Label != 1 {
			return nil, fmt.Errorf("label on line %d is %d, want 0 or 1", lineNo, rec.Label)
		}
		for _, token := range rec.Tokens {
			if token < 2 {
				return nil, fmt.Errorf("token %d on line %d collides with a reserved id", token, lineNo)
			}
		}

		tokens := rec.Tokens
		if opts.VocabSize > 0 {
			tokens = CapVocabulary(tokens, opts.VocabSize)
		}
		if opts.MaxLen > 0 && len(tokens) > opts.MaxLen {
			tokens = tokens[len(tokens)-opts.MaxLen:]
		}

		var split *Split
		switch rec.Split {
		case "train":
			split = &corpus.Train
		case "test":
			split = &corpus.Test
		default:
			return nil, fmt.Errorf("unknown split %q on line %d", rec.Split, lineNo)
		}

		split.Sequences = append(split.Sequences, tokens)
		split.Labels = append(split.Labels, float64(rec.Label))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read corpus: %w", err)
	}

	log.Info().Msgf("loaded corpus: %d train, %d test reviews", corpus.Train.Len(), corpus.Test.Len())

	return corpus, nil
}
