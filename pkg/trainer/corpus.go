package trainer

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
)

// wordFrequencies reads every corpus file line by line (grounded on
// pkg/wordlist.Load's bufio.Scanner pattern) and counts whitespace-
// delimited tokens. The trainers differ only in how they turn these
// raw frequencies into a ranked vocabulary — the actual BPE merge
// search, unigram EM, and WordPiece likelihood maximization are out of
// scope per spec.md §4.6 ("the core consumes a capability... the only
// behaviors the core depends on" are train/union/filter); these are
// minimal, deterministic stand-ins that satisfy the same contract.
func wordFrequencies(ctx context.Context, corpora []string) (map[string]int, error) {
	freq := make(map[string]int)
	for _, path := range corpora {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			for _, tok := range strings.Fields(scanner.Text()) {
				freq[tok]++
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return freq, nil
}

// rankByFrequency turns a frequency map into a Vocabulary sorted by
// descending frequency (ties broken lexicographically for determinism),
// dropping entries below minFreq and truncating to maxVocab.
func rankByFrequency(freq map[string]int, opts Options) Vocabulary {
	vocab := make(Vocabulary, 0, len(freq))
	for tok, n := range freq {
		if n < opts.MinFreq {
			continue
		}
		vocab = append(vocab, VocabEntry{Token: tok, Freq: n})
	}
	sort.Slice(vocab, func(i, j int) bool {
		if vocab[i].Freq != vocab[j].Freq {
			return vocab[i].Freq > vocab[j].Freq
		}
		return vocab[i].Token < vocab[j].Token
	})
	if opts.MaxVocab > 0 && len(vocab) > opts.MaxVocab {
		vocab = vocab[:opts.MaxVocab]
	}
	return vocab
}
