package trainer

import (
	"context"
	"sort"
	"strings"
)

// BPETrainer runs a minimal byte-pair-encoding merge search: start from
// whole words split into bytes, and repeatedly merge the most frequent
// adjacent symbol pair until MaxVocab distinct symbols have been
// produced or no adjacent pair occurs at least MinFreq times (or at
// all). Grounded on create_smartlist.rs's
// train_bpe, which wraps tokenizers::models::bpe::BPE the same way.
type BPETrainer struct{}

func NewBPETrainer() *BPETrainer { return &BPETrainer{} }

func (t *BPETrainer) Train(ctx context.Context, corpora []string, opts Options) (Vocabulary, error) {
	freq, err := wordFrequencies(ctx, corpora)
	if err != nil {
		return nil, err
	}

	words := make(map[string][]string, len(freq))
	for w := range freq {
		symbols := make([]string, 0, len(w))
		for _, r := range w {
			symbols = append(symbols, string(r))
		}
		words[w] = symbols
	}

	vocabFreq := make(map[string]int)
	addSymbolFreqs := func() {
		for w, symbols := range words {
			n := freq[w]
			for _, s := range symbols {
				vocabFreq[s] += n
			}
		}
	}
	addSymbolFreqs()

	maxMerges := opts.MaxVocab
	if maxMerges <= 0 {
		maxMerges = len(vocabFreq)
	}

	for len(vocabFreq) < maxMerges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pairCounts := make(map[[2]string]int)
		for w, symbols := range words {
			n := freq[w]
			for i := 0; i+1 < len(symbols); i++ {
				pairCounts[[2]string{symbols[i], symbols[i+1]}] += n
			}
		}
		best, bestCount := bestPair(pairCounts)
		if bestCount < opts.MinFreq || bestCount == 0 {
			break
		}

		merged := best[0] + best[1]
		for w, symbols := range words {
			words[w] = mergePair(symbols, best, merged)
		}
		vocabFreq = make(map[string]int)
		addSymbolFreqs()
	}

	return rankByFrequency(vocabFreq, opts), nil
}

func bestPair(counts map[[2]string]int) ([2]string, int) {
	type kv struct {
		pair  [2]string
		count int
	}
	var kvs []kv
	for p, c := range counts {
		kvs = append(kvs, kv{p, c})
	}
	sort.Slice(kvs, func(i, j int) bool {
		if kvs[i].count != kvs[j].count {
			return kvs[i].count > kvs[j].count
		}
		return strings.Join(kvs[i].pair[:], "") < strings.Join(kvs[j].pair[:], "")
	})
	if len(kvs) == 0 {
		return [2]string{}, 0
	}
	return kvs[0].pair, kvs[0].count
}

func mergePair(symbols []string, pair [2]string, merged string) []string {
	out := make([]string, 0, len(symbols))
	for i := 0; i < len(symbols); i++ {
		if i+1 < len(symbols) && symbols[i] == pair[0] && symbols[i+1] == pair[1] {
			out = append(out, merged)
			i++
			continue
		}
		out = append(out, symbols[i])
	}
	return out
}
