package trainer

import (
	"context"
	"regexp"

	"golang.org/x/sync/errgroup"
)

// BuildOptions configures a smartlist build: which algorithms to run
// and the filters applied to their merged vocabulary, grounded on
// create_smartlist.rs's SmartlistBuilder fields.
type BuildOptions struct {
	Algorithms    []Algorithm
	Corpora       []string
	Options       Options
	MinWordLen    int // remove_shorter_than_len
	NumbersMaxLen int // remove_long_numbers; 0 disables the filter
}

// Build trains every requested algorithm concurrently and returns the
// union of their vocabularies, deduplicated preserving first-seen
// order (algorithms run in the order given, a word already emitted by
// an earlier algorithm is not repeated), then filtered by minimum
// token length and maximum length for all-digit tokens. Grounded on
// create_smartlist.rs's SmartlistBuilder::build: train each tokenizer,
// vocab.extend + .unique(), then remove_shorter_than_len and
// remove_long_numbers.
func Build(ctx context.Context, reg *Registry, opts BuildOptions) ([]string, error) {
	perAlgorithm := make([]Vocabulary, len(opts.Algorithms))

	g, gctx := errgroup.WithContext(ctx)
	for i, alg := range opts.Algorithms {
		i, alg := i, alg
		g.Go(func() error {
			tr, err := reg.Get(alg)
			if err != nil {
				return err
			}
			vocab, err := tr.Train(gctx, opts.Corpora, opts.Options)
			if err != nil {
				return err
			}
			perAlgorithm[i] = vocab
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var union []string
	for _, vocab := range perAlgorithm {
		for _, e := range vocab {
			if _, ok := seen[e.Token]; ok {
				continue
			}
			seen[e.Token] = struct{}{}
			union = append(union, e.Token)
		}
	}

	if opts.MinWordLen > 0 {
		union = removeShorterThan(union, opts.MinWordLen)
	}
	if opts.NumbersMaxLen > 0 {
		union = removeLongNumbers(union, opts.NumbersMaxLen)
	}
	return union, nil
}

func removeShorterThan(words []string, minLen int) []string {
	out := words[:0:0]
	for _, w := range words {
		if len(w) >= minLen {
			out = append(out, w)
		}
	}
	return out
}

var allDigits = regexp.MustCompile(`^[0-9]+$`)

// removeLongNumbers drops all-digit tokens longer than maxLen, mirroring
// create_smartlist.rs's remove_long_numbers (digit-only runs past a
// length are assumed to be noise, e.g. phone numbers, not passwords).
func removeLongNumbers(words []string, maxLen int) []string {
	out := words[:0:0]
	for _, w := range words {
		if len(w) > maxLen && allDigits.MatchString(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
