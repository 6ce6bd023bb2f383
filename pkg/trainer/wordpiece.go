package trainer

import (
	"context"
	"strings"
)

// WordPieceTrainer runs the same merge search as BPETrainer, then
// strips any WordPiece-style "##" continuation prefix from the
// resulting tokens, matching create_smartlist.rs's train_wordpiece
// post-processing step (".strip_prefix(\"##\")") so a real WordPiece
// backend's "##"-marked subwords come out the same shape as every
// other trainer's.
type WordPieceTrainer struct {
	bpe *BPETrainer
}

func NewWordPieceTrainer() *WordPieceTrainer { return &WordPieceTrainer{bpe: NewBPETrainer()} }

func (t *WordPieceTrainer) Train(ctx context.Context, corpora []string, opts Options) (Vocabulary, error) {
	vocab, err := t.bpe.Train(ctx, corpora, opts)
	if err != nil {
		return nil, err
	}
	for i, e := range vocab {
		vocab[i].Token = strings.TrimPrefix(e.Token, "##")
	}
	return vocab, nil
}
