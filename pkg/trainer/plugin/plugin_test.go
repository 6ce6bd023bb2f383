package plugin

import (
	"context"
	"testing"

	"github.com/splitmask/splitmask/pkg/trainer"
)

// stubTrainer lets the RPC server/client pair be exercised without a
// real subprocess: net/rpc can dial any connected pipe, but the
// TrainerPlugin.Server/Client methods themselves are pure adapters
// that are worth testing directly.
type stubTrainer struct {
	vocab trainer.Vocabulary
}

func (s *stubTrainer) Train(ctx context.Context, corpora []string, opts trainer.Options) (trainer.Vocabulary, error) {
	return s.vocab, nil
}

func TestRPCServer_Train(t *testing.T) {
	srv := &rpcServer{impl: &stubTrainer{vocab: trainer.Vocabulary{
		{Token: "alice", Freq: 4},
		{Token: "bob", Freq: 2},
	}}}

	var resp TrainResponse
	if err := srv.Train(TrainRequest{Corpora: []string{"x.txt"}, MaxVocab: 10}, &resp); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(resp.Tokens) != 2 || resp.Tokens[0] != "alice" || resp.Freqs[0] != 4 {
		t.Errorf("resp = %+v, want alice/4, bob/2", resp)
	}
}

func TestHandshake_StableMagicCookie(t *testing.T) {
	if Handshake.MagicCookieKey == "" || Handshake.MagicCookieValue == "" {
		t.Error("Handshake must set both MagicCookieKey and MagicCookieValue")
	}
}
