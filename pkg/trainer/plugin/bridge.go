package plugin

import (
	"context"
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"
	"github.com/splitmask/splitmask/pkg/trainer"
)

// TrainerPlugin implements go-plugin's plugin.Plugin for the net/rpc
// transport: Server wraps a trainer.Trainer for serving RPCs, Client
// returns an RPC stub satisfying trainer.Trainer on the host side.
// Grounded on pkg/plugin/loader.go's use of plugin.Client /
// rpcClient.Dispense, minus the gRPC broker plumbing.
type TrainerPlugin struct {
	Impl trainer.Trainer
}

func (p *TrainerPlugin) Server(*goplugin.MuxBroker) (interface{}, error) {
	return &rpcServer{impl: p.Impl}, nil
}

func (p *TrainerPlugin) Client(b *goplugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &rpcClient{client: c}, nil
}

// rpcServer runs inside the plugin process and adapts net/rpc calls to
// the real trainer.Trainer implementation.
type rpcServer struct {
	impl trainer.Trainer
}

func (s *rpcServer) Train(req TrainRequest, resp *TrainResponse) error {
	vocab, err := s.impl.Train(context.Background(), req.Corpora, trainer.Options{
		MaxVocab: req.MaxVocab,
		MinFreq:  req.MinFreq,
	})
	if err != nil {
		return err
	}
	resp.Tokens = make([]string, len(vocab))
	resp.Freqs = make([]int, len(vocab))
	for i, e := range vocab {
		resp.Tokens[i] = e.Token
		resp.Freqs[i] = e.Freq
	}
	return nil
}

// rpcClient runs in the host process and implements trainer.Trainer by
// forwarding to the plugin subprocess.
type rpcClient struct {
	client *rpc.Client
}

func (c *rpcClient) Train(ctx context.Context, corpora []string, opts trainer.Options) (trainer.Vocabulary, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	req := TrainRequest{Corpora: corpora, MaxVocab: opts.MaxVocab, MinFreq: opts.MinFreq}
	resp := &TrainResponse{}

	done := make(chan error, 1)
	call := c.client.Go("Plugin.Train", req, resp, nil)
	go func() {
		<-call.Done
		done <- call.Error
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			return nil, err
		}
	}

	vocab := make(trainer.Vocabulary, len(resp.Tokens))
	for i, tok := range resp.Tokens {
		vocab[i] = trainer.VocabEntry{Token: tok, Freq: resp.Freqs[i]}
	}
	return vocab, nil
}

var _ trainer.Trainer = (*rpcClient)(nil)
