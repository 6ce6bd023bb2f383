// Package plugin lets a Trainer implementation run out-of-process, for
// algorithms too heavy or too license-encumbered to link directly into
// the core binary. Grounded on pkg/plugin's use of hashicorp/go-plugin,
// adapted from gRPC transport to net/rpc: the teacher's plugin system
// dispenses its Plugin interface through a proprietary gRPC-generated
// SDK (github.com/getcreddy/creddy-plugin-sdk) that exists outside this
// module's dependency closure, so this package defines its own
// request/response types and wires them over go-plugin's net/rpc
// transport instead, which needs no code generation step.
package plugin

import (
	"time"

	"github.com/hashicorp/go-plugin"
)

// Handshake is shared between host and plugin process so both agree
// they're speaking the same protocol, grounded on pkg/plugin/loader.go's
// use of sdk.HandshakeConfig.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "SPLITMASK_TRAINER_PLUGIN",
	MagicCookieValue: "smartlist-trainer",
}

// TrainRequest crosses the RPC boundary; net/rpc requires every
// parameter set be a single concrete type.
type TrainRequest struct {
	Corpora   []string
	MaxVocab  int
	MinFreq   int
	Algorithm string
}

// TrainResponse is the vocabulary an out-of-process trainer produced.
type TrainResponse struct {
	Tokens []string
	Freqs  []int
}

// PluginMap names the single dispensed plugin kind, grounded on
// pkg/plugin/loader.go's sdk.PluginMap.
var PluginMap = map[string]plugin.Plugin{
	"trainer": &TrainerPlugin{},
}

// defaultTimeout bounds a single Train RPC call, since a misbehaving
// plugin process must not hang the core indefinitely.
const defaultTimeout = 10 * time.Minute
