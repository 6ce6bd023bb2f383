package plugin

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"
	"github.com/splitmask/splitmask/pkg/trainer"
)

// Loader launches and tracks external trainer plugin processes,
// grounded on pkg/plugin/loader.go's Loader (pluginDir scan, map of
// loaded plugins, hclog.NewNullLogger default).
type Loader struct {
	mu      sync.Mutex
	clients map[string]*goplugin.Client
	logger  hclog.Logger
}

func NewLoader() *Loader {
	return &Loader{
		clients: make(map[string]*goplugin.Client),
		logger:  hclog.NewNullLogger(),
	}
}

func (l *Loader) SetLogger(logger hclog.Logger) {
	l.logger = logger
}

// Load starts binaryPath as a trainer plugin subprocess and returns a
// trainer.Trainer that forwards Train calls to it over net/rpc.
func (l *Loader) Load(name, binaryPath string) (trainer.Trainer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.clients[name]; ok {
		return nil, fmt.Errorf("trainer plugin already loaded: %s", name)
	}

	client := goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap,
		Cmd:             exec.Command(binaryPath),
		Logger:          l.logger,
		AllowedProtocols: []goplugin.Protocol{
			goplugin.ProtocolNetRPC,
		},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("connect to trainer plugin %s: %w", name, err)
	}

	raw, err := rpcClient.Dispense("trainer")
	if err != nil {
		client.Kill()
		return nil, fmt.Errorf("dispense trainer plugin %s: %w", name, err)
	}

	tr, ok := raw.(trainer.Trainer)
	if !ok {
		client.Kill()
		return nil, fmt.Errorf("trainer plugin %s does not implement trainer.Trainer", name)
	}

	l.clients[name] = client
	return tr, nil
}

// Unload stops a loaded plugin's subprocess.
func (l *Loader) Unload(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if c, ok := l.clients[name]; ok {
		c.Kill()
		delete(l.clients, name)
	}
}

// UnloadAll stops every loaded plugin subprocess.
func (l *Loader) UnloadAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for name, c := range l.clients {
		c.Kill()
		delete(l.clients, name)
	}
}

// Serve runs the plugin side of the protocol: call this from a trainer
// plugin binary's main() with the Trainer implementation it provides.
func Serve(impl trainer.Trainer) {
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			"trainer": &TrainerPlugin{Impl: impl},
		},
	})
}
