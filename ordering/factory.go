package ordering

import (
	"time"

	"github.com/pkg/errors"

	"github.com/ledgernet/ordering/pkg/logger"
	"github.com/ledgernet/ordering/pkg/worker"
)

// FactoryConfig carries the shared collaborators every created client binds.
type FactoryConfig struct {
	ProposalFactory        ProposalFactory
	TimeProvider           TimeProvider
	ProposalRequestTimeout time.Duration
	Logger                 logger.Logger
	Connections            ConnectionFactory
	Callback               func(ProposalEvent)
	Keeper                 *ExecutorKeeper
	Pool                   *worker.Pool
	Retry                  RetryPolicy
}

// Factory builds one Client per remote ordering peer.
type Factory struct {
	cfg FactoryConfig
}

func NewFactory(cfg FactoryConfig) *Factory {
	if cfg.Keeper == nil || cfg.Pool == nil {
		cfg.Logger.Panic("ordering factory needs an executor keeper and a worker pool")
	}
	return &Factory{cfg: cfg}
}

// Create resolves a connection for peer and returns a Client bound to it.
func (f *Factory) Create(peer Peer) (*Client, error) {
	stub, err := f.cfg.Connections.CreateClient(peer)
	if err != nil {
		return nil, errors.Wrapf(err, "creating ordering client for peer %s", peer.PubKey)
	}
	return NewClient(ClientConfig{
		Stub:                   stub,
		ProposalFactory:        f.cfg.ProposalFactory,
		TimeProvider:           f.cfg.TimeProvider,
		ProposalRequestTimeout: f.cfg.ProposalRequestTimeout,
		Logger:                 f.cfg.Logger,
		Callback:               f.cfg.Callback,
		Keeper:                 f.cfg.Keeper,
		Pool:                   f.cfg.Pool,
		PeerKey:                peer.PubKey,
		Retry:                  f.cfg.Retry,
	}), nil
}
