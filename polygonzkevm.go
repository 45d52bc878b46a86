// Package polygonzkevm adapts an Ethereum-compatible client stack to
// the Polygon zkEVM networks: chain identifiers, per-network defaults,
// and the transaction-construction override the zkEVM sequencer
// requires.
package polygonzkevm

import (
	"time"

	"github.com/dtdang/polygonzkevm/logger"
	"github.com/dtdang/polygonzkevm/metrics"
	"github.com/dtdang/polygonzkevm/provider"
	"github.com/dtdang/polygonzkevm/types"
	"github.com/dtdang/polygonzkevm/utils"
)

// Ecosystem is the Polygon zkEVM adapter. It owns the plugin
// configuration and the transaction-construction pipeline; connection
// lifecycle stays with the host framework behind the provider.Registry
// capability.
type Ecosystem struct {
	config    *types.PluginConfig
	providers provider.Registry
	logger    logger.Logger
	metrics   metrics.Recorder
}

// New creates an ecosystem from the given configuration. A nil config
// uses the built-in defaults.
func New(config *types.PluginConfig, opts ...Option) *Ecosystem {
	if config == nil {
		config = types.DefaultPluginConfig()
	}

	eco := &Ecosystem{
		config:  config,
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(eco)
	}
	return eco
}

// NewWithDefaults creates an ecosystem with the built-in configuration.
func NewWithDefaults(opts ...Option) *Ecosystem {
	return New(types.DefaultPluginConfig(), opts...)
}

// Config returns the active plugin configuration.
func (e *Ecosystem) Config() *types.PluginConfig {
	return e.config
}

// SupportedNetworks lists every network name the plugin registers,
// including fork and local variants.
func (e *Ecosystem) SupportedNetworks() []types.Network {
	return []types.Network{
		types.NetworkMainnet,
		types.NetworkMainnetFork,
		types.NetworkGoerli,
		types.NetworkGoerliFork,
		types.NetworkLocal,
	}
}

// CreateTransaction builds a concrete transaction value from loose
// construction parameters. It resolves the envelope tag, selects the
// construction class, normalizes chain id, payload alias, confirmation
// default, and signature parts, then constructs the value. The zkEVM
// sequencer only accepts static-fee transactions, so anything but the
// legacy envelope is rejected.
func (e *Ecosystem) CreateTransaction(params *types.TxParams) (types.Transaction, error) {
	start := time.Now()
	if params == nil {
		params = &types.TxParams{}
	}

	tag := types.ResolveTransactionType(params.Type)
	build, err := types.TransactionClassFor(tag)
	if err != nil {
		e.logger.Warn("rejected transaction type", map[string]any{
			"type": string(tag),
		})
		e.metrics.IncCounter("transactions_rejected", e.metricLabels())
		return nil, err
	}
	params.Type = tag.Int()

	if params.RequiredConfirmations == nil {
		confirmations := uint64(0)
		if conn := e.activeConnection(); conn != nil {
			confirmations = conn.RequiredConfirmations()
		}
		params.RequiredConfirmations = &confirmations
	}

	if raw, ok := params.ChainID.(string); ok {
		id, err := utils.ParseChainID(raw)
		if err != nil {
			return nil, err
		}
		params.ChainID = id
	}

	if len(params.Hash) > 0 {
		params.Data = params.Hash
		params.Hash = nil
	}

	if params.V != nil && params.R != nil && params.S != nil {
		params.Signature = &types.Signature{
			V: *params.V,
			R: append([]byte(nil), params.R...),
			S: append([]byte(nil), params.S...),
		}
	}

	tx, err := build(params)
	if err != nil {
		e.metrics.IncCounter("transactions_rejected", e.metricLabels())
		return nil, err
	}

	e.logger.Debug("created transaction", map[string]any{
		"type":                  string(tag),
		"requiredConfirmations": *params.RequiredConfirmations,
	})
	e.metrics.IncCounter("transactions_created", e.metricLabels())
	e.metrics.ObserveLatency("create_transaction", time.Since(start), e.metricLabels())

	return tx, nil
}

func (e *Ecosystem) activeConnection() provider.Connection {
	if e.providers == nil {
		return nil
	}
	return e.providers.ActiveConnection()
}

func (e *Ecosystem) metricLabels() map[string]string {
	network := e.config.DefaultNetwork
	if conn := e.activeConnection(); conn != nil {
		network = conn.NetworkName()
	}
	return map[string]string{"network": network.String()}
}

// Version information
const (
	Version = "0.1.0"
)
