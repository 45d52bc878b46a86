package provider

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/dtdang/polygonzkevm/types"
)

var _ Connection = (*RPCConnection)(nil)

// RPCConnection is a Connection backed by a zkEVM JSON-RPC endpoint.
type RPCConnection struct {
	rpcURL  string
	network types.Network
	config  types.NetworkConfig
	client  *ethclient.Client
}

// Dial connects to the given RPC endpoint and binds it to a network
// name and its configuration section.
func Dial(rpcURL string, network types.Network, config types.NetworkConfig) (*RPCConnection, error) {
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to zkEVM RPC: %w", err)
	}

	return &RPCConnection{
		rpcURL:  rpcURL,
		network: network,
		config:  config,
		client:  client,
	}, nil
}

// NetworkName implements Connection.
func (c *RPCConnection) NetworkName() types.Network {
	return c.network
}

// RequiredConfirmations implements Connection.
func (c *RPCConnection) RequiredConfirmations() uint64 {
	return c.config.RequiredConfirmations
}

// ChainID fetches the chain id reported by the endpoint. Callers can
// compare it against the registry entry for the configured network.
func (c *RPCConnection) ChainID(ctx context.Context) (*big.Int, error) {
	return c.client.ChainID(ctx)
}

func (c *RPCConnection) Close() {
	c.client.Close()
}
