package types

// Network is the name of a Polygon zkEVM network understood by the plugin.
type Network string

const (
	NetworkMainnet     Network = "mainnet"
	NetworkMainnetFork Network = "mainnet-fork"
	NetworkGoerli      Network = "goerli"
	NetworkGoerliFork  Network = "goerli-fork"
	NetworkLocal       Network = "local"
)

// NetworkDescriptor pairs a network name with its chain identifiers.
// ChainID and NetworkID coincide on Polygon zkEVM but are kept as
// separate fields because they are conceptually independent.
type NetworkDescriptor struct {
	Name      Network `json:"name"`
	ChainID   uint64  `json:"chainId"`
	NetworkID uint64  `json:"networkId"`
}

// Networks maps the live network names to their chain identifiers. Fork
// networks reuse the identifiers of the network they shadow and the
// local network takes its chain id from the development provider, so
// neither appears here.
var Networks = map[Network]NetworkDescriptor{
	NetworkMainnet: {Name: NetworkMainnet, ChainID: 1101, NetworkID: 1101},
	NetworkGoerli:  {Name: NetworkGoerli, ChainID: 1442, NetworkID: 1442},
}

func (n Network) String() string {
	return string(n)
}

// IsFork reports whether the network is a locally simulated copy of a
// live network.
func (n Network) IsFork() bool {
	return n == NetworkMainnetFork || n == NetworkGoerliFork
}

func (n Network) IsLocal() bool {
	return n == NetworkLocal
}
