// Package types holds the network registry, configuration records, and
// transaction values shared across the Polygon zkEVM plugin.
package types

// NetworkConfig holds per-network settlement parameters. It is built
// once at configuration-load time and never mutated afterwards.
type NetworkConfig struct {
	// RequiredConfirmations is the number of blocks that must be mined
	// atop a transaction's block before the caller treats it as final.
	RequiredConfirmations uint64 `json:"requiredConfirmations" mapstructure:"required_confirmations"`

	// BlockTime is the expected block interval in seconds.
	BlockTime uint64 `json:"blockTime" mapstructure:"block_time"`

	// DefaultProvider names the execution provider to use when none is
	// selected explicitly. Only the local network sets this.
	DefaultProvider string `json:"defaultProvider,omitempty" mapstructure:"default_provider"`
}

// PluginConfig is the full plugin configuration: one section per
// supported network plus the default network choice.
type PluginConfig struct {
	Mainnet     NetworkConfig `json:"mainnet" mapstructure:"mainnet"`
	MainnetFork NetworkConfig `json:"mainnetFork" mapstructure:"mainnet_fork"`
	Goerli      NetworkConfig `json:"goerli" mapstructure:"goerli"`
	GoerliFork  NetworkConfig `json:"goerliFork" mapstructure:"goerli_fork"`
	Local       NetworkConfig `json:"local" mapstructure:"local"`

	DefaultNetwork Network `json:"defaultNetwork" mapstructure:"default_network"`
}

// DefaultNetworkConfig returns the settings applied to live networks.
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		RequiredConfirmations: 1,
		BlockTime:             2,
	}
}

// LocalNetworkConfig returns the settings applied to fork and local
// networks: zero confirmations and zero block time, since blocks are
// mined on demand.
func LocalNetworkConfig(defaultProvider string) NetworkConfig {
	return NetworkConfig{DefaultProvider: defaultProvider}
}

// DefaultPluginConfig returns the built-in configuration the host merges
// user settings over.
func DefaultPluginConfig() *PluginConfig {
	return &PluginConfig{
		Mainnet:        DefaultNetworkConfig(),
		MainnetFork:    LocalNetworkConfig(""),
		Goerli:         DefaultNetworkConfig(),
		GoerliFork:     LocalNetworkConfig(""),
		Local:          LocalNetworkConfig("test"),
		DefaultNetwork: NetworkLocal,
	}
}

// NetworkConfigFor returns the section for the named network. Unknown
// names fall back to the live-network defaults; validating names is the
// host framework's concern, not ours.
func (c *PluginConfig) NetworkConfigFor(name Network) NetworkConfig {
	switch name {
	case NetworkMainnet:
		return c.Mainnet
	case NetworkMainnetFork:
		return c.MainnetFork
	case NetworkGoerli:
		return c.Goerli
	case NetworkGoerliFork:
		return c.GoerliFork
	case NetworkLocal:
		return c.Local
	default:
		return DefaultNetworkConfig()
	}
}

// EcosystemError is the domain error raised by the plugin.
type EcosystemError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e EcosystemError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrUnsupportedTxType = "unsupported_transaction_type"
	ErrInvalidChainID    = "invalid_chain_id"
	ErrInvalidSchema     = "invalid_schema"
	ErrConfigError       = "config_error"
)
