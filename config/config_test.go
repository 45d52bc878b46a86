package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtdang/polygonzkevm/types"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tmp := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(cwd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPluginConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polygonzkevm.yaml")
	contents := `
mainnet:
  required_confirmations: 12
  block_time: 3
local:
  default_provider: anvil
default_network: mainnet
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(12), cfg.Mainnet.RequiredConfirmations)
	assert.Equal(t, uint64(3), cfg.Mainnet.BlockTime)
	assert.Equal(t, "anvil", cfg.Local.DefaultProvider)
	assert.Equal(t, types.NetworkMainnet, cfg.DefaultNetwork)

	// Sections absent from the file keep their defaults.
	assert.Equal(t, types.DefaultNetworkConfig(), cfg.Goerli)
	assert.Equal(t, types.LocalNetworkConfig(""), cfg.GoerliFork)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "polygonzkevm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::not yaml"), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	var ecoErr *types.EcosystemError
	require.ErrorAs(t, err, &ecoErr)
	assert.Equal(t, types.ErrConfigError, ecoErr.Code)
}
