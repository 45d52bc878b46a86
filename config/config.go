// Package config loads the plugin configuration, merging a user file
// over the built-in network defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/dtdang/polygonzkevm/types"
)

const (
	configName = "polygonzkevm"
	configType = "yaml"
)

// Load reads the plugin configuration from the given file path. An
// empty path searches the working directory for polygonzkevm.yaml. A
// missing file is not an error; the defaults apply unchanged. Sections
// absent from the file keep their default values.
func Load(path string) (*types.PluginConfig, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	cfg := types.DefaultPluginConfig()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return nil, &types.EcosystemError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to read plugin config: %v", err),
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, &types.EcosystemError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to decode plugin config: %v", err),
		}
	}

	return cfg, nil
}
