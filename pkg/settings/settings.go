package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "RM"
	// ConfigEnv names an explicit config file. When it is unset the user config
	// directory is searched and a missing file is not an error.
	ConfigEnv = "RM_CONFIG"
)

// Settings holds the ambient runtime options. None of them change how a path
// is removed.
type Settings struct {
	Verbose       bool `mapstructure:"verbose"`
	LogTimestamps bool `mapstructure:"log_timestamps"`
}

func Load() (*Settings, error) {
	v := viper.New()
	v.SetDefault("verbose", false)
	v.SetDefault("log_timestamps", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return &s, nil
}

func readConfig(v *viper.Viper) error {
	if path := os.Getenv(ConfigEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(filepath.Join(dir, "rm"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}
