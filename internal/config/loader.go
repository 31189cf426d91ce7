package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	configFile string
	searchDirs []string
}

// NewLoader creates a configuration loader. When configFile is non-empty it
// is used verbatim; otherwise docsv.yaml is searched for in searchDirs and
// the working directory.
func NewLoader(configFile string, searchDirs ...string) Loader {
	return &loader{
		configFile: configFile,
		searchDirs: searchDirs,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (DOCSV_*)
// 2. Config file (docsv.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("docsv")
		v.SetConfigType("yaml")
		for _, dir := range l.searchDirs {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DOCSV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.BindEnv("server.addr")
	v.BindEnv("server.max_upload_mb")

	defaults := Default()
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("server.max_upload_mb", defaults.Server.MaxUploadMB)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// No config file found - defaults and environment apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Operators) == 0 {
		cfg.Operators = defaults.Operators
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
