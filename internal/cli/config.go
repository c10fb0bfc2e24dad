package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Environment variables CMYK_OUTPUT and CMYK_VERBOSE override the file.
	envPrefix = "CMYK"

	cfgKeyOutput  = "output"
	cfgKeyVerbose = "verbose"

	defaultOutput = outputText
)

// configFile is the structure written to config.yaml by init.
type configFile struct {
	Output  string `yaml:"output"`
	Verbose bool   `yaml:"verbose"`
}

// loadConfig reads config.yaml from configDir using Viper. Values resolve
// flag > environment > config file > default. A missing config.yaml is not
// an error.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyVerbose, false)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyOutput, cfgKeyVerbose} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
