// Package config resolves the agenda's settings from a YAML file, with
// environment variables taking precedence over file values.
package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	StorageFileKey  = "storage.file"
	SeparatorKey    = "storage.separator"
	ConfirmTokenKey = "settings.confirm-token"
)

// Defaults applied when a key is absent from the config file.
const (
	DefaultStorageFile  = "data/agend.csv"
	DefaultSeparator    = ";"
	DefaultConfirmToken = "y"
)

// New reads in the config file and ENV variables if set, and returns a
// single '*viper.Viper' config object. When no config file exists one is
// created with the default content.
func New(cfgFile string, devMode bool) (*viper.Viper, error) {
	config := viper.New()

	config.SetDefault(StorageFileKey, DefaultStorageFile)
	config.SetDefault(SeparatorKey, DefaultSeparator)
	config.SetDefault(ConfirmTokenKey, DefaultConfirmToken)

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir(devMode)
		if err != nil {
			return nil, err
		}

		// If config file is not found, create one using defaultConfigValue
		configFilePath := filepath.Join(configDir, configName)
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			err = ioutil.WriteFile(configFilePath, []byte(defaultConfigValue()), 0600)
			if err != nil {
				return nil, err
			}
		}

		// Search config in home directory with name ".agenda" (without extension).
		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", config.ConfigFileUsed())
	}

	return config, nil
}

func defaultCfgNameAndDir(devMode bool) (configName string, configDir string, err error) {
	configName = ".agenda.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if devMode {
		configName = ".agenda.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
	}

	return configName, configDir, err
}

// defaultConfigValue returns the default content for .agenda.yaml
func defaultConfigValue() string {
	return `# Where the agenda stores its contacts, and which character
# separates the fields on each line.
storage:
  file: "data/agend.csv"
  separator: ";"

settings:
  # Token the user has to type to confirm destructive actions.
  confirm-token: "y"
`
}
