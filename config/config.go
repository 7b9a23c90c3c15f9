package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"quickcap/pkg/terrors"
	"quickcap/pkg/utils"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "QUICKCAP"
	EnvCFG    = "QUICKCAP_CONFIG"
)

var DefaultPath = "~/.quickcap"

var configPath string

func ConfigPath() string {
	return configPath
}

func setConfigPath(path string) error {
	path, err := utils.NormalizePath(path)
	if err != nil {
		return err
	}
	configPath = path
	return nil
}

func SelectConfigFile(arg string) error {
	var path string
	env := os.Getenv(EnvCFG)
	if arg != "" {
		path = arg
	} else if env != "" {
		path = env
	} else {
		path = DefaultPath
	}
	return setConfigPath(path)
}

func InitViper(arg string) error {
	err := SelectConfigFile(arg)
	if err != nil {
		return err
	}
	path := ConfigPath()
	viper.SetConfigType("yaml")
	viper.SetConfigName("quickcap")
	viper.AddConfigPath(path)
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	err = viper.ReadConfig(bytes.NewReader([]byte(DefaultConfig)))
	if err != nil {
		return fmt.Errorf("%w: failed parsing default configurations: %w", terrors.ErrParse, err)
	}
	err = viper.MergeInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	if errs := validateConfig(); len(errs) > 0 {
		return fmt.Errorf("%w: %v", terrors.ErrConf, errs)
	}
	err = os.MkdirAll(path, 0755)
	if err != nil {
		return err
	}
	cfgFile := filepath.Join(path, "quickcap.yaml")
	if utils.FileExists(cfgFile) {
		return nil
	}
	err = viper.SafeWriteConfigAs(cfgFile)
	if _, ok := err.(viper.ConfigFileAlreadyExistsError); ok {
		return nil
	}
	return err
}
