// Package config is used to load the configuration file
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type daemon struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Socket string `json:"socket"`
	Debug  bool   `json:"debug"`
}

type assets struct {
	Root string `json:"root"`
}

// Config is the configuration struct
type Config struct {
	Daemon daemon `json:"daemon"`
	Assets assets `json:"assets"`
}

func (c *Config) verify() error {
	if c.Daemon.Host == "" && c.Daemon.Port == 0 && c.Daemon.Socket == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("config: failed to get user home directory: %v", err)
		}
		c.Daemon.Socket = filepath.Join(home, ".config", "activationd", "activationd.sock")
	} else if c.Daemon.Host != "" && c.Daemon.Socket != "" {
		return fmt.Errorf("config: host and socket cannot be set at the same time")
	} else if c.Daemon.Host != "" && c.Daemon.Port == 0 {
		return fmt.Errorf("config: port must be set if host is set")
	} else if c.Daemon.Host == "" && c.Daemon.Port != 0 {
		c.Daemon.Host = "localhost"
	}

	if c.Assets.Root == "" {
		c.Assets.Root = "plists"
	}
	// a bad asset root is a deployment error, not a per-request one
	fi, err := os.Stat(c.Assets.Root)
	if err != nil {
		return fmt.Errorf("config: asset root %s is not readable: %v", c.Assets.Root, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("config: asset root %s is not a directory", c.Assets.Root)
	}

	return nil
}

// LoadConfig loads the configuration file
func LoadConfig() (*Config, error) {
	var c *Config

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %v", err)
	}

	if err := c.verify(); err != nil {
		return nil, fmt.Errorf("config: failed to verify: %v", err)
	}

	return c, nil
}
