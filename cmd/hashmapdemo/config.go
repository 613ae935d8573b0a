package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gostonefire/primehashmap/crt"
	"github.com/gostonefire/primehashmap/hashfunc"
	"github.com/gostonefire/primehashmap/internal/logutil"
)

// Config - Settings of the demo, read from a toml file
type Config struct {
	Table TableConfig       `toml:"table"`
	Mode  ModeConfig        `toml:"mode"`
	Log   logutil.LogConfig `toml:"log"`
}

// TableConfig - Settings for the hash map the demo runs against
//   - Technique is either quadratic or chaining
//   - Capacity is the initial capacity request
//   - HashFunction is one of the names accepted by hashfunc.ByName
type TableConfig struct {
	Technique    string `toml:"technique"`
	Capacity     int64  `toml:"capacity"`
	HashFunction string `toml:"hash-function"`
}

// ModeConfig - Values handed to the mode finder
type ModeConfig struct {
	Values []string `toml:"values"`
}

func parseConfigFromFile(file string) (*Config, error) {
	cfg := &Config{}
	if file != "" {
		if _, err := toml.DecodeFile(file, cfg); err != nil {
			return nil, err
		}
	}
	cfg.setDefaults()

	return cfg, cfg.validate()
}

func (c *Config) setDefaults() {
	if c.Table.Technique == "" {
		c.Table.Technique = "quadratic"
	}
	if c.Table.Capacity == 0 {
		c.Table.Capacity = 53
	}
	if c.Table.HashFunction == "" {
		c.Table.HashFunction = "sum"
	}
	if len(c.Mode.Values) == 0 {
		c.Mode.Values = []string{"Arch", "Manjaro", "Manjaro", "Mint", "Mint", "Mint", "Ubuntu", "Ubuntu", "Ubuntu"}
	}
	c.Log.SetDefaults()
}

func (c *Config) validate() error {
	if _, err := c.crtType(); err != nil {
		return err
	}
	if _, ok := hashfunc.ByName(c.Table.HashFunction); !ok {
		return fmt.Errorf("unknown hash function %q", c.Table.HashFunction)
	}
	if c.Table.Capacity < 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Table.Capacity)
	}

	return nil
}

func (c *Config) crtType() (int, error) {
	switch strings.ToLower(c.Table.Technique) {
	case "quadratic":
		return crt.QuadraticProbing, nil
	case "chaining":
		return crt.SeparateChaining, nil
	default:
		return 0, fmt.Errorf("unknown collision resolution technique %q", c.Table.Technique)
	}
}

func (c *Config) hashFunc() hashfunc.HashFunc {
	hashFunc, _ := hashfunc.ByName(c.Table.HashFunction)
	return hashFunc
}
