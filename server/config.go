package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr         string `env:"ROYALSET_ADDR" envDefault:":8080"`
	ClientDir    string `env:"ROYALSET_CLIENT_DIR"`
	Seed         int64  `env:"ROYALSET_SEED"`
	DefaultHoles int    `env:"ROYALSET_DEFAULT_HOLES" envDefault:"9"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Seed == 0 {
		seed, err := newSeed()
		if err != nil {
			return Config{}, err
		}
		cfg.Seed = seed
	}
	return cfg, nil
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
