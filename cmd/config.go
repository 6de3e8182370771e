package main

import "github.com/kelseyhightower/envconfig"

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`
	// COLOURS highlights validation warnings on the terminal
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
