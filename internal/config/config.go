package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StylePretty = "pretty"
	StylePlain  = "plain"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Board    Board   `yaml:"board"`
	Console  Console `yaml:"console"`
}

type Board struct {
	Pits  int `yaml:"pits" env:"MANCALA_PITS" env-default:"6"`
	Seeds int `yaml:"seeds" env:"MANCALA_SEEDS" env-default:"4"`
}

type Console struct {
	Style     string `yaml:"style" env:"MANCALA_STYLE" env-default:"pretty"`
	HideTitle bool   `yaml:"hide-title" env:"MANCALA_HIDE_TITLE"`
}

// MustLoad - reads the yml file at path, falling back to the environment when there is none.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Console) IsPlain() bool {
	return that.Style == StylePlain
}
