package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize   int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	HistoryFile string `yaml:"history-file" env:"HISTORY_FILE" env-default:"tic_tac_toe_history.txt"`
	Colors      bool   `yaml:"colors" env:"COLORS" env-default:"true"`
}

// MustLoad - load all configurations from the config.yml file. A missing
// file is fine: the game runs on env variables and defaults alone.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}
		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
