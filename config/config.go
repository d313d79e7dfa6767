package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the table settings the server starts with. Values come from
// the environment (optionally a .env file); command-line flags may override
// them.
type Config struct {
	Addr         string
	StartingBank int
	BetOptions   []int
	Debug        bool
}

// Load reads the configuration from the environment, falling back to the
// table defaults. A missing .env file is not an error.
func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Addr:         "0.0.0.0:7777",
		StartingBank: 1000,
		BetOptions:   []int{10, 100, 1000},
	}

	if addr := os.Getenv("BLACKJACK_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if bank := os.Getenv("BLACKJACK_STARTING_BANK"); bank != "" {
		if n, err := strconv.Atoi(bank); err == nil && n > 0 {
			cfg.StartingBank = n
		}
	}

	if options := os.Getenv("BLACKJACK_BET_OPTIONS"); options != "" {
		if parsed := parseBetOptions(options); len(parsed) > 0 {
			cfg.BetOptions = parsed
		}
	}

	if debug := os.Getenv("BLACKJACK_DEBUG"); debug != "" {
		cfg.Debug, _ = strconv.ParseBool(debug)
	}

	return cfg
}

func parseBetOptions(raw string) []int {
	var options []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil
		}
		options = append(options, n)
	}
	return options
}
