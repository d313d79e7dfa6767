package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"blackjack/config"
	"blackjack/server"
)

// CLI flags override the environment configuration.
type CLI struct {
	Addr  string `help:"Listen address." placeholder:"HOST:PORT"`
	Bank  int    `help:"Starting bank for each session."`
	Debug bool   `help:"Enable debug logging."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-table blackjack game server"),
		kong.UsageOnError(),
	)

	cfg := config.Load()
	if cli.Addr != "" {
		cfg.Addr = cli.Addr
	}
	if cli.Bank > 0 {
		cfg.StartingBank = cli.Bank
	}
	if cli.Debug {
		cfg.Debug = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	srv := server.NewServer(cfg, logger)
	ctx.FatalIfErrorf(srv.Start())
}
