package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/gophforum/internal/flagx"
)

func parseFlags(cfg *Config) error {
	return parseArgs(cfg, os.Args[1:])
}

func parseArgs(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "backend address, empty for local mode")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	return fs.Parse(args)
}
