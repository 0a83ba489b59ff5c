package main

import (
	"flag"
	"os"

	"github.com/lbp0200/permgen/internal/app"
	"github.com/lbp0200/permgen/internal/config"
	"github.com/lbp0200/permgen/internal/logger"
)

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.N, "n", cfg.N, "generate a permutation of 1..n-1")
	flag.StringVar(&cfg.Output, "o", cfg.Output, "output JSON file")
	seed := flag.Int64("seed", 0, "fixed seed for a reproducible permutation (default: system entropy)")
	verify := flag.String("verify", "", "check that an existing file holds a permutation of 1..n-1 instead of generating")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "log level: DEBUG, INFO, WARNING, ERROR (default: WARNING, or from PERMGEN_LOG_LEVEL env)")
	flag.Parse()

	if cfg.LogLevel != "" {
		logger.SetLevelFromString(cfg.LogLevel)
	}
	// 只有显式传入 -seed 才使用固定种子
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg = cfg.WithSeed(*seed)
		}
	})

	if *verify != "" {
		if err := app.Check(*verify, cfg.N, os.Stdout); err != nil {
			logger.Logger.Fatal().Err(err).Str("file", *verify).Msg("Verification failed")
		}
		return
	}
	if err := app.Run(cfg, os.Stdout); err != nil {
		logger.Logger.Fatal().Err(err).Str("output", cfg.Output).Msg("Failed to generate permutation")
	}
}
