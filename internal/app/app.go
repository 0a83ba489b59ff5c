package app

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/lbp0200/permgen/internal/config"
	"github.com/lbp0200/permgen/internal/logger"
	"github.com/lbp0200/permgen/internal/perm"
)

// Run 生成排列、写入 cfg.Output，成功后向 stdout 打印确认信息
func Run(cfg config.Config, stdout io.Writer) error {
	log := logger.WithRun(uuid.NewString())

	start := time.Now()
	seq, err := perm.Generate(cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Debug().Int("count", len(seq)).Bool("seeded", cfg.HasSeed).
		Dur("took", time.Since(start)).Msg("sequence generated")

	start = time.Now()
	if err := perm.WriteFile(cfg.Output, seq); err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	log.Info().Str("output", cfg.Output).Dur("took", time.Since(start)).Msg("sequence written")

	_, err = fmt.Fprintf(stdout, "Generated random list and saved to '%s'\n", cfg.Output)
	return err
}

// Check 读取 path 并确认它是 1..n-1 的排列
func Check(path string, n int, stdout io.Writer) error {
	seq, err := perm.ReadFile(path)
	if err != nil {
		return err
	}
	if err := perm.Verify(seq, n); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("verified %d values in %s", len(seq), path)
	_, err = fmt.Fprintf(stdout, "'%s' holds a valid permutation of 1..%d\n", path, n-1)
	return err
}
