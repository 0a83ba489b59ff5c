package config

import (
	"errors"
	"fmt"
)

const (
	// DefaultN 生成 1..DefaultN-1
	DefaultN = 1000000
	// DefaultOutput 默认输出文件
	DefaultOutput = "random_numbers.json"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config 一次生成任务的参数
type Config struct {
	N        int    // 上界（不含），序列长度为 N-1
	Output   string // 输出路径
	Seed     int64
	HasSeed  bool // 为 false 时使用系统熵源
	LogLevel string
}

// Default 返回默认配置
func Default() Config {
	return Config{
		N:      DefaultN,
		Output: DefaultOutput,
	}
}

// WithSeed 返回固定种子的副本
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	c.HasSeed = true
	return c
}

// Len 序列长度
func (c Config) Len() int {
	if c.N < 1 {
		return 0
	}
	return c.N - 1
}

func (c Config) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("%w: n must be >= 1, got %d", ErrInvalidConfig, c.N)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return nil
}
