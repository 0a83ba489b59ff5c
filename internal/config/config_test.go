package config

import (
	"errors"
	"testing"

	"github.com/zeebo/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1000000, cfg.N)
	assert.Equal(t, "random_numbers.json", cfg.Output)
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, 999999, cfg.Len())
	assert.NoError(t, cfg.Validate())
}

func TestWithSeed(t *testing.T) {
	base := Default()
	seeded := base.WithSeed(42)
	assert.True(t, seeded.HasSeed)
	assert.Equal(t, int64(42), seeded.Seed)
	// 原配置不受影响
	assert.False(t, base.HasSeed)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.N = 0
	err := cfg.Validate()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, 0, cfg.Len())

	cfg = Default()
	cfg.Output = ""
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalidConfig))

	cfg = Default()
	cfg.N = 1
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.Len())
}
