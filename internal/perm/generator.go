package perm

import (
	"errors"
	"fmt"

	"github.com/lbp0200/permgen/internal/config"
)

// Sequence 生成的整数序列，交给序列化后不再修改
type Sequence []int64

var ErrNotPermutation = errors.New("not a permutation")

// Generate 生成 1..N-1 的均匀随机排列
func Generate(cfg config.Config) (Sequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng, err := NewSource(cfg.Seed, cfg.HasSeed)
	if err != nil {
		return nil, err
	}
	return Permute(cfg.N, rng), nil
}

// Permute 用给定随机源生成 1..n-1 的排列
func Permute(n int, rng Intner) Sequence {
	if n <= 1 {
		return Sequence{}
	}
	seq := make(Sequence, n-1)
	for i := range seq {
		seq[i] = int64(i + 1)
	}
	Shuffle(len(seq), rng, func(i, j int) {
		seq[i], seq[j] = seq[j], seq[i]
	})
	return seq
}

// Verify 检查 seq 恰好包含 1..n-1 各一次
func Verify(seq Sequence, n int) error {
	want := 0
	if n > 1 {
		want = n - 1
	}
	if len(seq) != want {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(seq), want)
	}
	seen := make([]bool, len(seq)+1)
	for idx, v := range seq {
		if v < 1 || v > int64(want) {
			return fmt.Errorf("%w: value %d at index %d out of range [1, %d]", ErrNotPermutation, v, idx, want)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate value %d at index %d", ErrNotPermutation, v, idx)
		}
		seen[v] = true
	}
	return nil
}
