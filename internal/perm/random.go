package perm

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Intner 返回 [0, n) 范围内随机整数的随机源
type Intner interface {
	IntN(n int) int
}

// NewSource 有种子时返回确定性的 PCG 流，否则用 crypto/rand 取熵初始化 ChaCha8
func NewSource(seed int64, hasSeed bool) (*rand.Rand, error) {
	if hasSeed {
		s := uint64(seed)
		return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)), nil
	}
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("read system entropy: %w", err)
	}
	return rand.New(rand.NewChaCha8(key)), nil
}

// Shuffle Fisher-Yates 洗牌，j 在 [0, i] 内均匀选取
func Shuffle(n int, rng Intner, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		swap(i, j)
	}
}
