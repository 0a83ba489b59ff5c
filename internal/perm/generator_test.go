package perm

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lbp0200/permgen/internal/config"
	"github.com/zeebo/assert"
)

func smallConfig(n int) config.Config {
	cfg := config.Default()
	cfg.N = n
	return cfg
}

func TestGenerateIsPermutation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 1000} {
		seq, err := Generate(smallConfig(n))
		assert.NoError(t, err)
		assert.Equal(t, n-1, len(seq))
		assert.NoError(t, Verify(seq, n))
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	_, err := Generate(smallConfig(0))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestGenerateSeeded(t *testing.T) {
	cfg := smallConfig(1000).WithSeed(7)
	a, err := Generate(cfg)
	assert.NoError(t, err)
	b, err := Generate(cfg)
	assert.NoError(t, err)
	assert.DeepEqual(t, a, b)

	c, err := Generate(smallConfig(1000).WithSeed(8))
	assert.NoError(t, err)
	assert.NotEqual(t, sequenceKey(a), sequenceKey(c))
}

func TestGenerateUnseededDiffers(t *testing.T) {
	a, err := Generate(smallConfig(1000))
	assert.NoError(t, err)
	b, err := Generate(smallConfig(1000))
	assert.NoError(t, err)
	assert.NotEqual(t, sequenceKey(a), sequenceKey(b))
}

func TestGenerateActuallyShuffles(t *testing.T) {
	seq, err := Generate(smallConfig(1000).WithSeed(1))
	assert.NoError(t, err)
	sorted := true
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			sorted = false
			break
		}
	}
	assert.False(t, sorted)
}

// 3 个元素共 6 种排列，每种出现次数应接近 trials/6
func TestShuffleUniform(t *testing.T) {
	const trials = 60000
	rng := rand.New(rand.NewPCG(1, 2))
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		counts[sequenceKey(Permute(4, rng))]++
	}
	assert.Equal(t, 6, len(counts))
	for key, c := range counts {
		if c < trials/6-600 || c > trials/6+600 {
			t.Fatalf("permutation %s seen %d times, want about %d", key, c, trials/6)
		}
	}
}

func TestShuffleTrivial(t *testing.T) {
	calls := 0
	Shuffle(0, rand.New(rand.NewPCG(1, 1)), func(i, j int) { calls++ })
	Shuffle(1, rand.New(rand.NewPCG(1, 1)), func(i, j int) { calls++ })
	assert.Equal(t, 0, calls)
}

func TestVerify(t *testing.T) {
	assert.NoError(t, Verify(Sequence{3, 1, 2}, 4))
	assert.NoError(t, Verify(Sequence{}, 1))

	cases := []Sequence{
		{1, 2},       // 缺值
		{1, 2, 2},    // 重复
		{0, 1, 2},    // 越界
		{1, 2, 4},    // 越界
		{1, 2, 3, 3}, // 长度
	}
	for _, seq := range cases {
		err := Verify(seq, 4)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotPermutation))
	}
}

func TestGenerateFullSize(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size permutation skipped in short mode")
	}
	seq, err := Generate(config.Default())
	assert.NoError(t, err)
	assert.Equal(t, 999999, len(seq))
	assert.NoError(t, Verify(seq, config.DefaultN))
}

func sequenceKey(seq Sequence) string {
	b := make([]byte, 0, len(seq)*4)
	for _, v := range seq {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), ',')
	}
	return string(b)
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(3, 4))
}
