package sorter

import (
	"slices"
	"sync"
)

// Sequential 逐个排序，返回副本，不修改输入
func Sequential(arrays [][]int64) [][]int64 {
	sorted := make([][]int64, len(arrays))
	for i, arr := range arrays {
		sorted[i] = sortedCopy(arr)
	}
	return sorted
}

// Concurrent 每个数组一个 goroutine，结果位置与输入一致
func Concurrent(arrays [][]int64) [][]int64 {
	sorted := make([][]int64, len(arrays))
	var wg sync.WaitGroup
	wg.Add(len(arrays))
	for i, arr := range arrays {
		go func() {
			defer wg.Done()
			sorted[i] = sortedCopy(arr)
		}()
	}
	wg.Wait()
	return sorted
}

func sortedCopy(arr []int64) []int64 {
	out := make([]int64, len(arr))
	copy(out, arr)
	slices.Sort(out)
	return out
}
