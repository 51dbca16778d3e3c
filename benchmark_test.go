package fixedset

import (
	"fmt"
	randv2 "math/rand/v2"
	"testing"
)

func benchmarkKeys(n int) []int32 {
	rng := randv2.New(randv2.NewPCG(1, 2))
	seen := make(map[int32]struct{}, n)
	keys := make([]int32, 0, n)
	for len(keys) < n {
		k := int32(rng.Uint32())
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		keys := benchmarkKeys(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Build(keys, WithSeed(testSeed1)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBuildParallel(b *testing.B) {
	keys := benchmarkKeys(100000)
	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Build(keys, WithSeed(testSeed1), WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	keys := benchmarkKeys(100000)
	set, err := Build(keys, WithSeed(testSeed1))
	if err != nil {
		b.Fatal(err)
	}

	b.Run("hit", func(b *testing.B) {
		i := 0
		for b.Loop() {
			if !set.Contains(keys[i%len(keys)]) {
				b.Fatal("false negative")
			}
			i++
		}
	})

	b.Run("miss", func(b *testing.B) {
		rng := randv2.New(randv2.NewPCG(3, 4))
		for b.Loop() {
			set.Contains(int32(rng.Uint32()))
		}
	})
}
