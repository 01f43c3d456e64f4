package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-trinary/Trees"
	"github.com/puzpuzpuz/xsync/v3"
)

// A multiset can also be kept as a hash map from value to count. These
// benchmarks run the same insert then delete workload on TrinaryTree and on
// counting maps built from https://github.com/cornelk/hashmap,
// https://github.com/alphadose/haxmap and https://github.com/puzpuzpuz/xsync.
// The maps lose the ordering, the tree keeps it.

const (
	benchmarkItemCount = 1 << 14
	valueRange         = 1 << 10
)

var values = func() []int {
	r := rand.New(rand.NewSource(0))
	a := make([]int, benchmarkItemCount)
	for i := range a {
		a[i] = r.Intn(valueRange)
	}
	return a
}()

func BenchmarkMultiset_TrinaryTree(b *testing.B) {
	for rep := 0; rep < b.N; rep++ {
		t := Trees.New[int, uint16](benchmarkItemCount)
		for _, v := range values {
			t.Insert(v)
		}
		for _, v := range values {
			if !t.Delete(v) {
				b.Fail()
			}
		}
	}
}

func BenchmarkMultiset_HashMap(b *testing.B) {
	for rep := 0; rep < b.N; rep++ {
		m := hashmap.New[int, uint]()
		for _, v := range values {
			c, _ := m.Get(v)
			m.Set(v, c+1)
		}
		for _, v := range values {
			if c, in := m.Get(v); !in {
				b.Fail()
			} else if c == 1 {
				m.Del(v)
			} else {
				m.Set(v, c-1)
			}
		}
	}
}

func BenchmarkMultiset_HaxMap(b *testing.B) {
	for rep := 0; rep < b.N; rep++ {
		m := haxmap.New[int, uint]()
		for _, v := range values {
			c, _ := m.Get(v)
			m.Set(v, c+1)
		}
		for _, v := range values {
			if c, in := m.Get(v); !in {
				b.Fail()
			} else if c == 1 {
				m.Del(v)
			} else {
				m.Set(v, c-1)
			}
		}
	}
}

func BenchmarkMultiset_XSyncMap(b *testing.B) {
	inc := func(c uint, _ bool) (uint, bool) { return c + 1, false }
	dec := func(c uint, loaded bool) (uint, bool) {
		if !loaded {
			b.Fail()
		}
		return c - 1, c <= 1
	}
	for rep := 0; rep < b.N; rep++ {
		m := xsync.NewMapOf[int, uint]()
		for _, v := range values {
			m.Compute(v, inc)
		}
		for _, v := range values {
			m.Compute(v, dec)
		}
	}
}
