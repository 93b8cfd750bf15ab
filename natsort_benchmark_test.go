package natsort_test

import (
	"testing"

	"github.com/dmitrymomot/natsort"
)

var benchPairs = [][2]string{
	{"item2", "item10"},
	{"file-0001.txt", "file-0002.txt"},
	{"v1.2.10-beta", "v1.10.2-alpha"},
	{"no digits here at all", "no digits here either"},
	{"99999999999999999999", "100000000000000000000"},
}

func BenchmarkCompare(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, p := range benchPairs {
			_ = natsort.Compare(p[0], p[1])
		}
	}
}

func BenchmarkCompareBytewise(b *testing.B) {
	c, err := natsort.New(natsort.WithCollation(natsort.BytewiseCollation()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range benchPairs {
			_ = c.Compare(p[0], p[1])
		}
	}
}

func BenchmarkSort(b *testing.B) {
	items := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		items = append(items, benchPairs[i%len(benchPairs)][i%2])
	}
	buf := make([]string, len(items))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, items)
		natsort.Sort(buf)
	}
}
