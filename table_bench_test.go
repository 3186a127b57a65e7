package lazyhandle

import (
	"fmt"
	"testing"
)

type benchObj struct {
	V int64
	W int64
}

func benchSizes() []int {
	return []int{1000, 10000, 100000}
}

func BenchmarkTableAcquire(b *testing.B) {
	for _, size := range benchSizes() {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			objs := make([]benchObj, size)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tab := New[benchObj](Layout32, size)
				b.StartTimer()
				for j := 0; j < size; j++ {
					tab.Acquire(&objs[j])
				}
			}
		})
	}
}

func BenchmarkTableGet(b *testing.B) {
	for _, size := range benchSizes() {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			objs := make([]benchObj, size)
			tab := New[benchObj](Layout32, size)
			handles := make([]Handle, size)
			for j := 0; j < size; j++ {
				handles[j] = tab.Acquire(&objs[j])
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tab.Get(handles[i%size])
			}
		})
	}
}

func BenchmarkTableIsExpired(b *testing.B) {
	for _, size := range benchSizes() {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			objs := make([]benchObj, size)
			tab := New[benchObj](Layout32, size)
			handles := make([]Handle, size)
			for j := 0; j < size; j++ {
				handles[j] = tab.Acquire(&objs[j])
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tab.IsExpired(handles[i%size])
			}
		})
	}
}

func BenchmarkTableAcquireRelease(b *testing.B) {
	for _, size := range benchSizes() {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			objs := make([]benchObj, size)
			tab := New[benchObj](Layout32, size)
			handles := make([]Handle, size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := 0; j < size; j++ {
					handles[j] = tab.Acquire(&objs[j])
				}
				for j := 0; j < size; j++ {
					tab.Release(handles[j])
				}
			}
		})
	}
}

func BenchmarkTableGrowth(b *testing.B) {
	initialSizes := []int{1000, 10000}
	for _, initSize := range initialSizes {
		name := fmt.Sprintf("%dK_init_x2", initSize/1000)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			target := initSize * 2
			objs := make([]benchObj, target)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tab := New[benchObj](Layout32, initSize)
				b.StartTimer()
				for j := 0; j < target; j++ {
					tab.Acquire(&objs[j])
				}
			}
		})
	}
}

func BenchmarkPoolCreateDestroy(b *testing.B) {
	for _, size := range benchSizes() {
		name := fmt.Sprintf("%dK", size/1000)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			handles := make([]Handle, size)
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				p := NewPool[benchObj](Layout32, size)
				b.StartTimer()
				for j := 0; j < size; j++ {
					_, handles[j] = p.Create()
				}
				for j := 0; j < size; j++ {
					p.Destroy(handles[j])
				}
			}
		})
	}
}
