// Profiling:
// go build ./profile/lookup
// go tool pprof -http=":8000" -nodefraction=0.001 ./lookup mem.pprof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/edwinsyarief/lazyhandle"
)

type object struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, _ := os.Create("cpu.prof")
	_ = pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	rounds := 50
	iters := 10000
	objects := 100000
	run(rounds, iters, objects)

	// Memory Profiling
	memFile, _ := os.Create("mem.prof")
	defer memFile.Close()
	runtime.GC() // Trigger garbage collection
	_ = pprof.WriteHeapProfile(memFile)
}

func run(rounds, iters, numObjects int) {
	for range rounds {
		tab := lazyhandle.New[object](lazyhandle.Layout32, numObjects)
		owned := make([]object, numObjects)
		handles := make([]lazyhandle.Handle, numObjects)
		for i := range owned {
			handles[i] = tab.Acquire(&owned[i])
		}

		for range iters {
			for _, h := range handles {
				if obj, ok := tab.Get(h); ok {
					obj.V += obj.W
				}
			}
		}
	}
}
