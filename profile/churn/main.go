// Profiling:
// go build ./profile/churn
// go tool pprof -http=":8000" -nodefraction=0.001 ./churn mem.pprof

package main

import (
	"github.com/edwinsyarief/lazyhandle"
	"github.com/pkg/profile"
)

type object struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 10000
	objects := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, objects)
	p.Stop()
}

func run(rounds, iters, numObjects int) {
	for range rounds {
		tab := lazyhandle.New[object](lazyhandle.Layout32, numObjects)
		owned := make([]object, numObjects)
		handles := make([]lazyhandle.Handle, numObjects)

		for range iters {
			for i := range owned {
				handles[i] = tab.Acquire(&owned[i])
			}
			for _, h := range handles {
				obj := tab.MustGet(h)
				obj.V += obj.W
			}
			for _, h := range handles {
				tab.Release(h)
			}
		}
	}
}
