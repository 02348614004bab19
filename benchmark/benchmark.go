// Package benchmark wraps a tool run to measure execution time and
// memory usage.
package benchmark

import (
	"fmt"
	"runtime"
	"time"
)

// Run executes f and reports elapsed time and allocation figures.
func Run(label string, f func()) {
	fmt.Printf("[Benchmark] Running: %s\n", label)
	fmt.Println("[Benchmark] Go Version:", runtime.Version())
	fmt.Printf("[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)

	fmt.Printf("[Benchmark] Time Elapsed: %v\n", elapsed)
	fmt.Printf("[Benchmark] Memory Used: %.2f MB\n", float64(memEnd.Alloc-memStart.Alloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] Total Allocated: %.2f MB\n", float64(memEnd.TotalAlloc-memStart.TotalAlloc)/1024.0/1024.0)
	fmt.Printf("[Benchmark] GC Cycles: %d\n", memEnd.NumGC-memStart.NumGC)
	fmt.Println("[Benchmark] ----------------------------------------")
}
