// Package strand schedules tile-strand work across worker goroutines. A
// strand is a vertically contiguous run of tile coordinates; partitioning
// work by strand (rather than by individual tile) is what lets each worker
// reuse the bottom rows of one tile's working window as the top rows of the
// next (pkg/ninegrid's from_above fast path).
package strand

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/inkwell/tilepost/pkg/tile"
)

// Processor morphs, blurs, or gap-scans a single strand, writing every
// retained result into out. The result type R is *tile.Tile for morph and
// blur, and a gap-specific distance-tile pointer for gap detection.
// Implementations typically hold per-worker scratch state (a lookup
// table, a working window) that makes a single Processor unsafe to share
// across goroutines — Run gives each worker its own via NewProcessor.
type Processor[R any] interface {
	ProcessStrand(s tile.Strand, tiles tile.Map, out map[tile.Coord]R)
}

// NewProcessor builds a fresh, worker-private Processor. Run calls it
// exactly once per worker goroutine, never concurrently with itself.
type NewProcessor[R any] func() Processor[R]

// minStrandsPerWorker bounds how finely strands are split: fewer than this
// many strands per worker and the per-goroutine setup cost (allocating a
// lookup table, a working window) isn't worth paying.
const minStrandsPerWorker = 4

// Run partitions strands across min(runtime.NumCPU(), len(strands)/4)
// worker goroutines. Workers claim strands from a shared atomic cursor —
// no per-tile locking is needed since strands never overlap — and each
// worker accumulates its output in a private map, merged into the
// returned map only once the worker has no more strands to claim. If the
// computed worker count is 1 or fewer, Run processes every strand on the
// calling goroutine instead of spawning any.
func Run[R any](strands tile.StrandList, tiles tile.Map, newProcessor NewProcessor[R]) map[tile.Coord]R {
	result := make(map[tile.Coord]R)

	numWorkers := len(strands) / minStrandsPerWorker
	if cpu := runtime.NumCPU(); cpu < numWorkers {
		numWorkers = cpu
	}

	if numWorkers <= 1 {
		p := newProcessor()
		for _, s := range strands {
			p.ProcessStrand(s, tiles, result)
		}
		return result
	}

	log.Printf("strand: dispatching %d strands across %d workers", len(strands), numWorkers)

	var cursor atomic.Int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		p := newProcessor()
		go func(id int, p Processor[R]) {
			defer wg.Done()
			local := make(map[tile.Coord]R)
			claimed := 0
			for {
				i := cursor.Add(1) - 1
				if i >= int64(len(strands)) {
					break
				}
				p.ProcessStrand(strands[i], tiles, local)
				claimed++
			}
			mu.Lock()
			for c, v := range local {
				result[c] = v
			}
			mu.Unlock()
			log.Printf("strand: worker %d claimed %d strands", id, claimed)
		}(w, p)
	}

	wg.Wait()
	return result
}
