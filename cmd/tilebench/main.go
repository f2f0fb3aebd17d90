// Command tilebench exercises the morph, blur, and gap operations against
// synthetic tile grids and reports per-operation timings, optionally
// publishing them to Redis for cross-run aggregation.
package main

import (
	"flag"
	"log"
	"runtime"
	"time"

	"github.com/inkwell/tilepost/pkg/blur"
	"github.com/inkwell/tilepost/pkg/gap"
	"github.com/inkwell/tilepost/pkg/morph"
	"github.com/inkwell/tilepost/pkg/stats"
	"github.com/inkwell/tilepost/pkg/telemetry"
	"github.com/inkwell/tilepost/pkg/tile"
)

func main() {
	var (
		gridSize  = flag.Int("grid", 8, "edge length of the synthetic tile grid, in tiles")
		offset    = flag.Int("offset", 4, "morph offset: positive dilates, negative erodes")
		radius    = flag.Int("blur-radius", 4, "Gaussian blur radius, in pixels")
		distance  = flag.Int("gap-distance", 5, "maximum gap-closing distance, in pixels")
		redisAddr = flag.String("redis-addr", "", "if set, publish reports to this Redis address")
	)
	flag.Parse()

	log.Printf("tilebench: building a %dx%d synthetic tile grid", *gridSize, *gridSize)
	tiles, strands := buildCheckerboard(*gridSize)

	var reports []stats.Report

	reports = append(reports, runMorph(*offset, tiles, strands))
	reports = append(reports, runBlur(*radius, tiles, strands))
	reports = append(reports, runGap(*distance, tiles, strands))

	stats.WriteReports(reports)
	log.Printf("tilebench: results written to logs/tilepost_*.txt")

	if *redisAddr != "" {
		publishReports(*redisAddr, reports)
	}
}

// buildCheckerboard fills an n×n grid of tiles, alternating fully opaque
// and fully transparent, and returns it alongside one strand per column so
// the scheduler has vertical reuse to exploit.
func buildCheckerboard(n int) (tile.Map, tile.StrandList) {
	tiles := make(tile.Map, n*n)
	strands := make(tile.StrandList, 0, n)

	for x := 0; x < n; x++ {
		strand := make(tile.Strand, 0, n)
		for y := 0; y < n; y++ {
			coord := tile.Coord{X: int32(x), Y: int32(y)}
			if (x+y)%2 == 0 {
				tiles[coord] = tile.Opaque()
			} else {
				tiles[coord] = tile.NewTile()
			}
			strand = append(strand, coord)
		}
		strands = append(strands, strand)
	}
	return tiles, strands
}

func runMorph(offset int, tiles tile.Map, strands tile.StrandList) stats.Report {
	start := time.Now()
	result, err := morph.Morph(offset, tiles, strands)
	if err != nil {
		log.Fatalf("tilebench: morph failed: %v", err)
	}
	return stats.Report{
		Operation:    "morph",
		Timestamp:    start,
		TotalTime:    time.Since(start),
		TileCount:    len(tiles),
		StrandCount:  len(strands),
		Workers:      runtime.NumCPU(),
		TilesSkipped: len(tiles) - len(result),
	}
}

func runBlur(radius int, tiles tile.Map, strands tile.StrandList) stats.Report {
	start := time.Now()
	result, err := blur.Blur(radius, tiles, strands)
	if err != nil {
		log.Fatalf("tilebench: blur failed: %v", err)
	}
	return stats.Report{
		Operation:   "blur",
		Timestamp:   start,
		TotalTime:   time.Since(start),
		TileCount:   len(result),
		StrandCount: len(strands),
		Workers:     runtime.NumCPU(),
	}
}

func runGap(distance int, tiles tile.Map, strands tile.StrandList) stats.Report {
	start := time.Now()
	result, err := gap.FindGaps(distance, tiles, strands)
	if err != nil {
		log.Fatalf("tilebench: find gaps failed: %v", err)
	}
	return stats.Report{
		Operation:    "gap",
		Timestamp:    start,
		TotalTime:    time.Since(start),
		TileCount:    len(tiles),
		StrandCount:  len(strands),
		Workers:      runtime.NumCPU(),
		TilesSkipped: len(tiles) - len(result),
	}
}

func publishReports(addr string, reports []stats.Report) {
	pub, err := telemetry.NewPublisher(addr)
	if err != nil {
		log.Printf("tilebench: telemetry disabled: %v", err)
		return
	}
	defer pub.Close()

	for _, r := range reports {
		if err := pub.StoreReport(r); err != nil {
			log.Printf("tilebench: failed to publish %s report: %v", r.Operation, err)
		}
	}
	log.Printf("tilebench: published %d reports to %s", len(reports), addr)
}
