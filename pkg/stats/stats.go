// Package stats collects and reports timing and short-circuit counters
// for the morph, blur, and gap operations, writing them to the same
// logs/ directory convention the rest of this project's tooling uses.
package stats

import (
	"fmt"
	"log"
	"os"
	"time"
)

// Report holds timing and short-circuit metadata for a single run of one
// of the core operations.
type Report struct {
	Operation    string
	Timestamp    time.Time
	TotalTime    time.Duration
	TileCount    int
	StrandCount  int
	Workers      int
	TilesSkipped int // tiles left out of the result map (by emptyResult or NoCornerGaps)
}

// AverageTime returns the per-tile wall-clock time, or zero if no tiles
// were processed.
func (r Report) AverageTime() time.Duration {
	if r.TileCount == 0 {
		return 0
	}
	return r.TotalTime / time.Duration(r.TileCount)
}

// WriteReports writes a single combined results file to logs/, named with
// the timestamp of the first report.
func WriteReports(reports []Report) {
	if len(reports) == 0 {
		return
	}

	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("stats: failed to create logs directory: %v", err)
		return
	}

	timestamp := reports[0].Timestamp.Format("2006-01-02_15-04-05")
	resultsFile := fmt.Sprintf("logs/tilepost_%s.txt", timestamp)

	file, err := os.Create(resultsFile)
	if err != nil {
		log.Printf("stats: failed to create results file: %v", err)
		return
	}
	defer file.Close()

	fmt.Fprintf(file, "=== Tile Post-Processing Run Results ===\n")
	fmt.Fprintf(file, "Timestamp: %s\n\n", reports[0].Timestamp.Format("2006-01-02 15:04:05"))

	for _, r := range reports {
		fmt.Fprintf(file, "=== %s ===\n", r.Operation)
		fmt.Fprintf(file, "Tiles processed: %d\n", r.TileCount)
		fmt.Fprintf(file, "Tiles skipped: %d\n", r.TilesSkipped)
		fmt.Fprintf(file, "Strands: %d\n", r.StrandCount)
		fmt.Fprintf(file, "Workers: %d\n", r.Workers)
		fmt.Fprintf(file, "Total time: %s\n", r.TotalTime)
		fmt.Fprintf(file, "Average time per tile: %s\n\n", r.AverageTime())
	}
}
