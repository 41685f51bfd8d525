package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"brocard-search/internal/search"
	"brocard-search/internal/store"
)

func main() {
	// Define command-line flags
	limit := flag.Int("limit", 10000, "Upper bound of the candidate range (inclusive)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = one per CPU core)")
	chunk := flag.Int("chunk", search.DefaultChunkSize, "Candidates per work chunk")
	record := flag.String("record", "", "Optional SQLite database path to record the run into")
	flag.Parse()

	// Validate input before any parallel work is dispatched
	if *limit < 1 {
		fmt.Fprintf(os.Stderr, "Error: --limit must be positive, got %d\n\n", *limit)
		flag.Usage()
		os.Exit(1)
	}

	workerCount := *workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}

	fmt.Printf("Brocard Search Tool\n")
	fmt.Printf("===================\n\n")
	fmt.Printf("Candidate range: 1 to %d\n", *limit)
	fmt.Printf("Workers: %d\n", workerCount)
	fmt.Printf("Chunk size: %d\n", *chunk)
	fmt.Println()

	startTime := time.Now()
	solutions, err := search.Find(*limit, search.Options{Workers: workerCount, ChunkSize: *chunk})
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
	processingTime := time.Since(startTime)

	fmt.Println("Solutions to n! + 1 = x^2:")
	for _, s := range solutions {
		fmt.Printf("n = %d, x = %s\n", s.N, s.X)
	}

	fmt.Printf("\n✓ Done!\n")
	fmt.Printf("  Solutions found: %d\n", len(solutions))
	fmt.Printf("  Processing time: %s\n", formatElapsed(processingTime))
	fmt.Println()

	if *record != "" {
		db, err := store.Init(*record)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()

		runID, err := store.RecordRun(db, store.Run{
			Limit:     *limit,
			Workers:   workerCount,
			ChunkSize: *chunk,
			Duration:  processingTime,
		}, solutions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Recorded run %s in %s\n", runID, *record)
	}
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
