package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cory-johannsen/derelict/internal/gen/vehicle"
)

func main() {
	contentDir := flag.String("content", "", "path to vehicle content YAML directory")
	flag.Parse()

	if *contentDir == "" {
		fmt.Fprintln(os.Stderr, "usage: contentlint -content <dir>")
		os.Exit(1)
	}

	start := time.Now()
	registry, err := vehicle.LoadDir(*contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("content OK: %d groups, %d placements, %d spawns in %s\n",
		registry.NumGroups(), registry.NumPlacements(), registry.NumSpawns(),
		time.Since(start).Round(time.Millisecond))
}
