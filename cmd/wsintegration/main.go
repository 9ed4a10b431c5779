package main

import (
	"log"
	"os"

	"github.com/QuadTriangle/wsintegration/internal/config"
	"github.com/QuadTriangle/wsintegration/internal/hooks"
	"github.com/QuadTriangle/wsintegration/internal/plugins/stats"
	"github.com/QuadTriangle/wsintegration/internal/stream"
)

func main() {
	pipeline := &hooks.Pipeline{}

	// --- Register hooks ---
	st := stats.New()
	pipeline.AddHook(st)

	endpoint := config.Load()

	// Run only returns once the session has failed; there is no reconnect.
	err := stream.Run(os.Stdout, nil, endpoint, pipeline)

	log.Printf("[%s] %s", st.Name(), st.Store().Summary())
	log.Fatalf("%v", err)
}
