package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"aijobs-engine/internal/aggregate"
	"aijobs-engine/internal/config"
	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/ledger"
	"aijobs-engine/internal/scheduler"
)

func main() {
	var (
		useAIMap = flag.Bool("ai-companies", false, "aggregate the built-in AI-companies watchlist even when names are given")
		atsOnly  = flag.String("ats", "", "restrict resolution to one ATS (ashby, greenhouse, lever, workable, rippling)")
		output   = flag.String("output", "", "canonical snapshot path (default map/public/ai.csv)")
		every    = flag.Duration("every", 0, "keep running, repeating the aggregation at this interval")
		dataDir  = flag.String("data-dir", "", "project data directory (default $AIJOBS_DATA_DIR or .)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [company ...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *atsOnly != "" && !validATS(*atsOnly) {
		log.Fatalf("[main] unknown ats %q", *atsOnly)
	}

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("AIJOBS_DATA_DIR")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath, err := config.EnsureUserConfig(dir)
	if err != nil {
		log.Fatalf("[main] config bootstrap: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[main] config %s: %v", cfgPath, err)
	}

	snapshot := *output
	if snapshot == "" {
		snapshot = cfg.App.Snapshot
	}
	if !filepath.IsAbs(snapshot) {
		snapshot = filepath.Join(dir, snapshot)
	}

	agg := aggregate.New(cfg, dir, *atsOnly)
	w := &ledger.Writer{DataDir: dir, SnapshotPath: snapshot}
	companies := flag.Args()

	run := func(ctx context.Context) error {
		jobs, err := agg.Run(ctx, companies, *useAIMap)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			log.Printf("[main] no jobs found")
			return nil
		}
		return w.Write(jobs, time.Now())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *every > 0 {
		log.Printf("[main] running every %s (data dir %s)", *every, dir)
		scheduler.Every(ctx, *every, "aggregate", run)
		return
	}

	if err := run(ctx); err != nil {
		log.Fatalf("[main] %v", err)
	}
}

func validATS(ats string) bool {
	switch ats {
	case domain.ATSAshby, domain.ATSGreenhouse, domain.ATSLever, domain.ATSWorkable, domain.ATSRippling:
		return true
	}
	return false
}
