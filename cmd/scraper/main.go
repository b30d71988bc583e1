package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"empleos-scraper/internal/config"
	"empleos-scraper/internal/scrape"
	"empleos-scraper/internal/store"

	"github.com/gofrs/flock"
)

func main() {
	mode := flag.String("mode", "full", "crawl mode: full (all pages) or update (first page, merge new postings)")
	cfgFlag := flag.String("config", "", "config file path (default: <data dir>/config.yml, bootstrapped from config/config.yml)")
	flag.Parse()

	var runMode scrape.Mode
	switch *mode {
	case "full":
		runMode = scrape.ModeFull
	case "update":
		runMode = scrape.ModeUpdate
	default:
		log.Fatalf("unknown -mode %q (want full or update)", *mode)
	}

	dataDir := os.Getenv("EMPLEOS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Two runs writing the same exports would corrupt them; hold a file
	// lock for the whole run.
	lock := flock.New(filepath.Join(dataDir, "scraper.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock: %v", err)
	}
	if !locked {
		log.Fatalf("another run is already active in %s", dataDir)
	}
	defer lock.Unlock()

	cfgPath := *cfgFlag
	if cfgPath == "" {
		cfgPath, err = config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
		if err != nil {
			log.Fatalf("config bootstrap failed: %v", err)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	cfg, check := config.NormalizeAndValidate(cfg)
	for _, w := range check.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !check.OK() {
		for _, e := range check.Errors {
			log.Printf("[config] error: %s", e)
		}
		os.Exit(1)
	}

	db, err := store.Open(filepath.Join(dataDir, "empleos.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal(err)
	}

	crawler, err := scrape.NewCrawler(cfg, db)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[run] mode=%s data_dir=%s", runMode, dataDir)
	added, seen, err := crawler.Run(ctx, runMode)
	if err != nil {
		log.Printf("[run] stopped early: %v", err)
	}
	log.Printf("[run] detail pages seen=%d new=%d", seen, added)

	// Re-export the whole collection after every run so the flat files
	// always match the store, full crawl and update alike.
	if err := export(context.Background(), cfg, dataDir, db); err != nil {
		log.Fatalf("export: %v", err)
	}
}

func export(ctx context.Context, cfg config.Config, dataDir string, db *sql.DB) error {
	recs, err := store.ListAll(ctx, db)
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(dataDir, cfg.Export.JSONFile)
	if err := store.ExportJSON(jsonPath, recs); err != nil {
		return err
	}
	csvPath := filepath.Join(dataDir, cfg.Export.CSVFile)
	if err := store.ExportCSV(csvPath, recs); err != nil {
		return err
	}

	log.Printf("[export] %d jobs -> %s, %s", len(recs), jsonPath, csvPath)
	return nil
}
