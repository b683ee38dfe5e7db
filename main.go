package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"aland-offers/aggregator"
	"aland-offers/config"
	"aland-offers/fetcher"
	"aland-offers/notify"
	"aland-offers/parser"
	"aland-offers/publish"
	"aland-offers/render"
	"aland-offers/sources"

	"github.com/google/uuid"
)

const configPath = "config.yaml"

func main() {
	// Tag log lines so overlapping cron runs can be told apart
	log.SetPrefix(fmt.Sprintf("[offers %s] ", uuid.NewString()[:8]))

	fmt.Println("Starting offer scraper...")
	fmt.Println(strings.Repeat("=", 50))

	cfg := loadConfig(configPath)

	result, err := run(cfg, time.Now)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	fmt.Println("\nDone! Two files written:")
	fmt.Printf("   1. %s - visitor page\n", cfg.Output.DisplayPath)
	fmt.Printf("   2. %s - AI readable page\n", cfg.Output.AIPath)

	publishPages(cfg)
	notifyRun(cfg, result)
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(path string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(path); err == nil {
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// run scrapes all sources and writes both pages. Only a failed write is an error.
func run(cfg *config.Config, now func() time.Time) (aggregator.Result, error) {
	agg := aggregator.New(
		fetcher.NewCollyFetcher(cfg.Scraper.UserAgent, cfg.Scraper.Timeout),
		parser.NewParser(),
		sources.FromConfig(cfg),
		aggregator.WithThreshold(cfg.Scraper.MinOffers),
		aggregator.WithClock(now),
	)

	result := agg.Collect()

	fmt.Printf("\nFound %d offers\n", len(result.Offers))
	fmt.Println(strings.Repeat("=", 50))

	if err := render.WriteDisplay(cfg.Output.DisplayPath, result.Offers, result.CollectedAt); err != nil {
		return result, fmt.Errorf("failed to write visitor page: %w", err)
	}
	fmt.Printf("Visitor page written: %s\n", cfg.Output.DisplayPath)

	if err := render.WriteAI(cfg.Output.AIPath, result.Offers, result.CollectedAt); err != nil {
		return result, fmt.Errorf("failed to write AI page: %w", err)
	}
	fmt.Printf("AI readable page written: %s\n", cfg.Output.AIPath)

	return result, nil
}

// publishPages uploads both pages when an SFTP target is configured
func publishPages(cfg *config.Config) {
	if !cfg.Publish.SFTP.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	uploader := publish.NewUploader(cfg.Publish.SFTP)
	if err := uploader.Upload(ctx, cfg.Output.DisplayPath, cfg.Output.AIPath); err != nil {
		log.Printf("Warning: Failed to publish pages: %v\n", err)
		return
	}
	fmt.Printf("Pages published to %s\n", cfg.Publish.SFTP.Host)
}

// notifyRun sends the run summary when a Telegram chat is configured
func notifyRun(cfg *config.Config, result aggregator.Result) {
	if !cfg.Notify.Telegram.Enabled() {
		return
	}

	notifier, err := notify.NewTelegramNotifier(cfg.Notify.Telegram, "")
	if err != nil {
		log.Printf("Warning: Failed to initialize Telegram notifier: %v\n", err)
		return
	}
	if err := notifier.Notify(result); err != nil {
		log.Printf("Warning: Failed to send Telegram summary: %v\n", err)
	}
}
