package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/eva-gallery/eva-nft/internal/api/shared/dto"
	"github.com/eva-gallery/eva-nft/internal/domain"
)

const (
	defaultAPIURL = "http://localhost:8080"
)

type Config struct {
	APIURL        string
	UserID        string
	WalletAddress string
	CollectionID  string
	Batches       int           // Number of ingest requests to send
	BatchSize     int           // NFTs per request
	Overlap       float64       // Fraction of each batch repeated from the previous one
	Concurrency   int           // Requests in flight at once
	Timeout       time.Duration // Timeout for each request
	OutputFile    string        // Output markdown file path (optional)
}

// RunStats aggregates the outcome of every ingest request
type RunStats struct {
	mu        sync.Mutex
	Requests  int
	Errors    int
	Inserted  int
	Skipped   int
	Failed    int
	Latencies []time.Duration
	StartTime time.Time
	Duration  time.Duration
}

func (s *RunStats) record(resp *dto.IngestResponse, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Requests++
	s.Latencies = append(s.Latencies, latency)
	if err != nil {
		s.Errors++
		return
	}
	s.Inserted += resp.Inserted
	s.Skipped += resp.Skipped
	s.Failed += resp.Failed
}

func main() {
	cfg := parseFlags()

	if cfg.UserID == "" || cfg.WalletAddress == "" {
		fmt.Println("Error: user-id and wallet are required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Ingesting %d batches of %d NFTs into %s (wallet: %s)\n",
		cfg.Batches, cfg.BatchSize, cfg.APIURL, cfg.WalletAddress)

	stats := run(ctx, &http.Client{Timeout: cfg.Timeout}, cfg)

	fmt.Println("\n" + strings.Repeat("=", 80))
	if ctx.Err() != nil {
		fmt.Println("INTERRUPTED - PARTIAL RESULTS")
	} else {
		fmt.Println("BENCHMARK RESULTS")
	}
	fmt.Println(strings.Repeat("=", 80))
	printStats(os.Stdout, stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, cfg, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.APIURL, "api-url", defaultAPIURL, "Base URL of the eva-nft API")
	flag.StringVar(&cfg.UserID, "user-id", "", "User that owns the wallet (required)")
	flag.StringVar(&cfg.WalletAddress, "wallet", "", "Wallet address to ingest into (required)")
	flag.StringVar(&cfg.CollectionID, "collection", "u421", "Collection external ID the generated NFTs belong to")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.IntVar(&cfg.Batches, "batches", 50, "Number of ingest requests")
	flag.IntVar(&cfg.BatchSize, "batch-size", 100, "NFTs per request")
	flag.Float64Var(&cfg.Overlap, "overlap", 0.2, "Fraction of each batch repeated from the previous batch")
	flag.IntVar(&cfg.Concurrency, "concurrency", 5, "Number of concurrent requests")

	var timeoutSeconds int
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Timeout for each request in seconds")

	configFile := flag.String("config", "", "Path to config file (optional, default: "+GetDefaultConfigPath()+")")

	flag.Parse()

	cfg.Timeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.BatchSize <= 0 || cfg.BatchSize > dto.MAX_ITEMS_PER_REQUEST {
		cfg.BatchSize = dto.MAX_ITEMS_PER_REQUEST
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Overlap < 0 || cfg.Overlap >= 1 {
		cfg.Overlap = 0
	}

	if *configFile != "" {
		fileCfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.APIURL == defaultAPIURL && fileCfg.APIURL != "" {
				cfg.APIURL = fileCfg.APIURL
			}
			if cfg.UserID == "" {
				cfg.UserID = fileCfg.UserID
			}
		}
	}

	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")
	return cfg
}

// run sends every batch through a bounded pool and collects the outcomes
func run(ctx context.Context, client *http.Client, cfg *Config) *RunStats {
	stats := &RunStats{StartTime: time.Now()}
	pool := pond.NewPool(cfg.Concurrency, pond.WithContext(ctx))

	for i := 0; i < cfg.Batches; i++ {
		batch := generateBatch(cfg, i)
		pool.Submit(func() {
			start := time.Now()
			resp, err := ingest(ctx, client, cfg, batch)
			stats.record(resp, time.Since(start), err)
		})
	}

	pool.StopAndWait()
	stats.Duration = time.Since(stats.StartTime)
	return stats
}

// generateBatch builds batch n. Its leading items repeat the tail of batch n-1
// so the run exercises the already-exists path alongside fresh inserts.
func generateBatch(cfg *Config, n int) []domain.ExternalNFT {
	stride := cfg.BatchSize - int(float64(cfg.BatchSize)*cfg.Overlap)
	first := n * stride

	nfts := make([]domain.ExternalNFT, 0, cfg.BatchSize)
	for token := first; token < first+cfg.BatchSize; token++ {
		nfts = append(nfts, domain.ExternalNFT{
			ExternalID: fmt.Sprintf("%s-%d", cfg.CollectionID, token),
			Name:       fmt.Sprintf("Benchmark #%d", token),
			Image:      fmt.Sprintf("ipfs://ipfs/benchmark-%d", token),
		})
	}
	return nfts
}

func ingest(ctx context.Context, client *http.Client, cfg *Config, nfts []domain.ExternalNFT) (*dto.IngestResponse, error) {
	body, err := json.Marshal(dto.IngestNFTsRequest{NFTs: nfts})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/users/%s/wallets/%s/nfts", cfg.APIURL, cfg.UserID, cfg.WalletAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var result dto.IngestResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func printStats(w io.Writer, stats *RunStats) {
	items := stats.Inserted + stats.Skipped + stats.Failed

	_, _ = fmt.Fprintf(w, "%s Requests:  %d (%d errors, %s)\n",
		statusEmoji(stats.Inserted, stats.Failed+stats.Errors), stats.Requests, stats.Errors, percentageString(stats.Errors, stats.Requests))
	_, _ = fmt.Fprintf(w, "   Items:     %d inserted, %d skipped, %d failed\n", stats.Inserted, stats.Skipped, stats.Failed)
	_, _ = fmt.Fprintf(w, "   Duration:  %s\n", formatDuration(stats.Duration))
	_, _ = fmt.Fprintf(w, "   Rate:      %s requests, %s items\n", formatRate(stats.Requests, stats.Duration), formatRate(items, stats.Duration))
	_, _ = fmt.Fprintf(w, "   Latency:   p50 %s, p90 %s, p99 %s\n",
		formatDuration(percentile(stats.Latencies, 50)),
		formatDuration(percentile(stats.Latencies, 90)),
		formatDuration(percentile(stats.Latencies, 99)))
}

// writeMarkdownReport writes a markdown report of the run
func writeMarkdownReport(path string, cfg *Config, stats *RunStats) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	items := stats.Inserted + stats.Skipped + stats.Failed

	_, _ = fmt.Fprintf(file, "# Ingest Benchmark Report\n\n")
	_, _ = fmt.Fprintf(file, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	_, _ = fmt.Fprintf(file, "## Run\n\n")
	_, _ = fmt.Fprintf(file, "| Property | Value |\n")
	_, _ = fmt.Fprintf(file, "|----------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **API** | %s |\n", cfg.APIURL)
	_, _ = fmt.Fprintf(file, "| **Wallet** | `%s` |\n", cfg.WalletAddress)
	_, _ = fmt.Fprintf(file, "| **Batches** | %d x %d NFTs |\n", cfg.Batches, cfg.BatchSize)
	_, _ = fmt.Fprintf(file, "| **Overlap** | %.0f%% |\n", cfg.Overlap*100)
	_, _ = fmt.Fprintf(file, "| **Concurrency** | %d |\n", cfg.Concurrency)
	_, _ = fmt.Fprintf(file, "| **Duration** | %s |\n", formatDuration(stats.Duration))
	_, _ = fmt.Fprintf(file, "\n")

	_, _ = fmt.Fprintf(file, "## %s Outcomes\n\n", statusEmoji(stats.Inserted, stats.Failed+stats.Errors))
	_, _ = fmt.Fprintf(file, "| Metric | Value |\n")
	_, _ = fmt.Fprintf(file, "|--------|-------|\n")
	_, _ = fmt.Fprintf(file, "| **Requests** | %d (%s) |\n", stats.Requests, formatRate(stats.Requests, stats.Duration))
	if stats.Errors > 0 {
		_, _ = fmt.Fprintf(file, "| **Request Errors** | %d (%s) |\n", stats.Errors, percentageString(stats.Errors, stats.Requests))
	}
	_, _ = fmt.Fprintf(file, "| **Inserted** | %d (%s) |\n", stats.Inserted, percentageString(stats.Inserted, items))
	_, _ = fmt.Fprintf(file, "| **Skipped** | %d (%s) |\n", stats.Skipped, percentageString(stats.Skipped, items))
	if stats.Failed > 0 {
		_, _ = fmt.Fprintf(file, "| **Failed** | %d (%s) |\n", stats.Failed, percentageString(stats.Failed, items))
	}
	_, _ = fmt.Fprintf(file, "| **p50 Latency** | %s |\n", formatDuration(percentile(stats.Latencies, 50)))
	_, _ = fmt.Fprintf(file, "| **p90 Latency** | %s |\n", formatDuration(percentile(stats.Latencies, 90)))
	_, _ = fmt.Fprintf(file, "| **p99 Latency** | %s |\n", formatDuration(percentile(stats.Latencies, 99)))

	return nil
}
