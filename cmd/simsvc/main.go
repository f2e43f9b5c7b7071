package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"smalltown/internal/combat"
	"smalltown/internal/config"
	"smalltown/internal/report"
)

func main() {
	logger := log.New(os.Stderr, "simsvc: ", 0)
	cfg, err := config.ParseSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatalf("settings: %v", err)
	}
	p := report.NewPrinter(cfg.Lang)

	if cfg.Scenario != "" {
		sc, err := config.LoadScenario(cfg.Scenario)
		if err != nil {
			logger.Fatal(err)
		}
		town, err := combat.BuildTown(sc)
		if err != nil {
			logger.Fatalf("scenario %s: %v", sc.ID, err)
		}
		res := combat.RunSingle(sc, town, cfg.Log)
		b, err := combat.MarshalPretty(res)
		if err != nil {
			logger.Fatalf("encode result: %v", err)
		}
		if err := os.WriteFile(cfg.Out, b, 0644); err != nil {
			logger.Fatal(err)
		}
		fmt.Println(report.ResultLine(p, res), "->", cfg.Out)
		return
	}

	scenarios, err := config.LoadDir(cfg.ConfigDir)
	if err != nil {
		logger.Fatal(err)
	}
	if len(scenarios) == 0 {
		logger.Fatalf("no scenarios in %s", cfg.ConfigDir)
	}

	results := make([]combat.SimResult, len(scenarios))
	var mu sync.Mutex
	var failed []string
	wg := sync.WaitGroup{}
	jobs := make(chan int, len(scenarios))
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				sc := scenarios[i]
				town, err := combat.BuildTown(sc)
				if err != nil {
					mu.Lock()
					failed = append(failed, sc.ID)
					mu.Unlock()
					logger.Printf("scenario %s: %v", sc.ID, err)
					continue
				}
				town.Out = io.Discard
				results[i] = combat.RunSingle(sc, town, false)
			}
		}()
	}
	for i := range scenarios {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	done := make([]combat.SimResult, 0, len(results))
	for _, r := range results {
		if r.ID == "" {
			continue
		}
		done = append(done, r)
		fmt.Println(report.ResultLine(p, r))
	}
	summary := report.Summarize(done)
	for _, line := range report.SummaryLines(p, summary) {
		fmt.Println(line)
	}
	out := map[string]any{
		"summary": summary,
		"results": done,
		"failed":  failed,
	}
	b, err := combat.MarshalPretty(out)
	if err != nil {
		logger.Fatalf("encode summary: %v", err)
	}
	if err := os.WriteFile(cfg.Out, b, 0644); err != nil {
		logger.Fatal(err)
	}
	fmt.Printf("Batch %d done -> %s\n", len(done), filepath.Base(cfg.Out))
	if len(failed) > 0 {
		os.Exit(1)
	}
}
