// Package main provides a performance benchmarking tool for the storesense CLI.
// It measures assessment throughput across synthetic store population sizes and
// worker counts, running each configuration multiple times, treating the first
// run as cold and averaging the rest as warm, generating CSV output for
// performance analysis and documentation.
//
// Prerequisites:
// - storesense binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-csv]
//
//	output-csv: File the benchmark results are written to (default benchmark_results.csv)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// BenchmarkResult holds the result of one benchmark configuration.
type BenchmarkResult struct {
	Stores   int
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout    time.Duration
	Runs       int
	StoreSizes []int
	Workers    []int
}

func main() {
	outputPath := "benchmark_results.csv"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	config := BenchmarkConfig{
		Timeout:    2 * time.Minute,
		Runs:       4,
		StoreSizes: []int{100, 1000, 10000},
		Workers:    []int{1, 4, 8},
	}

	if _, err := exec.LookPath("storesense"); err != nil {
		fmt.Println("storesense binary not found in PATH")
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results, outputPath); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// runBenchmarks executes all configured population and worker combinations.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	for _, stores := range config.StoreSizes {
		for _, workers := range config.Workers {
			fmt.Printf("Benchmarking %d stores with %d workers...\n", stores, workers)

			var cold time.Duration
			var warmTotal time.Duration
			warmRuns := 0
			failed := false

			for run := 0; run < config.Runs; run++ {
				elapsed, err := timeDemoRun(stores, workers, config.Timeout)
				if err != nil {
					fmt.Printf("  run %d failed: %v\n", run+1, err)
					failed = true
					break
				}
				if run == 0 {
					cold = elapsed
					continue
				}
				warmTotal += elapsed
				warmRuns++
			}
			if failed {
				continue
			}

			warm := time.Duration(0)
			if warmRuns > 0 {
				warm = warmTotal / time.Duration(warmRuns)
			}
			results = append(results, BenchmarkResult{
				Stores:   stores,
				Workers:  workers,
				ColdTime: cold.Round(time.Millisecond).String(),
				WarmTime: warm.Round(time.Millisecond).String(),
			})
		}
	}
	return results
}

// timeDemoRun runs one seeded demo assessment and returns its wall time.
func timeDemoRun(stores, workers int, timeout time.Duration) (time.Duration, error) {
	cmd := exec.Command("storesense", "demo",
		"--demo-stores", fmt.Sprint(stores),
		"--workers", fmt.Sprint(workers),
		"--snapshot-backend", "none",
		"--output", "json",
		"--output-file", os.DevNull,
	)

	start := time.Now()
	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return 0, fmt.Errorf("timed out after %v", timeout)
	}
}

// saveResults writes the benchmark results to a CSV file.
func saveResults(results []BenchmarkResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"stores", "workers", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{fmt.Sprint(r.Stores), fmt.Sprint(r.Workers), r.ColdTime, r.WarmTime}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a human-readable overview of the results.
func printSummary(results []BenchmarkResult) {
	fmt.Println("\nBenchmark summary:")
	for _, r := range results {
		fmt.Printf("  %6d stores / %d workers: cold %s, warm %s\n",
			r.Stores, r.Workers, r.ColdTime, r.WarmTime)
	}
}
