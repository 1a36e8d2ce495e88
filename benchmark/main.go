package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"
)

var (
	backendURL = flag.String("url", "http://localhost:8080", "slangbot server")
	rounds     = flag.Int("rounds", 1, "times to repeat every case")

	terms = []string{"rizz", "no cap", "delulu", "bussin", "touch grass", "it's giving"}
	seeds = []string{
		"the feeling when your code works on the first try",
		"pretending to be busy in a video call",
		"eating snacks without noticing",
	}
	tones = []string{"Simple & Clear", "Sassy & Fun", "Scholarly"}
)

// The server models a single session, so cases run one after another.
func main() {
	flag.Parse()
	ctx := context.Background()

	var results []BenchResult
	for round := 0; round < *rounds; round++ {
		for i, term := range terms {
			req := ExplainRequest{
				Input: term,
				TuningOptions: &TuningOptions{
					Tone:       tones[i%len(tones)],
					Format:     "Auto",
					Verbosity:  5,
					Complexity: 5,
					Persona:    "A Confused Parent",
					Language:   "🇬🇧 English",
				},
			}
			results = append(results, run(ctx, "/explain", term, req))
		}
		for _, seed := range seeds {
			results = append(results, run(ctx, "/generate", seed, GenerateRequest{SeedConcept: seed}))
		}
	}

	printMarkdown(results)
}

func run[T any](ctx context.Context, endpoint, name string, req T) BenchResult {
	start := time.Now()
	n, err := post(ctx, endpoint, req)
	res := BenchResult{
		Endpoint: endpoint,
		Case:     name,
		Duration: time.Since(start),
		Bytes:    n,
		Err:      err,
	}
	if err != nil {
		log.Printf("ERR %s %q: %v", endpoint, name, err)
	} else {
		log.Printf("OK %s %q %v", endpoint, name, res.Duration.Round(time.Millisecond))
	}
	return res
}

func post[T any](ctx context.Context, endpoint string, req T) (int, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(*backendURL, "/")+endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	if resp.StatusCode != http.StatusOK {
		var e ErrorResponse
		if json.Unmarshal(b, &e) == nil && e.Code != "" {
			return len(b), fmt.Errorf("%d %s: %s", resp.StatusCode, e.Code, e.Message)
		}
		return len(b), fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return len(b), nil
}

func aggregate(results []BenchResult) map[string]Agg {
	m := map[string]Agg{}
	for _, r := range results {
		a := m[r.Endpoint]
		if r.Err != nil {
			a.Failed++
			m[r.Endpoint] = a
			continue
		}
		a.Count++
		a.TotalBytes += int64(r.Bytes)
		a.Total += r.Duration
		m[r.Endpoint] = a
	}
	return m
}

func printMarkdown(results []BenchResult) {
	fmt.Print("\n## Benchmark Results\n\n")
	fmt.Println("| Endpoint | Requests | Failed | Avg Time | Total Time | Avg Response |")
	fmt.Println("|----------|----------|--------|----------|------------|--------------|")

	agg := aggregate(results)
	endpoints := make([]string, 0, len(agg))
	for endpoint := range agg {
		endpoints = append(endpoints, endpoint)
	}
	sort.Strings(endpoints)

	for _, endpoint := range endpoints {
		a := agg[endpoint]
		if a.Count == 0 {
			fmt.Printf("| %s | 0 | %d | - | - | - |\n", endpoint, a.Failed)
			continue
		}
		avg := a.Total / time.Duration(a.Count)
		fmt.Printf("| %s | %d | %d | %v | %v | %s |\n",
			endpoint,
			a.Count,
			a.Failed,
			avg.Round(time.Millisecond),
			a.Total.Round(time.Millisecond),
			humanBytes(a.TotalBytes/int64(a.Count)),
		)
	}
}

func humanBytes(size int64) string {
	const KB = 1024
	if size >= KB {
		return fmt.Sprintf("%.2f KB", float64(size)/KB)
	}
	return fmt.Sprintf("%d B", size)
}
