package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// Expected results below are derived from these values.
const (
	totalEvents = 20000
	errorEvery  = 4 // every 4th event is a 5xx
)

var regions = []string{"EU", "US", "APAC", "LATAM"}

// ### End - fixed configs

type wireEvent struct {
	ID         int64  `json:"id"`
	Timestamp  string `json:"timestamp"`
	LatencyMs  int64  `json:"latency_ms"`
	StatusCode int    `json:"status_code"`
	Region     string `json:"region"`
}

type batchResult struct {
	Index     int    `json:"index"`
	ErrorCode string `json:"errorCode"`
}

type batchResponse struct {
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Results  []batchResult `json:"results"`
}

type kpiResponse struct {
	TotalRequests    int64   `json:"totalRequests"`
	ErrorCount       int64   `json:"errorCount"`
	ErrorRatePercent float64 `json:"errorRatePercent"`
}

// main runs the e2e scenario: 001_live_batch_ingest
//
// Sends totalEvents events stamped with the current time through POST /events/batch from
// several workers, resending a share of the batches to exercise duplicate-id rejection,
// then reads GET /kpis.
//
// The server must be started fresh (or POST /reset sent first) with allowed_regions
// including LATAM or empty, and a bucket of at least one minute. A batch that straddles a
// window boundary may see late-event rejections (ING_1002); those are reported and
// subtracted from the expected totals.
//
// Expected results:
//   - Every resent item is rejected, as ING_1001 or as ING_1002 once its window closed
//   - accepted + late == totalEvents
//   - GET /kpis totalRequests == accepted
func main() {
	baseURL := "http://localhost:8080"
	itemsPerBatch := 50
	parallel := 4
	resendEvery := 10 // resend every 10th batch once
	resetFirst := true

	if totalEvents%itemsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: totalEvents (%d) must be divisible by itemsPerBatch (%d)\n", totalEvents, itemsPerBatch)
		os.Exit(1)
	}
	batchCount := totalEvents / itemsPerBatch

	fmt.Println("Starting e2e scenario: 001_live_batch_ingest")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	if resetFirst {
		if err := post(baseURL+"/reset", nil, nil); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: reset failed: %v\n", err)
			os.Exit(1)
		}
	}

	var (
		wg         sync.WaitGroup
		slots      = make(chan struct{}, parallel)
		sentOnce   = make([][]byte, batchCount)
		accepted   int64
		duplicates int64
		late       int64
		resendLate int64
		other      int64
		failures   int64
	)

	send := func(body []byte, resend bool) {
		var resp batchResponse
		if err := post(baseURL+"/events/batch", body, &resp); err != nil {
			atomic.AddInt64(&failures, 1)
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			return
		}
		atomic.AddInt64(&accepted, int64(resp.Accepted))
		for _, r := range resp.Results {
			switch r.ErrorCode {
			case "":
			case "ING_1001":
				atomic.AddInt64(&duplicates, 1)
			case "ING_1002":
				if resend {
					atomic.AddInt64(&resendLate, 1)
				} else {
					atomic.AddInt64(&late, 1)
				}
			default:
				atomic.AddInt64(&other, 1)
			}
		}
	}

	for b := 0; b < batchCount; b++ {
		body, err := json.Marshal(generateBatch(b, itemsPerBatch))
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
		sentOnce[b] = body

		wg.Add(1)
		slots <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-slots }()
			send(body, false)
		}()
	}
	wg.Wait()

	resent := 0
	for b := 0; b < batchCount; b += resendEvery {
		send(sentOnce[b], true)
		resent++
	}

	var kpis kpiResponse
	if err := get(baseURL+"/kpis", &kpis); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: kpis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Accepted: %d\n", accepted)
	fmt.Printf("Rejected as duplicate: %d\n", duplicates)
	fmt.Printf("Rejected as late: %d\n", late)
	fmt.Printf("Rejected otherwise: %d\n", other)
	fmt.Printf("Failed requests: %d\n", failures)
	fmt.Printf("KPI totalRequests: %d, errorCount: %d, errorRatePercent: %.2f\n",
		kpis.TotalRequests, kpis.ErrorCount, kpis.ErrorRatePercent)

	var problems []string
	if failures > 0 || other > 0 {
		problems = append(problems, "unexpected request failures or rejection codes")
	}
	if accepted+late != totalEvents {
		problems = append(problems, fmt.Sprintf("accepted+late = %d, want %d", accepted+late, totalEvents))
	}
	if kpis.TotalRequests != accepted {
		problems = append(problems, fmt.Sprintf("kpis totalRequests = %d, want %d", kpis.TotalRequests, accepted))
	}
	if duplicates+resendLate != int64(resent*itemsPerBatch) {
		problems = append(problems, fmt.Sprintf("resent items rejected = %d, want %d", duplicates+resendLate, resent*itemsPerBatch))
	}
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", p)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func generateBatch(batchIndex, size int) []wireEvent {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out := make([]wireEvent, 0, size)
	for i := 0; i < size; i++ {
		id := int64(batchIndex*size + i + 1)
		status := 200
		if id%errorEvery == 0 {
			status = 503
		}
		out = append(out, wireEvent{
			ID:         id,
			Timestamp:  now,
			LatencyMs:  20 + (id*37)%480,
			StatusCode: status,
			Region:     regions[id%int64(len(regions))],
		})
	}
	return out
}

var client = &http.Client{Timeout: 10 * time.Second}

func post(url string, body []byte, out any) error {
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("POST %s: %w", url, err)
	}
	return decode(resp, out)
}

func get(url string, out any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	return decode(resp, out)
}

func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
