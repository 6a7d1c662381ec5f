package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
)

func main() {
	symbol := flag.String("symbol", "", "trading symbol, e.g. BTC")
	bias := flag.String("bias", "", "bias label, e.g. \"STRONG BUY\" or \"FLIP\"")
	score := flag.Int("score", 0, "bias score")
	details := flag.String("details", "", "optional extra lines for the message")
	test := flag.Bool("test", false, "send the fixed test notification instead")
	flag.Parse()

	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	apiKey := os.Getenv("API_KEY")

	path := "/api/alerts/bias"
	var body []byte
	if *test {
		path = "/api/alerts/test"
	} else {
		if *symbol == "" || *bias == "" {
			fmt.Fprintln(os.Stderr, "usage: -symbol BTC -bias \"STRONG BUY\" -score 80 [-details ...] (or -test)")
			os.Exit(2)
		}
		body, _ = json.Marshal(map[string]any{
			"symbol":  *symbol,
			"bias":    *bias,
			"score":   *score,
			"details": *details,
		})
	}

	req, err := http.NewRequest(http.MethodPost, api+path, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad request:", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error contacting API:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fmt.Fprintln(os.Stderr, "API returned status:", resp.Status)
		os.Exit(1)
	}

	var out struct {
		Delivered bool `json:"delivered"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	if out.Delivered {
		fmt.Println("Delivered.")
	} else {
		fmt.Println("Not delivered (failed or suppressed as duplicate — check the API logs).")
	}
}
