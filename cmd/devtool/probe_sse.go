package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// runProbeSSE attaches to the live event stream of a running API and
// prints frames as they arrive. With no SESSION_TOKEN it registers a
// throwaway probe account first.
func runProbeSSE(args []string) error {
	fs := flag.NewFlagSet("probe-sse", flag.ContinueOnError)
	types := fs.String("types", "", "Comma-separated event type filter")
	count := fs.Int("count", 0, "Stop after this many events (0 = run until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	token := os.Getenv("SESSION_TOKEN")
	if token == "" {
		PrintInfo("No SESSION_TOKEN set, registering a probe account...")
		var err error
		token, err = registerProbeAccount(apiURL)
		if err != nil {
			return fmt.Errorf("failed to register probe account: %w", err)
		}
	}

	streamURL := apiURL + "/api/v1/events"
	if *types != "" {
		streamURL += "?types=" + *types
	}

	req, err := http.NewRequest("GET", streamURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "text/event-stream")

	// No timeout: the stream stays open until interrupted
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", streamURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream refused: %s", resp.Status)
	}

	PrintHeader("Connected to event stream")
	PrintInfo("URL: %s", streamURL)

	seen := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var frame struct {
			Type      string          `json:"type"`
			Timestamp int64           `json:"timestamp"`
			Payload   json.RawMessage `json:"payload"`
		}
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame); err != nil {
			PrintWarning("Unparseable frame: %s", line)
			continue
		}
		if frame.Type == "keepalive" {
			continue
		}

		ts := time.Unix(frame.Timestamp, 0).Format("15:04:05")
		fmt.Printf("[%s] %s %s\n", ts, frame.Type, string(frame.Payload))

		if frame.Type == "connected" {
			continue
		}
		seen++
		if *count > 0 && seen >= *count {
			PrintSuccess("Received %d events", seen)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream closed: %w", err)
	}
	return nil
}

// registerProbeAccount creates a throwaway player and returns its session
// token
func registerProbeAccount(apiURL string) (string, error) {
	username := fmt.Sprintf("probe_%d", time.Now().UnixNano()%1_000_000_000)
	body, err := json.Marshal(map[string]string{"username": username})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(apiURL+"/api/v1/players/register", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("registration returned %s", resp.Status)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("registration returned no token")
	}

	PrintSuccess("Probe account %s registered", username)
	return result.Token, nil
}
