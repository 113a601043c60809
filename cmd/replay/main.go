package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/replay"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sessions.db (DB mode)")
	sessionID := flag.String("session", "", "session id to replay (DB mode)")
	filePath := flag.String("file", "", "path to recording JSON (file mode)")
	flag.Parse()

	if (*dbPath == "" && *filePath == "") || (*dbPath != "" && *filePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/sessions.db --session <id>")
		fmt.Fprintln(os.Stderr, "       replay --file path/to/recording.json")
		os.Exit(2)
	}

	var exitCode int
	if *filePath != "" {
		exitCode = runFileMode(*filePath)
	} else {
		exitCode = runDBMode(*dbPath, *sessionID)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region modes

func runFileMode(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read recording: %v\n", err)
		return 2
	}
	var rec session.Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		fmt.Fprintf(os.Stderr, "parse recording: %v\n", err)
		return 2
	}
	return verify(rec)
}

func runDBMode(dbPath, sessionID string) int {
	if sessionID == "" {
		fmt.Fprintln(os.Stderr, "DB mode needs --session <id>")
		return 2
	}
	store, err := session.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	rec, err := store.LoadRecording(sessionID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load recording: %v\n", err)
		return 2
	}
	return verify(rec)
}

// #endregion modes

// #region output

func verify(rec session.Recording) int {
	report := replay.ReplaySession(rec, headless.DefaultConfig())

	fmt.Printf("%-6s| %-20s| %-16s| %s\n", "Step", "Action", "Cloud", "Match")
	fmt.Printf("%-6s+%-21s+%-17s+%s\n",
		"------", "---------------------", "-----------------", "------")
	for _, step := range report.Steps {
		match := "OK"
		if !step.Matched {
			match = "DIFF"
		}
		fmt.Printf("%-6d| %-20s| %-16s| %s\n", step.Index, step.Action, step.CloudID, match)
	}

	fmt.Printf("\nSummary: %d steps, %d differences (seed %d)\n",
		len(report.Steps), len(report.Differences), report.SessionSeed)
	for _, d := range report.Differences {
		fmt.Printf("  %s\n", d)
	}

	if !report.Matched() {
		return 1
	}
	return 0
}

// #endregion output
