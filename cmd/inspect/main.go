package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to sessions.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/sessions.db [--last N] [--session id] [--json]")
		os.Exit(2)
	}

	store, err := session.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *sessionID != "" {
		if err := runDetailMode(store, *sessionID, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode

func runListMode(store *session.Store, last int, jsonOut bool) error {
	infos, err := store.ListSessions(last)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	if jsonOut {
		return printJSON(infos)
	}

	fmt.Printf("%-10s  %-12s  %12s  %7s  %s\n",
		"Session", "Version", "Seed", "Steps", "Created")
	fmt.Printf("%-10s+-%-12s+-%12s+-%7s+-%s\n",
		"----------", "------------", "------------", "-------", "--------------------")
	for _, info := range infos {
		fmt.Printf("%-10s  %-12s  %12d  %7d  %s\n",
			shortID(info.ID), info.CodeVersion, info.ModelSeed, info.ActionCount,
			info.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type stepRow struct {
	Seq      int                `json:"seq"`
	Action   string             `json:"action"`
	CloudID  string             `json:"cloudId,omitempty"`
	Field    string             `json:"field,omitempty"`
	RNGDraws int                `json:"rngDraws"`
	Trust    map[string]float64 `json:"trust"`
}

type detailOutput struct {
	SessionID string    `json:"sessionId"`
	Version   string    `json:"version"`
	Platform  string    `json:"platform"`
	Seed      int64     `json:"seed"`
	Steps     []stepRow `json:"steps"`
	Victory   bool      `json:"victory"`
}

func runDetailMode(store *session.Store, sessionID string, jsonOut bool) error {
	rec, err := store.LoadRecording(sessionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		SessionID: sessionID,
		Version:   rec.CodeVersion,
		Platform:  rec.Platform,
		Seed:      rec.ModelSeed,
	}
	for i, a := range rec.Actions {
		trust := make(map[string]float64, len(a.ModelState.PartStates))
		for id, p := range a.ModelState.PartStates {
			trust[id] = p.Trust
		}
		out.Steps = append(out.Steps, stepRow{
			Seq:      i,
			Action:   a.Action,
			CloudID:  a.CloudID,
			Field:    a.Field,
			RNGDraws: a.RNGAfter.Model - a.RNGBefore.Model,
			Trust:    trust,
		})
	}
	if rec.FinalModel != nil {
		out.Victory = rec.FinalModel.VictoryAchieved
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Session:  %s\n", out.SessionID)
	fmt.Printf("Version:  %s\n", out.Version)
	fmt.Printf("Platform: %s\n", out.Platform)
	fmt.Printf("Seed:     %d\n", out.Seed)
	fmt.Printf("Victory:  %v\n\n", out.Victory)

	fmt.Printf("%-5s  %-20s  %-16s  %-14s  %5s  %s\n",
		"Seq", "Action", "Cloud", "Field", "Draws", "Trust")
	for _, s := range out.Steps {
		fmt.Printf("%-5d  %-20s  %-16s  %-14s  %5d  %s\n",
			s.Seq, s.Action, s.CloudID, s.Field, s.RNGDraws, trustSummary(s.Trust))
	}
	return nil
}

func trustSummary(trust map[string]float64) string {
	ids := make([]string, 0, len(trust))
	for id := range trust {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%.2f", id, trust[id])
	}
	return out
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
