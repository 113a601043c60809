package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

const jsonFixture = `{
	"name": "pair",
	"seed": 11,
	"parts": [
		{"id": "p1", "name": "Critic", "trust": 0.5},
		{"id": "p2", "name": "Exile", "trust": 0.3}
	],
	"relationships": {
		"protections": [{"protectorId": "p1", "protectedId": "p2"}]
	},
	"initialTargets": ["p1"],
	"actions": [{"action": "job", "cloudId": "p1"}],
	"assertions": [
		{"field": "trust", "cloudId": "p1", "op": ">=", "value": 0.5}
	]
}`

const yamlFixture = `name: pair
seed: 11
parts:
  - id: p1
    name: Critic
    trust: 0.5
  - id: p2
    name: Exile
    trust: 0.3
relationships:
  protections:
    - protectorId: p1
      protectedId: p2
initialTargets: [p1]
actions:
  - action: job
    cloudId: p1
assertions:
  - field: trust
    cloudId: p1
    op: ">="
    value: 0.5
`

func checkFixture(t *testing.T, sc *Scenario) {
	t.Helper()
	if sc.Name != "pair" || sc.Seed != 11 {
		t.Fatalf("header mismatch: %q seed %d", sc.Name, sc.Seed)
	}
	if len(sc.Parts) != 2 || sc.Parts[1].ID != "p2" || sc.Parts[1].Trust != 0.3 {
		t.Fatalf("parts mismatch: %+v", sc.Parts)
	}
	if len(sc.Relationships.Protections) != 1 || sc.Relationships.Protections[0].ProtectorID != "p1" {
		t.Fatalf("protections mismatch: %+v", sc.Relationships.Protections)
	}
	if len(sc.Actions) != 1 || sc.Actions[0].Action != "job" {
		t.Fatalf("actions mismatch: %+v", sc.Actions)
	}
	if len(sc.Assertions) != 1 || sc.Assertions[0].Op != ">=" {
		t.Fatalf("assertions mismatch: %+v", sc.Assertions)
	}
}

func TestLoadJSON(t *testing.T) {
	sc, err := LoadJSON([]byte(jsonFixture))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	checkFixture(t, sc)
}

func TestLoadYAML(t *testing.T) {
	sc, err := LoadYAML([]byte(yamlFixture))
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	checkFixture(t, sc)
}

func TestLoadFileDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "pair.json")
	if err := os.WriteFile(jsonPath, []byte(jsonFixture), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	yamlPath := filepath.Join(dir, "pair.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlFixture), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		sc, err := LoadFile(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		checkFixture(t, sc)
	}
}

func TestLoadJSONRejectsGarbage(t *testing.T) {
	if _, err := LoadJSON([]byte("{not json")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
