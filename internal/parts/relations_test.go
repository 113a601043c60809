package parts

import (
	"errors"
	"testing"
)

func TestGrievanceRequiresDialogue(t *testing.T) {
	m := makeManager()

	err := m.SetGrievance("p1", []string{"p2"}, nil)
	if !errors.Is(err, ErrEmptyGrievance) {
		t.Fatalf("expected ErrEmptyGrievance, got %v", err)
	}
	if m.HasGrievances("p1") {
		t.Fatal("rejected grievance should not be stored")
	}
}

func TestGrievanceAccumulatesTargets(t *testing.T) {
	m := makeManager()

	if err := m.SetGrievance("p1", []string{"p2"}, []string{"first"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}
	if err := m.SetGrievance("p1", []string{"p3"}, []string{"second"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}

	targets := m.GrievanceTargets("p1")
	if len(targets) != 2 || targets[0] != "p2" || targets[1] != "p3" {
		t.Fatalf("expected sorted [p2 p3], got %v", targets)
	}
	lines := m.GrievanceDialogues("p1")
	if len(lines) != 1 || lines[0] != "second" {
		t.Fatalf("latest dialogue set should win, got %v", lines)
	}
}

func TestRemoveGrievanceEmptyTargetRemovesAll(t *testing.T) {
	m := makeManager()
	if err := m.SetGrievance("p1", []string{"p2", "p3"}, []string{"line"}); err != nil {
		t.Fatalf("set grievance: %v", err)
	}

	m.RemoveGrievance("p1", "")
	if m.HasGrievances("p1") {
		t.Fatal("expected all grievances removed")
	}
}

func TestProtectionDuplicateEdges(t *testing.T) {
	m := makeManager()

	m.AddProtection("p1", "p2")
	m.AddProtection("p1", "p2")
	if got := m.ProtectionCount(); got != 1 {
		t.Fatalf("duplicate edge stored: count %d", got)
	}

	m.RemoveProtection("p1", "p2")
	if m.IsProtecting("p1") {
		t.Fatal("edge should be gone")
	}
	if got := m.ProtectorsOf("p2"); len(got) != 0 {
		t.Fatalf("reverse index stale: %v", got)
	}
}

func TestReleaseProxiesMarksFormerStandIns(t *testing.T) {
	m := makeManager()
	m.AddProxy("p1", "p2")
	m.AddProxy("p1", "p3")

	released := m.ReleaseProxies("p1")
	if len(released) != 2 {
		t.Fatalf("expected 2 released, got %v", released)
	}
	if m.HasProxies("p1") {
		t.Fatal("proxies should be gone")
	}
	for _, id := range []string{"p2", "p3"} {
		p, _ := m.Part(id)
		if !p.WasProxy {
			t.Fatalf("%s should carry the WasProxy flag", id)
		}
	}
}

func TestRelationTrustRespectsFloor(t *testing.T) {
	m := makeManager()
	m.SetRelation(InterPartRelation{FromID: "p1", ToID: "p2", Trust: 0.5, TrustFloor: 0.25})

	m.SetRelationTrust("p1", "p2", 0.1)
	rel, ok := m.Relation("p1", "p2")
	if !ok {
		t.Fatal("relation missing")
	}
	if rel.Trust != 0.25 {
		t.Fatalf("expected floor 0.25, got %v", rel.Trust)
	}

	m.SetRelationTrust("p1", "p2", 1.5)
	if rel.Trust != 1.0 {
		t.Fatalf("expected cap 1.0, got %v", rel.Trust)
	}
}

func TestRelationsSortedByEndpoints(t *testing.T) {
	m := makeManager()
	m.SetRelation(InterPartRelation{FromID: "p3", ToID: "p1"})
	m.SetRelation(InterPartRelation{FromID: "p1", ToID: "p2"})
	m.SetRelation(InterPartRelation{FromID: "p1", ToID: "p3"})

	rels := m.Relations()
	if len(rels) != 3 {
		t.Fatalf("expected 3 relations, got %d", len(rels))
	}
	if rels[0].FromID != "p1" || rels[0].ToID != "p2" {
		t.Fatalf("expected p1,p2 first, got %s,%s", rels[0].FromID, rels[0].ToID)
	}
	if rels[2].FromID != "p3" {
		t.Fatalf("expected p3,p1 last, got %s,%s", rels[2].FromID, rels[2].ToID)
	}
}
