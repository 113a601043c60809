package conference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jpritikin/urbb-web-sub002/internal/parts"
)

func makePopulatedModel() (*Model, *parts.Manager) {
	pm := parts.NewManager()
	pm.RegisterPart("p1", "Critic", parts.PartOptions{Trust: 0.5, NeedAttention: 0.2})
	pm.RegisterPart("p2", "Exile", parts.PartOptions{Trust: 0.3,
		Dialogues: map[string][]string{"be_with": {"I remember"}}})
	pm.RegisterPart("p3", "Firefighter", parts.PartOptions{Trust: 0.4})
	pm.AddProtection("p1", "p2")
	pm.AddProxy("p2", "p3")
	pm.AddAttacker("p2", "p1")
	_ = pm.SetGrievance("p2", []string{"p1"}, []string{"you kept me small"})
	pm.SetRelation(parts.InterPartRelation{FromID: "p1", ToID: "p2", Trust: 0.4, TrustFloor: 0.25, Stance: -1})
	pm.RevealJob("p1")

	m := NewModel()
	m.AddTarget("p1")
	m.SetBlended("p3", BlendSpontaneous, 0.7)
	m.EnqueuePendingBlend("p2", BlendSpontaneous, 2.0)
	m.SetSelfRay("p1")
	m.Summon("p2")
	m.QueueMessage("p2", "you kept me small")
	m.Mode = "session"
	return m, pm
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	m, pm := makePopulatedModel()

	snap := m.Snapshot(pm)
	m2, pm2 := Restore(snap)
	snap2 := m2.Snapshot(pm2)

	if diff := cmp.Diff(snap, snap2); diff != "" {
		t.Fatalf("round trip drifted:\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	m, pm := makePopulatedModel()

	data, err := m.ToJSON(pm)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	m2, pm2, err := FromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if diff := cmp.Diff(m.Snapshot(pm), m2.Snapshot(pm2)); diff != "" {
		t.Fatalf("json round trip drifted:\n%s", diff)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	m, pm := makePopulatedModel()
	snap := m.Snapshot(pm)

	pm.SetTrust("p1", 0.99)
	m.RemoveTarget("p1")

	if snap.PartStates["p1"].Trust != 0.5 {
		t.Fatalf("snapshot shares part state: %v", snap.PartStates["p1"].Trust)
	}
	if len(snap.TargetCloudIDs) != 1 || snap.TargetCloudIDs[0] != "p1" {
		t.Fatalf("snapshot shares target list: %v", snap.TargetCloudIDs)
	}
}

func TestRestorePreservesRelations(t *testing.T) {
	m, pm := makePopulatedModel()
	_, pm2 := Restore(m.Snapshot(pm))

	if !pm2.IsProtecting("p1") {
		t.Fatal("protection lost")
	}
	if !pm2.HasProxies("p2") {
		t.Fatal("proxy lost")
	}
	if !pm2.IsAttacked("p2") {
		t.Fatal("attack lost")
	}
	if !pm2.HasGrievances("p2") {
		t.Fatal("grievance lost")
	}
	rel, ok := pm2.Relation("p1", "p2")
	if !ok || rel.TrustFloor != 0.25 {
		t.Fatalf("inter-part relation lost or mangled: %+v", rel)
	}
	if !pm2.IsFieldRevealed("p1", parts.FieldJob) {
		t.Fatal("biography lost")
	}
}
