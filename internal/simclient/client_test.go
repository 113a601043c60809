package simclient

import (
	"context"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/jpritikin/urbb-web-sub002/gen/simpb"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/simserver"
)

// localService adapts a Server to the client interface, bypassing the
// network layer.
type localService struct {
	srv *simserver.Server
}

func (l localService) CreateSession(ctx context.Context, req *pb.CreateSessionRequest, _ ...grpc.CallOption) (*pb.CreateSessionResponse, error) {
	return l.srv.CreateSession(ctx, req)
}

func (l localService) ExecuteAction(ctx context.Context, req *pb.ExecuteActionRequest, _ ...grpc.CallOption) (*pb.ExecuteActionResponse, error) {
	return l.srv.ExecuteAction(ctx, req)
}

func (l localService) ValidActions(ctx context.Context, req *pb.ValidActionsRequest, _ ...grpc.CallOption) (*pb.ValidActionsResponse, error) {
	return l.srv.ValidActions(ctx, req)
}

func (l localService) AdvanceIntervals(ctx context.Context, req *pb.AdvanceIntervalsRequest, _ ...grpc.CallOption) (*pb.AdvanceIntervalsResponse, error) {
	return l.srv.AdvanceIntervals(ctx, req)
}

func (l localService) Snapshot(ctx context.Context, req *pb.SnapshotRequest, _ ...grpc.CallOption) (*pb.SnapshotResponse, error) {
	return l.srv.Snapshot(ctx, req)
}

func (l localService) CloseSession(ctx context.Context, req *pb.CloseSessionRequest, _ ...grpc.CallOption) (*pb.CloseSessionResponse, error) {
	return l.srv.CloseSession(ctx, req)
}

const scenarioJSON = `{
	"name": "pair",
	"seed": 13,
	"parts": [
		{"id": "p1", "name": "Critic", "trust": 0.5},
		{"id": "p2", "name": "Exile", "trust": 0.3}
	],
	"initialTargets": ["p1"]
}`

func makeClient(t *testing.T) *Client {
	t.Helper()
	srv := simserver.New(headless.DefaultConfig(), nil)
	return NewWithService(localService{srv: srv})
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	c := makeClient(t)

	id, initial, err := c.CreateSession(ctx, 0, scenarioJSON)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" || initial == "" {
		t.Fatalf("incomplete session: %q %q", id, initial)
	}

	res, err := c.ExecuteAction(ctx, id, "select_a_target", "p2", "", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !res.Success || res.ModelJSON == "" {
		t.Fatalf("unexpected result: %+v", res)
	}

	actions, err := c.ValidActions(ctx, id)
	if err != nil {
		t.Fatalf("valid actions: %v", err)
	}
	if len(actions) == 0 {
		t.Fatal("expected valid actions")
	}
	for _, a := range actions {
		if a.Action == "select_a_target" && a.CloudID == "p2" {
			t.Fatal("p2 is already targeted")
		}
	}

	state, err := c.AdvanceIntervals(ctx, id, 2)
	if err != nil || state == "" {
		t.Fatalf("advance: %v %q", err, state)
	}

	snap, err := c.Snapshot(ctx, id)
	if err != nil || snap == "" {
		t.Fatalf("snapshot: %v", err)
	}

	if err := c.CloseSession(ctx, id); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := c.Snapshot(ctx, id); err == nil {
		t.Fatal("closed session should be gone")
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	c := makeClient(t)

	if _, err := c.ExecuteAction(ctx, "ghost", "job", "p1", "", ""); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
	if err := c.CloseSession(ctx, "ghost"); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}

func TestCloseWithoutConnection(t *testing.T) {
	c := makeClient(t)
	if err := c.Close(); err != nil {
		t.Fatalf("nil connection close should be a no-op, got %v", err)
	}
}
