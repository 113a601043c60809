// Package simserver exposes headless simulation sessions over gRPC.
package simserver

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/jpritikin/urbb-web-sub002/gen/simpb"
	"github.com/jpritikin/urbb-web-sub002/internal/controller"
	"github.com/jpritikin/urbb-web-sub002/internal/headless"
	"github.com/jpritikin/urbb-web-sub002/internal/logging"
	"github.com/jpritikin/urbb-web-sub002/internal/scenario"
	"github.com/jpritikin/urbb-web-sub002/internal/session"
)

// Version identifies the engine build stamped into recordings. Overridden
// at link time via -ldflags.
var Version = "dev"

// #region server

// liveSession is one simulator plus its bookkeeping. The mutex serializes
// all access: a simulator is single-threaded by construction, concurrency
// exists only between sessions.
type liveSession struct {
	mu       sync.Mutex
	sim      *headless.Simulator
	recorder *session.Recorder
	seq      int
}

// Server implements pb.SimServiceServer over a session table.
type Server struct {
	pb.UnimplementedSimServiceServer

	config headless.Config
	store  *session.Store // optional; nil disables persistence

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// New creates a Server. A nil store disables recording persistence and the
// action audit log.
func New(config headless.Config, store *session.Store) *Server {
	return &Server{
		config:   config,
		store:    store,
		sessions: make(map[string]*liveSession),
	}
}

func (s *Server) session(id string) (*liveSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ls, ok := s.sessions[id]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown session %s", id)
	}
	return ls, nil
}

// #endregion server

// #region rpc

// CreateSession starts a new simulator, empty or from a scenario fixture.
func (s *Server) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.CreateSessionResponse, error) {
	var sim *headless.Simulator
	if req.GetScenarioJson() != "" {
		sc, err := scenario.LoadJSON([]byte(req.GetScenarioJson()))
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "scenario: %v", err)
		}
		sim, err = headless.FromScenario(sc, req.GetSeed(), s.config)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "scenario: %v", err)
		}
	} else {
		sim = headless.New(req.GetSeed(), s.config)
	}

	id := uuid.New().String()
	ls := &liveSession{
		sim:      sim,
		recorder: session.NewRecorder(sim, Version),
	}
	s.mu.Lock()
	s.sessions[id] = ls
	s.mu.Unlock()

	data, err := sim.SnapshotJSON()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot: %v", err)
	}
	log.Printf("[SESSION] created %s seed=%d", id, sim.RNG.Seed())
	return &pb.CreateSessionResponse{SessionId: id, ModelJson: string(data)}, nil
}

// ExecuteAction runs one therapist action inside a session.
func (s *Server) ExecuteAction(ctx context.Context, req *pb.ExecuteActionRequest) (*pb.ExecuteActionResponse, error) {
	ls, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	res := ls.recorder.ExecuteAction(controller.Action(req.GetAction()), req.GetCloudId(), controller.Options{
		TargetCloudID: req.GetTargetCloudId(),
		Field:         req.GetField(),
	})
	ls.seq++
	s.audit(req.GetSessionId(), ls, req, res)

	data, err := ls.sim.SnapshotJSON()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot: %v", err)
	}
	resp := &pb.ExecuteActionResponse{
		Success:      res.Success,
		Message:      res.Message,
		StateChanges: res.StateChanges,
		TrustGain:    res.TrustGain,
		ModelJson:    string(data),
	}
	if res.UIFeedback != nil {
		resp.ThoughtBubble = res.UIFeedback.ThoughtBubble
	}
	return resp, nil
}

// ValidActions enumerates the currently legal action tuples of a session.
func (s *Server) ValidActions(ctx context.Context, req *pb.ValidActionsRequest) (*pb.ValidActionsResponse, error) {
	ls, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	tuples := ls.sim.Controller.ValidActions()
	out := make([]*pb.ValidAction, len(tuples))
	for i, t := range tuples {
		out[i] = &pb.ValidAction{
			Action:        string(t.Action),
			CloudId:       t.CloudID,
			TargetCloudId: t.TargetCloudID,
			Field:         t.Field,
		}
	}
	return &pb.ValidActionsResponse{Actions: out}, nil
}

// AdvanceIntervals steps simulated time inside a session.
func (s *Server) AdvanceIntervals(ctx context.Context, req *pb.AdvanceIntervalsRequest) (*pb.AdvanceIntervalsResponse, error) {
	if req.GetCount() <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "count must be positive, got %d", req.GetCount())
	}
	ls, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.recorder.AdvanceIntervals(int(req.GetCount()))
	ls.seq++

	data, err := ls.sim.SnapshotJSON()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot: %v", err)
	}
	return &pb.AdvanceIntervalsResponse{ModelJson: string(data)}, nil
}

// Snapshot returns the full serialized model of a session.
func (s *Server) Snapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	ls, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	data, err := ls.sim.SnapshotJSON()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "snapshot: %v", err)
	}
	return &pb.SnapshotResponse{ModelJson: string(data)}, nil
}

// CloseSession finalizes a session, persisting the recording when a store is
// attached.
func (s *Server) CloseSession(ctx context.Context, req *pb.CloseSessionRequest) (*pb.CloseSessionResponse, error) {
	ls, err := s.session(req.GetSessionId())
	if err != nil {
		return nil, err
	}

	ls.mu.Lock()
	rec := ls.recorder.Finish()
	ls.mu.Unlock()

	s.mu.Lock()
	delete(s.sessions, req.GetSessionId())
	s.mu.Unlock()

	if s.store != nil {
		id, err := s.store.SaveRecording(rec)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "save recording: %v", err)
		}
		log.Printf("[SESSION] closed %s, recording saved as %s (%d steps)", req.GetSessionId(), id, len(rec.Actions))
	} else {
		log.Printf("[SESSION] closed %s (%d steps, not persisted)", req.GetSessionId(), len(rec.Actions))
	}
	return &pb.CloseSessionResponse{Closed: true}, nil
}

// #endregion rpc

// #region audit

func (s *Server) audit(sessionID string, ls *liveSession, req *pb.ExecuteActionRequest, res controller.Result) {
	if s.store == nil {
		return
	}
	err := logging.LogAction(s.store.DB(), logging.ActionEntry{
		SessionID:     sessionID,
		Seq:           ls.seq,
		Action:        req.GetAction(),
		CloudID:       req.GetCloudId(),
		TargetCloudID: req.GetTargetCloudId(),
		Field:         req.GetField(),
		Success:       res.Success,
		Message:       res.Message,
		RNGCalls:      ls.sim.RNG.CallCount(),
	})
	if err != nil {
		log.Printf("[AUDIT] %v", err)
	}
}

// #endregion audit
