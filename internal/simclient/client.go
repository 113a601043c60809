// Package simclient wraps the gRPC connection to a simulation daemon.
package simclient

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/jpritikin/urbb-web-sub002/gen/simpb"
)

// #region types
// ActionResult holds the response from an ExecuteAction RPC call.
type ActionResult struct {
	Success       bool
	Message       string
	StateChanges  []string
	ThoughtBubble string
	TrustGain     float64
	ModelJSON     string
}

// ValidAction is one legal action tuple reported by the daemon.
type ValidAction struct {
	Action        string
	CloudID       string
	TargetCloudID string
	Field         string
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the simulation daemon.
type Client struct {
	conn   *grpc.ClientConn
	client pb.SimServiceClient
}

// #endregion client-struct

// #region constructor
// New connects to the simulation daemon.
func New(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewSimServiceClient(conn),
	}, nil
}

// NewWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewWithService(svc pb.SimServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region create-session
// CreateSession starts a session on the daemon, optionally from a scenario
// fixture, and returns the session id plus the initial model JSON.
func (c *Client) CreateSession(ctx context.Context, seed int64, scenarioJSON string) (string, string, error) {
	resp, err := c.client.CreateSession(ctx, &pb.CreateSessionRequest{
		Seed:         seed,
		ScenarioJson: scenarioJSON,
	})
	if err != nil {
		return "", "", fmt.Errorf("create session rpc: %w", err)
	}
	return resp.SessionId, resp.ModelJson, nil
}

// #endregion create-session

// #region execute-action
// ExecuteAction runs one action inside a daemon session.
func (c *Client) ExecuteAction(ctx context.Context, sessionID, action, cloudID, targetCloudID, field string) (ActionResult, error) {
	resp, err := c.client.ExecuteAction(ctx, &pb.ExecuteActionRequest{
		SessionId:     sessionID,
		Action:        action,
		CloudId:       cloudID,
		TargetCloudId: targetCloudID,
		Field:         field,
	})
	if err != nil {
		return ActionResult{}, fmt.Errorf("execute action rpc: %w", err)
	}
	return ActionResult{
		Success:       resp.Success,
		Message:       resp.Message,
		StateChanges:  resp.StateChanges,
		ThoughtBubble: resp.ThoughtBubble,
		TrustGain:     resp.TrustGain,
		ModelJSON:     resp.ModelJson,
	}, nil
}

// #endregion execute-action

// #region valid-actions
// ValidActions lists the currently legal action tuples of a daemon session.
func (c *Client) ValidActions(ctx context.Context, sessionID string) ([]ValidAction, error) {
	resp, err := c.client.ValidActions(ctx, &pb.ValidActionsRequest{SessionId: sessionID})
	if err != nil {
		return nil, fmt.Errorf("valid actions rpc: %w", err)
	}
	out := make([]ValidAction, len(resp.Actions))
	for i, a := range resp.Actions {
		out[i] = ValidAction{
			Action:        a.Action,
			CloudID:       a.CloudId,
			TargetCloudID: a.TargetCloudId,
			Field:         a.Field,
		}
	}
	return out, nil
}

// #endregion valid-actions

// #region advance
// AdvanceIntervals steps simulated time inside a daemon session.
func (c *Client) AdvanceIntervals(ctx context.Context, sessionID string, count int) (string, error) {
	resp, err := c.client.AdvanceIntervals(ctx, &pb.AdvanceIntervalsRequest{
		SessionId: sessionID,
		Count:     int32(count),
	})
	if err != nil {
		return "", fmt.Errorf("advance intervals rpc: %w", err)
	}
	return resp.ModelJson, nil
}

// #endregion advance

// #region snapshot
// Snapshot fetches the full serialized model of a daemon session.
func (c *Client) Snapshot(ctx context.Context, sessionID string) (string, error) {
	resp, err := c.client.Snapshot(ctx, &pb.SnapshotRequest{SessionId: sessionID})
	if err != nil {
		return "", fmt.Errorf("snapshot rpc: %w", err)
	}
	return resp.ModelJson, nil
}

// #endregion snapshot

// #region close-session
// CloseSession finalizes a daemon session, persisting its recording when
// the daemon has a store attached.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	_, err := c.client.CloseSession(ctx, &pb.CloseSessionRequest{SessionId: sessionID})
	if err != nil {
		return fmt.Errorf("close session rpc: %w", err)
	}
	return nil
}

// #endregion close-session
