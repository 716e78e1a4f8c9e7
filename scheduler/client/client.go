// Package client wraps the scheduler's gRPC surface for executors and
// command-line tools. Calls retry transient transport failures with
// bounded exponential backoff.
package client

import (
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

const rpcTimeout = 10 * time.Second

// Client talks to one scheduler instance.
type Client struct {
	conn *grpc.ClientConn
	stub protocol.SchedulerServiceClient
}

// Dial connects to the scheduler at addr.
func Dial(addr string) (*Client, error) {
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, errors.Wrapf(err, "dialing scheduler %s", addr)
	}
	return &Client{conn: conn, stub: protocol.NewSchedulerServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func retryBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}

// SubmitJob submits a plan and returns the assigned job id.
func (c *Client) SubmitJob(plan *domain.PhysicalPlan) (string, error) {
	var jobID string
	err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		reply, err := c.stub.SubmitJob(ctx, &protocol.SubmitJobRequest{Plan: protocol.PlanToWire(plan)})
		if err != nil {
			return err
		}
		jobID = reply.GetJobId()
		return nil
	}, retryBackoff())
	return jobID, err
}

// GetJobStatus returns the job's status, result locations, and error.
func (c *Client) GetJobStatus(jobID string) (*protocol.GetJobStatusReply, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	return c.stub.GetJobStatus(ctx, &protocol.GetJobStatusRequest{JobId: jobID})
}

// CancelJob cancels a job; canceling a finished job succeeds as a no-op.
func (c *Client) CancelJob(jobID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	_, err := c.stub.CancelJob(ctx, &protocol.CancelJobRequest{JobId: jobID})
	return err
}

// RegisterExecutor announces an executor to the scheduler.
func (c *Client) RegisterExecutor(meta *domain.ExecutorMetadata) error {
	return backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		reply, err := c.stub.RegisterExecutor(ctx, &protocol.RegisterExecutorRequest{
			Metadata: &protocol.ExecutorMetadata{Id: meta.ID, Addr: meta.Addr, Slots: meta.Slots},
		})
		if err != nil {
			return err
		}
		if !reply.GetAccepted() {
			return backoff.Permanent(errors.Errorf("registration rejected: %s", reply.GetReason()))
		}
		return nil
	}, retryBackoff())
}

// Heartbeat refreshes liveness. reregister=true means the scheduler no
// longer knows this executor.
func (c *Client) Heartbeat(executorID string) (reregister bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	reply, err := c.stub.Heartbeat(ctx, &protocol.HeartbeatRequest{ExecutorId: executorID})
	if err != nil {
		return false, err
	}
	return reply.GetReregister(), nil
}

// DeregisterExecutor announces a graceful shutdown.
func (c *Client) DeregisterExecutor(executorID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
	defer cancel()
	_, err := c.stub.DeregisterExecutor(ctx, &protocol.DeregisterExecutorRequest{ExecutorId: executorID})
	return err
}

// ReportTaskStatus reports a task transition, retrying until the scheduler
// acknowledges. Reports are idempotent server-side so retransmits are safe.
func (c *Client) ReportTaskStatus(req *protocol.ReportTaskStatusRequest) error {
	return backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
		defer cancel()
		_, err := c.stub.ReportTaskStatus(ctx, req)
		return err
	}, retryBackoff())
}
