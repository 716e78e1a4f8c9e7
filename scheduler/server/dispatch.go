package server

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"github.com/trebuchetdev/trebuchet/protocol"
)

// executorDispatcher delivers control messages to executors. The scheduler
// loop fires dispatches through an async.Runner so a slow executor never
// stalls a step; implementations must be safe for concurrent use.
type executorDispatcher interface {
	// LaunchTask offers one task. A false accept (slots full, duplicate)
	// is a rejection to requeue, not a transport error.
	LaunchTask(addr string, req *protocol.LaunchTaskRequest) (accepted bool, reason string, err error)

	// CancelTask is best effort; unreachable executors are ignored.
	CancelTask(addr string, taskID string) error
}

// grpcDispatcher dials each executor's task service on demand and caches
// the connections. Transient transport errors are retried with bounded
// exponential backoff before they count as a failed attempt.
type grpcDispatcher struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewGrpcDispatcher returns a dispatcher over real executor connections.
func NewGrpcDispatcher() *grpcDispatcher {
	return &grpcDispatcher{conns: map[string]*grpc.ClientConn{}}
}

func (d *grpcDispatcher) client(addr string) (protocol.ExecutorServiceClient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if conn, ok := d.conns[addr]; ok {
		return protocol.NewExecutorServiceClient(conn), nil
	}
	conn, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, errors.Wrapf(err, "dialing executor %s", addr)
	}
	d.conns[addr] = conn
	return protocol.NewExecutorServiceClient(conn), nil
}

func rpcBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	return b
}

func (d *grpcDispatcher) LaunchTask(addr string, req *protocol.LaunchTaskRequest) (bool, string, error) {
	client, err := d.client(addr)
	if err != nil {
		return false, "", err
	}
	var reply *protocol.LaunchTaskReply
	err = backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var rpcErr error
		reply, rpcErr = client.LaunchTask(ctx, req)
		return rpcErr
	}, rpcBackoff())
	if err != nil {
		return false, "", errors.Wrapf(err, "launching task %s on %s", req.GetTaskId(), addr)
	}
	return reply.GetAccepted(), reply.GetReason(), nil
}

func (d *grpcDispatcher) CancelTask(addr string, taskID string) error {
	client, err := d.client(addr)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = client.CancelTask(ctx, &protocol.CancelTaskRequest{TaskId: taskID})
	return err
}

// Close tears down all cached connections.
func (d *grpcDispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for addr, conn := range d.conns {
		conn.Close()
		delete(d.conns, addr)
	}
	return nil
}
