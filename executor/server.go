package executor

import (
	"net"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"

	"github.com/trebuchetdev/trebuchet/protocol"
)

// Server exposes the executor's task service to the scheduler.
type Server struct {
	executor *Executor
	grpc     *grpc.Server
}

func NewServer(e *Executor) *Server {
	s := &Server{executor: e, grpc: grpc.NewServer()}
	protocol.RegisterExecutorServiceServer(s.grpc, s)
	return s
}

// Serve blocks serving on l.
func (s *Server) Serve(l net.Listener) error {
	log.WithFields(log.Fields{"addr": l.Addr().String()}).Info("Executor task service listening")
	return s.grpc.Serve(l)
}

func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

func (s *Server) LaunchTask(ctx context.Context, req *protocol.LaunchTaskRequest) (*protocol.LaunchTaskReply, error) {
	accepted, reason := s.executor.LaunchTask(req)
	return &protocol.LaunchTaskReply{Accepted: accepted, Reason: reason}, nil
}

func (s *Server) CancelTask(ctx context.Context, req *protocol.CancelTaskRequest) (*protocol.CancelTaskReply, error) {
	s.executor.CancelTask(req.GetTaskId())
	return &protocol.CancelTaskReply{}, nil
}
