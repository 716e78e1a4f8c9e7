// Package api exposes the scheduler over gRPC. It is a thin translation
// layer: wire messages in, StatefulScheduler calls, wire messages out.
package api

import (
	"net"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/server"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// Server serves the SchedulerService.
type Server struct {
	scheduler *server.StatefulScheduler
	grpc      *grpc.Server
}

// NewServer wires the scheduler behind a gRPC server; call Serve to start.
func NewServer(scheduler *server.StatefulScheduler) *Server {
	s := &Server{scheduler: scheduler, grpc: grpc.NewServer()}
	protocol.RegisterSchedulerServiceServer(s.grpc, s)
	return s
}

// Serve blocks serving on l.
func (s *Server) Serve(l net.Listener) error {
	log.WithFields(log.Fields{"addr": l.Addr().String()}).Info("Scheduler API listening")
	return s.grpc.Serve(l)
}

// Stop stops the gRPC server.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

func (s *Server) SubmitJob(ctx context.Context, req *protocol.SubmitJobRequest) (*protocol.SubmitJobReply, error) {
	jobID, err := s.scheduler.ScheduleJob(protocol.PlanFromWire(req.GetPlan()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &protocol.SubmitJobReply{JobId: jobID}, nil
}

func (s *Server) GetJobStatus(ctx context.Context, req *protocol.GetJobStatusRequest) (*protocol.GetJobStatusReply, error) {
	job, err := s.scheduler.GetJobStatus(req.GetJobId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &protocol.GetJobStatusReply{
		JobId:  job.ID,
		Status: protocol.JobStatusToWire(job.Status),
		Result: protocol.LocationsToWire(job.Result),
		Error:  protocol.ErrorToWire(job.Error),
	}, nil
}

func (s *Server) CancelJob(ctx context.Context, req *protocol.CancelJobRequest) (*protocol.CancelJobReply, error) {
	if err := s.scheduler.CancelJob(req.GetJobId()); err != nil {
		return nil, toStatus(err)
	}
	return &protocol.CancelJobReply{}, nil
}

func (s *Server) RegisterExecutor(ctx context.Context, req *protocol.RegisterExecutorRequest) (*protocol.RegisterExecutorReply, error) {
	meta := req.GetMetadata()
	if meta.GetId() == "" || meta.GetAddr() == "" || meta.GetSlots() == 0 {
		return &protocol.RegisterExecutorReply{Accepted: false, Reason: "id, addr and slots are required"}, nil
	}
	err := s.scheduler.RegisterExecutor(&domain.ExecutorMetadata{
		ID:    meta.GetId(),
		Addr:  meta.GetAddr(),
		Slots: meta.GetSlots(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &protocol.RegisterExecutorReply{Accepted: true}, nil
}

func (s *Server) Heartbeat(ctx context.Context, req *protocol.HeartbeatRequest) (*protocol.HeartbeatReply, error) {
	known, err := s.scheduler.Heartbeat(req.GetExecutorId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &protocol.HeartbeatReply{Reregister: !known}, nil
}

func (s *Server) DeregisterExecutor(ctx context.Context, req *protocol.DeregisterExecutorRequest) (*protocol.DeregisterExecutorReply, error) {
	if err := s.scheduler.DeregisterExecutor(req.GetExecutorId()); err != nil {
		return nil, toStatus(err)
	}
	return &protocol.DeregisterExecutorReply{}, nil
}

func (s *Server) ReportTaskStatus(ctx context.Context, req *protocol.ReportTaskStatusRequest) (*protocol.ReportTaskStatusReply, error) {
	err := s.scheduler.HandleTaskReport(
		req.GetTaskId(),
		req.GetExecutorId(),
		protocol.TaskStatusFromWire(req.GetStatus()),
		protocol.LocationFromWire(req.GetOutput()),
		protocol.ErrorFromWire(req.GetError()),
	)
	if err != nil {
		return nil, toStatus(err)
	}
	return &protocol.ReportTaskStatusReply{}, nil
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case domain.IsInvalidPlan(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case err == store.ErrNotFound:
		return status.Error(codes.NotFound, err.Error())
	case err == domain.ErrNotLeader:
		// FailedPrecondition tells clients to find the current leader.
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
