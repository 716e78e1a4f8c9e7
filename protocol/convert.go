// Conversions between wire messages and the domain types. Kept here so the
// scheduler and executor packages never touch protobuf structs directly.
package protocol

import (
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

func PlanFromWire(p *PhysicalPlan) *domain.PhysicalPlan {
	if p == nil {
		return nil
	}
	out := &domain.PhysicalPlan{}
	for _, n := range p.Nodes {
		node := &domain.PlanNode{
			ID:         n.GetId(),
			Fragment:   n.GetFragment(),
			Partitions: n.GetPartitions(),
		}
		for _, in := range n.Inputs {
			node.Inputs = append(node.Inputs, domain.PlanInput{
				NodeID:  in.GetNodeId(),
				Shuffle: in.GetShuffle(),
			})
		}
		out.Nodes = append(out.Nodes, node)
	}
	return out
}

func PlanToWire(p *domain.PhysicalPlan) *PhysicalPlan {
	if p == nil {
		return nil
	}
	out := &PhysicalPlan{}
	for _, n := range p.Nodes {
		node := &PlanNode{
			Id:         n.ID,
			Fragment:   n.Fragment,
			Partitions: n.Partitions,
		}
		for _, in := range n.Inputs {
			node.Inputs = append(node.Inputs, &PlanInput{
				NodeId:  in.NodeID,
				Shuffle: in.Shuffle,
			})
		}
		out.Nodes = append(out.Nodes, node)
	}
	return out
}

func LocationFromWire(l *PartitionLocation) *domain.PartitionLocation {
	if l == nil {
		return nil
	}
	return &domain.PartitionLocation{
		JobID:      l.GetJobId(),
		StageID:    l.GetStageId(),
		Partition:  l.GetPartition(),
		ExecutorID: l.GetExecutorId(),
		Addr:       l.GetAddr(),
		Path:       l.GetPath(),
		Stats: domain.PartitionStats{
			NumRows:    l.GetStats().GetNumRows(),
			NumBatches: l.GetStats().GetNumBatches(),
			NumBytes:   l.GetStats().GetNumBytes(),
		},
	}
}

func LocationToWire(l *domain.PartitionLocation) *PartitionLocation {
	if l == nil {
		return nil
	}
	return &PartitionLocation{
		JobId:      l.JobID,
		StageId:    l.StageID,
		Partition:  l.Partition,
		ExecutorId: l.ExecutorID,
		Addr:       l.Addr,
		Path:       l.Path,
		Stats: &PartitionStats{
			NumRows:    l.Stats.NumRows,
			NumBatches: l.Stats.NumBatches,
			NumBytes:   l.Stats.NumBytes,
		},
	}
}

func LocationsToWire(ls []domain.PartitionLocation) []*PartitionLocation {
	var out []*PartitionLocation
	for i := range ls {
		out = append(out, LocationToWire(&ls[i]))
	}
	return out
}

func ErrorFromWire(e *ErrorSummary) *domain.ErrorSummary {
	if e == nil {
		return nil
	}
	return &domain.ErrorSummary{Kind: e.GetKind(), Message: e.GetMessage()}
}

func ErrorToWire(e *domain.ErrorSummary) *ErrorSummary {
	if e == nil {
		return nil
	}
	return &ErrorSummary{Kind: e.Kind, Message: e.Message}
}

func JobStatusToWire(s domain.JobStatus) JobStatus {
	switch s {
	case domain.JobQueued:
		return JobStatus_JOB_QUEUED
	case domain.JobRunning:
		return JobStatus_JOB_RUNNING
	case domain.JobCompleted:
		return JobStatus_JOB_COMPLETED
	case domain.JobFailed:
		return JobStatus_JOB_FAILED
	case domain.JobCanceled:
		return JobStatus_JOB_CANCELED
	}
	return JobStatus_JOB_QUEUED
}

func TaskStatusFromWire(s TaskStatus) domain.TaskStatus {
	switch s {
	case TaskStatus_TASK_QUEUED:
		return domain.TaskQueued
	case TaskStatus_TASK_ASSIGNED:
		return domain.TaskAssigned
	case TaskStatus_TASK_RUNNING:
		return domain.TaskRunning
	case TaskStatus_TASK_COMPLETED:
		return domain.TaskCompleted
	case TaskStatus_TASK_FAILED:
		return domain.TaskFailed
	case TaskStatus_TASK_CANCELED:
		return domain.TaskCanceled
	}
	return domain.TaskQueued
}

func TaskStatusToWire(s domain.TaskStatus) TaskStatus {
	switch s {
	case domain.TaskQueued:
		return TaskStatus_TASK_QUEUED
	case domain.TaskAssigned:
		return TaskStatus_TASK_ASSIGNED
	case domain.TaskRunning:
		return TaskStatus_TASK_RUNNING
	case domain.TaskCompleted:
		return TaskStatus_TASK_COMPLETED
	case domain.TaskFailed:
		return TaskStatus_TASK_FAILED
	case domain.TaskCanceled:
		return TaskStatus_TASK_CANCELED
	}
	return TaskStatus_TASK_QUEUED
}
